package ordering_test

import (
	"testing"

	courseModels "elearn/models/course"
	"elearn/ordering"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestBulkUpdateSkipsRowsOutsideOwnedScope(t *testing.T) {
	db := setupDB(t)

	ownCourse := &courseModels.Course{OwnerID: 1, Title: "Mine", Slug: "mine"}
	otherCourse := &courseModels.Course{OwnerID: 2, Title: "Theirs", Slug: "theirs"}
	require.NoError(t, db.Create(ownCourse).Error)
	require.NoError(t, db.Create(otherCourse).Error)

	ownModule := createModule(t, db, ownCourse.ID, nil)
	otherModule := createModule(t, db, otherCourse.ID, nil)

	updates := map[uint]int{
		ownModule.ID:   2,
		otherModule.ID: 9,
	}

	err := ordering.BulkUpdate(db, &courseModels.Module{}, updates, func(q *gorm.DB) *gorm.DB {
		owned := db.Model(&courseModels.Course{}).Select("id").Where("owner_id = ?", 1)
		return q.Where("course_id IN (?)", owned)
	})
	require.NoError(t, err)

	var got courseModels.Module
	require.NoError(t, db.First(&got, ownModule.ID).Error)
	assert.Equal(t, 2, *got.OrderIndex)

	// The foreign module matched zero rows and kept its index
	var gotForeign courseModels.Module
	require.NoError(t, db.First(&gotForeign, otherModule.ID).Error)
	assert.Equal(t, 0, *gotForeign.OrderIndex)
}

func TestBulkUpdateAcceptsDuplicateIndexes(t *testing.T) {
	db := setupDB(t)

	first := createModule(t, db, 1, nil)
	second := createModule(t, db, 1, nil)

	// No uniqueness validation happens on bulk writes; the client owns the
	// resulting layout.
	err := ordering.BulkUpdate(db, &courseModels.Module{}, map[uint]int{
		first.ID:  3,
		second.ID: 3,
	}, nil)
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&courseModels.Module{}).
		Where("course_id = ? AND order_index = ?", 1, 3).
		Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestBulkUpdateUnknownIDIsNoOp(t *testing.T) {
	db := setupDB(t)

	module := createModule(t, db, 1, nil)

	err := ordering.BulkUpdate(db, &courseModels.Module{}, map[uint]int{9999: 5}, nil)
	require.NoError(t, err)

	var got courseModels.Module
	require.NoError(t, db.First(&got, module.ID).Error)
	assert.Equal(t, 0, *got.OrderIndex)
}
