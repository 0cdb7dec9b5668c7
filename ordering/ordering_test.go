package ordering_test

import (
	"fmt"
	"testing"

	courseModels "elearn/models/course"
	"elearn/ordering"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A fresh in-memory database lives per connection; pin the pool to one
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&courseModels.Course{},
		&courseModels.Module{},
		&courseModels.Content{},
	))
	return db
}

func createModule(t *testing.T, db *gorm.DB, courseID uint, orderIndex *int) *courseModels.Module {
	t.Helper()

	module := &courseModels.Module{
		CourseID:   courseID,
		Title:      fmt.Sprintf("Module for course %d", courseID),
		OrderIndex: orderIndex,
	}
	_, err := ordering.Assign(db, module)
	require.NoError(t, err)
	require.NoError(t, db.Create(module).Error)
	return module
}

func intPtr(v int) *int { return &v }

func TestAssignSequentialCreations(t *testing.T) {
	db := setupDB(t)

	for want := 0; want < 5; want++ {
		module := createModule(t, db, 1, nil)
		require.NotNil(t, module.OrderIndex)
		assert.Equal(t, want, *module.OrderIndex)
	}
}

func TestAssignExplicitIndexWinsUntouched(t *testing.T) {
	db := setupDB(t)

	// Existing siblings at 0 and 1; an explicit 7 must survive as-is, not
	// be replaced by max+1.
	createModule(t, db, 1, nil)
	createModule(t, db, 1, nil)

	module := &courseModels.Module{CourseID: 1, Title: "Explicit position"}
	module.OrderIndex = intPtr(7)

	got, err := ordering.Assign(db, module)
	require.NoError(t, err)
	assert.Equal(t, 7, got)
	assert.Equal(t, 7, *module.OrderIndex)
}

func TestAssignExplicitZeroIsRespected(t *testing.T) {
	db := setupDB(t)

	createModule(t, db, 1, nil)
	createModule(t, db, 1, nil)

	module := createModule(t, db, 1, intPtr(0))
	assert.Equal(t, 0, *module.OrderIndex)
}

func TestAssignScopesAreIndependent(t *testing.T) {
	db := setupDB(t)

	first := createModule(t, db, 1, nil)
	second := createModule(t, db, 2, nil)

	assert.Equal(t, 0, *first.OrderIndex)
	assert.Equal(t, 0, *second.OrderIndex)

	// Contents are scoped by module, not by course
	content := &courseModels.Content{ModuleID: first.ID, Title: "Intro text", ContentType: "TEXT"}
	got, err := ordering.Assign(db, content)
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

func TestAssignAfterDeleteKeepsGap(t *testing.T) {
	db := setupDB(t)

	createModule(t, db, 1, nil) // 0
	createModule(t, db, 1, nil) // 1
	highest := createModule(t, db, 1, nil)
	require.Equal(t, 2, *highest.OrderIndex)

	// Soft delete the highest sibling; the next creation goes after the
	// remaining max, no renumbering of survivors.
	require.NoError(t, db.Model(highest).Update("is_deleted", true).Error)

	module := createModule(t, db, 1, nil)
	assert.Equal(t, 2, *module.OrderIndex)

	var survivors []courseModels.Module
	require.NoError(t, db.Where("course_id = ? AND is_deleted = ?", 1, false).Order("order_index asc").Find(&survivors).Error)
	require.Len(t, survivors, 3)
	assert.Equal(t, 0, *survivors[0].OrderIndex)
	assert.Equal(t, 1, *survivors[1].OrderIndex)
	assert.Equal(t, 2, *survivors[2].OrderIndex)
}

func TestAssignEmptyScopeStartsAtZero(t *testing.T) {
	db := setupDB(t)

	// No siblings at all is the base case, not an error
	module := &courseModels.Module{CourseID: 42, Title: "First module"}
	got, err := ordering.Assign(db, module)
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

// Max-then-increment is a read followed by a write with no exclusivity.
// Two creations that both read before either writes compute the same index
// and both rows persist. This pins the accepted duplicate rather than hiding
// it; removing the race needs serialization at the store level.
func TestNextIndexReadThenWriteAllowsDuplicates(t *testing.T) {
	db := setupDB(t)

	createModule(t, db, 1, nil) // existing max is 0

	first := &courseModels.Module{CourseID: 1, Title: "Racer one"}
	second := &courseModels.Module{CourseID: 1, Title: "Racer two"}

	firstIndex, err := ordering.NextIndex(db, first)
	require.NoError(t, err)
	secondIndex, err := ordering.NextIndex(db, second)
	require.NoError(t, err)

	assert.Equal(t, firstIndex, secondIndex)

	first.SetOrderIndex(firstIndex)
	second.SetOrderIndex(secondIndex)
	require.NoError(t, db.Create(first).Error)
	require.NoError(t, db.Create(second).Error)

	var count int64
	require.NoError(t, db.Model(&courseModels.Module{}).
		Where("course_id = ? AND order_index = ?", 1, firstIndex).
		Count(&count).Error)
	assert.Equal(t, int64(2), count)
}
