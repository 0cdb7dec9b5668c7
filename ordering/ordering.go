// Package ordering assigns and maintains per-scope positions for sibling
// records (modules within a course, contents within a module).
package ordering

import (
	"database/sql"

	"gorm.io/gorm"
)

// Orderable is any record carrying an order index that must be unique among
// the siblings selected by its scope filter.
type Orderable interface {
	CurrentOrderIndex() *int
	SetOrderIndex(int)
	// OrderScope returns the exact-match filter selecting the record's
	// persisted siblings, read straight off the record's own fields.
	OrderScope() map[string]interface{}
}

// Assign computes the position for a not-yet-persisted entity. An explicitly
// supplied index wins untouched and siblings are never queried; otherwise the
// next free index in the entity's scope is computed, set on the entity and
// returned.
//
// Max-then-increment is a plain read followed by a write: two concurrent
// creations in the same scope can compute the same index. Accepted behavior,
// callers that need strict uniqueness must serialize creations per scope.
func Assign(db *gorm.DB, entity Orderable) (int, error) {
	if v := entity.CurrentOrderIndex(); v != nil {
		return *v, nil
	}

	next, err := NextIndex(db, entity)
	if err != nil {
		return 0, err
	}

	entity.SetOrderIndex(next)
	return next, nil
}

// NextIndex returns (max sibling order)+1, or 0 when the scope is empty.
// An empty scope is the base case, not an error.
func NextIndex(db *gorm.DB, entity Orderable) (int, error) {
	var max sql.NullInt64
	err := db.Model(entity).
		Where(entity.OrderScope()).
		Select("MAX(order_index)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}

	if !max.Valid {
		return 0, nil
	}

	return int(max.Int64) + 1, nil
}
