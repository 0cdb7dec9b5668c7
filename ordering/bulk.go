package ordering

import "gorm.io/gorm"

// OwnedScope narrows a bulk update to rows whose ownership chain resolves to
// the requesting actor.
type OwnedScope func(*gorm.DB) *gorm.DB

// BulkUpdate writes client-supplied order indexes, one UPDATE per entry. Rows
// outside the owned scope match nothing and are silently skipped; no
// renumbering and no uniqueness check happens, duplicate or gapped indexes
// after an update are accepted. Map iteration order is irrelevant since each
// entry is applied independently.
func BulkUpdate(db *gorm.DB, model interface{}, updates map[uint]int, owned OwnedScope) error {
	for id, index := range updates {
		query := db.Model(model).Where("id = ? AND is_deleted = ?", id, false)
		if owned != nil {
			query = owned(query)
		}
		if err := query.Update("order_index", index).Error; err != nil {
			return err
		}
	}
	return nil
}
