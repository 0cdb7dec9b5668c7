package course

import "gorm.io/gorm"

// Module represents a section/module within a course. OrderIndex is nil until
// a position has been assigned; siblings share the same course_id.
type Module struct {
	gorm.Model
	CourseID    uint   `json:"course_id" gorm:"index;not null"`
	Title       string `json:"title"`
	Description string `json:"description"`
	OrderIndex  *int   `json:"order_index" gorm:"index"`
	IsDeleted   bool   `gorm:"default:false"`
}

func (m *Module) CurrentOrderIndex() *int { return m.OrderIndex }

func (m *Module) SetOrderIndex(v int) { m.OrderIndex = &v }

// OrderScope returns the exact-match filter selecting this module's siblings.
func (m *Module) OrderScope() map[string]interface{} {
	return map[string]interface{}{"course_id": m.CourseID, "is_deleted": false}
}
