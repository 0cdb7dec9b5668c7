package course

import "gorm.io/gorm"

// Content represents a single content item within a module
type Content struct {
	gorm.Model
	ModuleID    uint   `json:"module_id" gorm:"index;not null"`
	Title       string `json:"title"`
	ContentType string `json:"content_type" gorm:"default:'TEXT'"` // TEXT, FILE, IMAGE, VIDEO
	TextBody    string `json:"text_body" gorm:"type:text"`         // For TEXT type
	FileURL     string `json:"file_url"`                           // For FILE type
	ImageURL    string `json:"image_url"`                          // For IMAGE type
	VideoURL    string `json:"video_url"`                          // For VIDEO type
	OrderIndex  *int   `json:"order_index" gorm:"index"`
	IsDeleted   bool   `gorm:"default:false"`
}

func (ct *Content) CurrentOrderIndex() *int { return ct.OrderIndex }

func (ct *Content) SetOrderIndex(v int) { ct.OrderIndex = &v }

// OrderScope returns the exact-match filter selecting this content's siblings.
func (ct *Content) OrderScope() map[string]interface{} {
	return map[string]interface{}{"module_id": ct.ModuleID, "is_deleted": false}
}
