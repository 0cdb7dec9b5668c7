package course

import "gorm.io/gorm"

// Subject is the catalog taxonomy a course is filed under
type Subject struct {
	gorm.Model
	Title     string `json:"title"`
	Slug      string `json:"slug" gorm:"uniqueIndex;not null"`
	IsDeleted bool   `gorm:"default:false"`
}
