package course

import "gorm.io/gorm"

// Course represents a learning course owned by an instructor
type Course struct {
	gorm.Model
	OwnerID     uint   `json:"owner_id" gorm:"index;not null"`
	SubjectID   uint   `json:"subject_id" gorm:"index"`
	Title       string `json:"title"`
	Slug        string `json:"slug" gorm:"uniqueIndex;not null"`
	Overview    string `json:"overview" gorm:"type:text"`
	IsPublished bool   `json:"is_published" gorm:"default:false"`
	IsDeleted   bool   `gorm:"default:false"`
}
