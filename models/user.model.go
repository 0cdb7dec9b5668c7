package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	ProfileImage string     `gorm:"default:''"`
	Name         string     `gorm:"default:''"`
	Email        string     `gorm:"unique;not null"`
	Role         string     `gorm:"default:'STUDENT'"` // STUDENT, INSTRUCTOR
	Password     string     `gorm:"not null" json:"-"`
	LastLogin    *time.Time `json:"last_login"`
	IsDeleted    bool       `gorm:"default:false"`
}
