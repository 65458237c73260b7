package models

import "gorm.io/gorm"

// Course represents a learning course in the catalog
type Course struct {
	gorm.Model
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description" gorm:"type:text"`
	Category    string `json:"category" gorm:"index"`
	Instructor  string `json:"instructor" gorm:"default:'Admin'"`
	Duration    int64  `json:"duration" gorm:"default:0"`       // duration in hours
	Level       string `json:"level" gorm:"default:'Beginner'"` // Beginner, Intermediate, Advanced
	CreatedBy   uint   `json:"created_by" gorm:"index"`         // admin user who added the course
}
