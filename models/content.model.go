package models

import "gorm.io/gorm"

// Content represents a single piece of course material, ordered by Sequence
type Content struct {
	gorm.Model
	CourseID    uint   `json:"course_id" gorm:"index;not null"`
	Title       string `json:"title" gorm:"not null"`
	ContentType string `json:"content_type" gorm:"default:'VIDEO'"` // VIDEO, PDF, QUIZ
	ContentURL  string `json:"content_url"`
	Duration    string `json:"duration"` // for videos, e.g. "12:30"
	Sequence    int    `json:"sequence" gorm:"default:0"`
}
