package models

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment links a user to a course and tracks completion progress.
// The composite unique index on (user_id, course_id) is what makes
// enrolling idempotent: concurrent enrolls for the same pair cannot
// produce duplicate rows.
type Enrollment struct {
	gorm.Model
	UserID      uint       `json:"user_id" gorm:"uniqueIndex:idx_user_course;not null"`
	CourseID    uint       `json:"course_id" gorm:"uniqueIndex:idx_user_course;not null"`
	Progress    int        `json:"progress" gorm:"default:0"` // percentage, always within [0,100]
	CompletedAt *time.Time `json:"completed_at"`              // non-null iff Progress == 100
}
