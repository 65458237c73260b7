package services

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/MeghnathGit/elearning-platform/models"
)

// EnrollResult reports whether an enroll call inserted a row or hit an
// existing one.
type EnrollResult string

const (
	EnrollCreated         EnrollResult = "CREATED"
	EnrollAlreadyEnrolled EnrollResult = "ALREADY_ENROLLED"
)

// EnrolledCourse pairs a course with the caller's progress in it.
type EnrolledCourse struct {
	Course     models.Course `json:"course"`
	Progress   int           `json:"progress"`
	EnrolledAt time.Time     `json:"enrolled_at"`
}

// EnrollmentService owns the user/course enrollment ledger.
type EnrollmentService struct {
	db *gorm.DB
}

func NewEnrollmentService(db *gorm.DB) *EnrollmentService {
	return &EnrollmentService{db: db}
}

// Enroll links a user to a course with zero progress. Enrolling twice is a
// no-op, not an error: the insert carries ON CONFLICT DO NOTHING against
// the (user_id, course_id) unique index, so two concurrent enrolls for the
// same pair can never produce two rows.
func (s *EnrollmentService) Enroll(userID, courseID uint) (EnrollResult, error) {
	var course models.Course
	if err := s.db.First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}

	enrollment := models.Enrollment{
		UserID:   userID,
		CourseID: courseID,
		Progress: 0,
	}

	result := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "course_id"}},
		DoNothing: true,
	}).Create(&enrollment)
	if result.Error != nil {
		return "", result.Error
	}

	if result.RowsAffected == 0 {
		return EnrollAlreadyEnrolled, nil
	}
	return EnrollCreated, nil
}

// UpdateProgress stores a clamped progress value for the caller's own
// enrollment and returns what was stored. Out-of-range input is clamped
// into [0,100] rather than rejected. Reaching 100 stamps completed_at
// (kept as-is when already set); dropping below 100 clears it again.
func (s *EnrollmentService) UpdateProgress(userID, courseID uint, rawProgress int) (int, error) {
	progress := rawProgress
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}

	var enrollment models.Enrollment
	err := s.db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrNotFound
		}
		return 0, err
	}

	updates := map[string]interface{}{"progress": progress}
	if progress == 100 {
		updates["completed_at"] = gorm.Expr("COALESCE(completed_at, ?)", time.Now())
	} else {
		updates["completed_at"] = nil
	}

	if err := s.db.Model(&enrollment).Updates(updates).Error; err != nil {
		return 0, err
	}

	return progress, nil
}

// GetEnrollment fetches the caller's enrollment for a course.
func (s *EnrollmentService) GetEnrollment(userID, courseID uint) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	err := s.db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &enrollment, nil
}

// ListForUser returns the caller's courses with progress, most recently
// enrolled first.
func (s *EnrollmentService) ListForUser(userID uint) ([]EnrolledCourse, error) {
	var enrollments []models.Enrollment
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").Find(&enrollments).Error
	if err != nil {
		return nil, err
	}

	result := make([]EnrolledCourse, 0, len(enrollments))
	for _, e := range enrollments {
		var course models.Course
		if err := s.db.First(&course, e.CourseID).Error; err != nil {
			return nil, err
		}
		result = append(result, EnrolledCourse{
			Course:     course,
			Progress:   e.Progress,
			EnrolledAt: e.CreatedAt,
		})
	}

	return result, nil
}

// CountForUser returns how many courses the user is enrolled in.
func (s *EnrollmentService) CountForUser(userID uint) (int64, error) {
	var count int64
	err := s.db.Model(&models.Enrollment{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// ListUnenrolledForUser picks up to limit courses the user has not enrolled
// in yet. Selection among the candidates is random.
func (s *EnrollmentService) ListUnenrolledForUser(userID uint, limit int) ([]models.Course, error) {
	if limit <= 0 {
		return []models.Course{}, nil
	}

	enrolled := s.db.Model(&models.Enrollment{}).
		Select("course_id").Where("user_id = ?", userID)

	var courses []models.Course
	// random() exists in both SQLite and PostgreSQL
	err := s.db.Where("id NOT IN (?)", enrolled).
		Order("random()").Limit(limit).Find(&courses).Error
	if err != nil {
		return nil, err
	}
	return courses, nil
}
