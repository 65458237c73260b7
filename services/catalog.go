package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/MeghnathGit/elearning-platform/models"
)

// CatalogService owns course and content metadata. Courses are read-mostly:
// they are created by admins (or seeding) and never updated or deleted.
type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

// CourseFilter narrows a catalog listing. Zero values mean "no filter".
type CourseFilter struct {
	Category string
	Level    string
	Search   string // case-insensitive match against the title
}

// CourseFields carries the admin-supplied attributes of a new course.
type CourseFields struct {
	Title       string
	Description string
	Category    string
	Instructor  string
	Duration    int64
	Level       string
	CreatedBy   uint
}

// ContentFields carries the attributes of a new piece of course material.
type ContentFields struct {
	Title       string
	ContentType string
	ContentURL  string
	Duration    string
	Sequence    int
}

// ListCourses returns the catalog, newest first. Ordering includes the id
// as a tiebreaker so listings are deterministic.
func (s *CatalogService) ListCourses(filter CourseFilter) ([]models.Course, error) {
	db := s.db.Model(&models.Course{})

	if filter.Category != "" {
		db = db.Where("category = ?", filter.Category)
	}
	if filter.Level != "" {
		db = db.Where("level = ?", filter.Level)
	}
	if filter.Search != "" {
		db = db.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(filter.Search)+"%")
	}

	var courses []models.Course
	if err := db.Order("created_at DESC, id DESC").Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

// GetCourse fetches one course by id.
func (s *CatalogService) GetCourse(id uint) (*models.Course, error) {
	var course models.Course
	if err := s.db.First(&course, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &course, nil
}

// AddCourse creates a course. Admin gating happens at the route; the only
// field rule here is a non-empty title.
func (s *CatalogService) AddCourse(fields CourseFields) (*models.Course, error) {
	if strings.TrimSpace(fields.Title) == "" {
		return nil, ErrEmptyTitle
	}

	course := models.Course{
		Title:       fields.Title,
		Description: fields.Description,
		Category:    fields.Category,
		Instructor:  fields.Instructor,
		Duration:    fields.Duration,
		Level:       fields.Level,
		CreatedBy:   fields.CreatedBy,
	}
	if course.Instructor == "" {
		course.Instructor = "Admin"
	}
	if course.Level == "" {
		course.Level = "Beginner"
	}

	if err := s.db.Create(&course).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

// ListContent returns a course's materials in sequence order.
func (s *CatalogService) ListContent(courseID uint) ([]models.Content, error) {
	if _, err := s.GetCourse(courseID); err != nil {
		return nil, err
	}

	var contents []models.Content
	err := s.db.Where("course_id = ?", courseID).
		Order("sequence ASC, id ASC").Find(&contents).Error
	if err != nil {
		return nil, err
	}
	return contents, nil
}

// AddContent attaches a piece of material to an existing course.
func (s *CatalogService) AddContent(courseID uint, fields ContentFields) (*models.Content, error) {
	if _, err := s.GetCourse(courseID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(fields.Title) == "" {
		return nil, ErrEmptyTitle
	}

	content := models.Content{
		CourseID:    courseID,
		Title:       fields.Title,
		ContentType: fields.ContentType,
		ContentURL:  fields.ContentURL,
		Duration:    fields.Duration,
		Sequence:    fields.Sequence,
	}
	if content.ContentType == "" {
		content.ContentType = "VIDEO"
	}

	if err := s.db.Create(&content).Error; err != nil {
		return nil, err
	}
	return &content, nil
}

// FeaturedCourses returns the newest courses for the landing page.
func (s *CatalogService) FeaturedCourses(limit int) ([]models.Course, error) {
	if limit <= 0 {
		limit = 6
	}

	var courses []models.Course
	err := s.db.Order("created_at DESC, id DESC").Limit(limit).Find(&courses).Error
	if err != nil {
		return nil, err
	}
	return courses, nil
}

// RecentEnrollment is one row of the dashboard's latest-activity feed.
type RecentEnrollment struct {
	Username    string    `json:"username"`
	CourseTitle string    `json:"course_title"`
	EnrolledAt  time.Time `json:"enrolled_at"`
}

// DashboardStats aggregates the numbers shown on the admin dashboard.
type DashboardStats struct {
	TotalUsers           int64              `json:"total_users"`
	TotalCourses         int64              `json:"total_courses"`
	TotalEnrollments     int64              `json:"total_enrollments"`
	CompletedEnrollments int64              `json:"completed_enrollments"`
	RecentEnrollments    []RecentEnrollment `json:"recent_enrollments"`
}

// GetDashboardStats computes the admin dashboard aggregates.
func (s *CatalogService) GetDashboardStats() (*DashboardStats, error) {
	stats := &DashboardStats{}

	if err := s.db.Model(&models.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Course{}).Count(&stats.TotalCourses).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Enrollment{}).Count(&stats.TotalEnrollments).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Enrollment{}).Where("progress = ?", 100).
		Count(&stats.CompletedEnrollments).Error; err != nil {
		return nil, err
	}

	var enrollments []models.Enrollment
	if err := s.db.Order("created_at DESC, id DESC").Limit(5).Find(&enrollments).Error; err != nil {
		return nil, err
	}

	stats.RecentEnrollments = make([]RecentEnrollment, len(enrollments))
	for i, e := range enrollments {
		var user models.User
		var course models.Course
		s.db.Select("username").First(&user, e.UserID)
		s.db.Select("title").First(&course, e.CourseID)
		stats.RecentEnrollments[i] = RecentEnrollment{
			Username:    user.Username,
			CourseTitle: course.Title,
			EnrolledAt:  e.CreatedAt,
		}
	}

	return stats, nil
}
