package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCoursesFilters(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)

	createCourse(t, db, "Python Programming", "Programming", "Beginner")
	createCourse(t, db, "Advanced Python", "Programming", "Advanced")
	createCourse(t, db, "Watercolor Painting", "Art", "Beginner")

	all, err := svc.ListCourses(CourseFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	// Newest first, ids as tiebreaker
	assert.Equal(t, "Watercolor Painting", all[0].Title)
	assert.Equal(t, "Advanced Python", all[1].Title)
	assert.Equal(t, "Python Programming", all[2].Title)

	byCategory, err := svc.ListCourses(CourseFilter{Category: "Programming"})
	require.NoError(t, err)
	assert.Len(t, byCategory, 2)

	byLevel, err := svc.ListCourses(CourseFilter{Level: "Advanced"})
	require.NoError(t, err)
	require.Len(t, byLevel, 1)
	assert.Equal(t, "Advanced Python", byLevel[0].Title)

	// Search is case-insensitive
	bySearch, err := svc.ListCourses(CourseFilter{Search: "python"})
	require.NoError(t, err)
	assert.Len(t, bySearch, 2)

	combined, err := svc.ListCourses(CourseFilter{Category: "Programming", Search: "advanced"})
	require.NoError(t, err)
	require.Len(t, combined, 1)
	assert.Equal(t, "Advanced Python", combined[0].Title)
}

func TestGetCourse(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)

	course := createCourse(t, db, "Go Basics", "Programming", "Beginner")

	found, err := svc.GetCourse(course.ID)
	require.NoError(t, err)
	assert.Equal(t, course.Title, found.Title)

	_, err = svc.GetCourse(9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddCourse(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)

	course, err := svc.AddCourse(CourseFields{
		Title:       "Go Basics",
		Description: "An introduction",
		Category:    "Programming",
		Duration:    40,
		CreatedBy:   1,
	})
	require.NoError(t, err)
	assert.NotZero(t, course.ID)
	assert.Equal(t, "Admin", course.Instructor)
	assert.Equal(t, "Beginner", course.Level)

	_, err = svc.AddCourse(CourseFields{Title: "   "})
	assert.ErrorIs(t, err, ErrEmptyTitle)
}

func TestContentSequenceOrder(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)

	course := createCourse(t, db, "Go Basics", "Programming", "Beginner")

	_, err := svc.AddContent(course.ID, ContentFields{Title: "Outro", Sequence: 2})
	require.NoError(t, err)
	_, err = svc.AddContent(course.ID, ContentFields{Title: "Intro", Sequence: 0})
	require.NoError(t, err)
	_, err = svc.AddContent(course.ID, ContentFields{Title: "Middle", Sequence: 1})
	require.NoError(t, err)

	contents, err := svc.ListContent(course.ID)
	require.NoError(t, err)
	require.Len(t, contents, 3)
	assert.Equal(t, "Intro", contents[0].Title)
	assert.Equal(t, "Middle", contents[1].Title)
	assert.Equal(t, "Outro", contents[2].Title)
	assert.Equal(t, "VIDEO", contents[0].ContentType, "content type defaults to VIDEO")

	_, err = svc.AddContent(9999, ContentFields{Title: "Orphan"})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.ListContent(9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFeaturedCourses(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)

	for i := 0; i < 8; i++ {
		createCourse(t, db, "Course", "Programming", "Beginner")
	}

	featured, err := svc.FeaturedCourses(6)
	require.NoError(t, err)
	assert.Len(t, featured, 6)

	// Non-positive limit falls back to the default
	featured, err = svc.FeaturedCourses(0)
	require.NoError(t, err)
	assert.Len(t, featured, 6)
}

func TestDashboardStats(t *testing.T) {
	db := newTestDB(t)
	catalog := NewCatalogService(db)
	ledger := NewEnrollmentService(db)

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	course := createCourse(t, db, "Go Basics", "Programming", "Beginner")
	other := createCourse(t, db, "Go Advanced", "Programming", "Advanced")

	_, err := ledger.Enroll(alice.ID, course.ID)
	require.NoError(t, err)
	_, err = ledger.Enroll(bob.ID, course.ID)
	require.NoError(t, err)
	_, err = ledger.Enroll(alice.ID, other.ID)
	require.NoError(t, err)

	_, err = ledger.UpdateProgress(alice.ID, course.ID, 100)
	require.NoError(t, err)

	stats, err := catalog.GetDashboardStats()
	require.NoError(t, err)

	assert.EqualValues(t, 2, stats.TotalUsers)
	assert.EqualValues(t, 2, stats.TotalCourses)
	assert.EqualValues(t, 3, stats.TotalEnrollments)
	assert.EqualValues(t, 1, stats.CompletedEnrollments)
	require.Len(t, stats.RecentEnrollments, 3)
	assert.Equal(t, "alice", stats.RecentEnrollments[0].Username)
	assert.Equal(t, "Go Advanced", stats.RecentEnrollments[0].CourseTitle)
}
