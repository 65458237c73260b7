package services

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MeghnathGit/elearning-platform/models"
)

func TestEnrollUnknownCourse(t *testing.T) {
	db := newTestDB(t)
	svc := NewEnrollmentService(db)
	user := createUser(t, db, "alice")

	_, err := svc.Enroll(user.ID, 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEnrollIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewEnrollmentService(db)
	user := createUser(t, db, "alice")
	course := createCourse(t, db, "Go Basics", "Programming", "Beginner")

	result, err := svc.Enroll(user.ID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, EnrollCreated, result)

	result, err = svc.Enroll(user.ID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, EnrollAlreadyEnrolled, result)

	var count int64
	require.NoError(t, db.Model(&models.Enrollment{}).
		Where("user_id = ? AND course_id = ?", user.ID, course.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	var enrollment models.Enrollment
	require.NoError(t, db.Where("user_id = ? AND course_id = ?", user.ID, course.ID).
		First(&enrollment).Error)
	assert.Equal(t, 0, enrollment.Progress)
	assert.Nil(t, enrollment.CompletedAt)
}

func TestConcurrentEnrollSingleRow(t *testing.T) {
	db := newTestDB(t)
	svc := NewEnrollmentService(db)
	user := createUser(t, db, "alice")
	course := createCourse(t, db, "Go Basics", "Programming", "Beginner")

	const callers = 2
	results := make([]EnrollResult, callers)
	errs := make([]error, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = svc.Enroll(user.ID, course.ID)
		}(i)
	}
	wg.Wait()

	created := 0
	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		if results[i] == EnrollCreated {
			created++
		}
	}
	assert.Equal(t, 1, created, "exactly one caller must win the insert")

	var count int64
	require.NoError(t, db.Model(&models.Enrollment{}).
		Where("user_id = ? AND course_id = ?", user.ID, course.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUpdateProgressClamps(t *testing.T) {
	db := newTestDB(t)
	svc := NewEnrollmentService(db)
	user := createUser(t, db, "alice")
	course := createCourse(t, db, "Go Basics", "Programming", "Beginner")

	_, err := svc.Enroll(user.ID, course.ID)
	require.NoError(t, err)

	cases := []struct {
		raw    int
		stored int
	}{
		{-5, 0},
		{0, 0},
		{57, 57},
		{100, 100},
		{250, 100},
	}

	for _, tc := range cases {
		stored, err := svc.UpdateProgress(user.ID, course.ID, tc.raw)
		require.NoError(t, err)
		assert.Equal(t, tc.stored, stored, "raw=%d", tc.raw)

		enrollment, err := svc.GetEnrollment(user.ID, course.ID)
		require.NoError(t, err)
		assert.Equal(t, tc.stored, enrollment.Progress, "raw=%d", tc.raw)
	}
}

func TestUpdateProgressWithoutEnrollment(t *testing.T) {
	db := newTestDB(t)
	svc := NewEnrollmentService(db)
	user := createUser(t, db, "alice")
	course := createCourse(t, db, "Go Basics", "Programming", "Beginner")

	_, err := svc.UpdateProgress(user.ID, course.ID, 50)
	assert.ErrorIs(t, err, ErrNotFound)

	// Another user's enrollment is not reachable either
	other := createUser(t, db, "bob")
	_, err = svc.Enroll(other.ID, course.ID)
	require.NoError(t, err)

	_, err = svc.UpdateProgress(user.ID, course.ID, 50)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCompletionTimestamp(t *testing.T) {
	db := newTestDB(t)
	svc := NewEnrollmentService(db)
	user := createUser(t, db, "alice")
	course := createCourse(t, db, "Go Basics", "Programming", "Beginner")

	_, err := svc.Enroll(user.ID, course.ID)
	require.NoError(t, err)

	stored, err := svc.UpdateProgress(user.ID, course.ID, 100)
	require.NoError(t, err)
	assert.Equal(t, 100, stored)

	enrollment, err := svc.GetEnrollment(user.ID, course.ID)
	require.NoError(t, err)
	require.NotNil(t, enrollment.CompletedAt)
	completedAt := *enrollment.CompletedAt

	// Setting 100 again keeps the original timestamp
	_, err = svc.UpdateProgress(user.ID, course.ID, 100)
	require.NoError(t, err)

	enrollment, err = svc.GetEnrollment(user.ID, course.ID)
	require.NoError(t, err)
	require.NotNil(t, enrollment.CompletedAt)
	assert.True(t, enrollment.CompletedAt.Equal(completedAt))

	// Dropping below 100 clears it
	_, err = svc.UpdateProgress(user.ID, course.ID, 80)
	require.NoError(t, err)

	enrollment, err = svc.GetEnrollment(user.ID, course.ID)
	require.NoError(t, err)
	assert.Nil(t, enrollment.CompletedAt)
}

func TestListForUserOrder(t *testing.T) {
	db := newTestDB(t)
	svc := NewEnrollmentService(db)
	user := createUser(t, db, "alice")

	first := createCourse(t, db, "First", "Programming", "Beginner")
	second := createCourse(t, db, "Second", "Programming", "Beginner")
	third := createCourse(t, db, "Third", "Programming", "Beginner")

	for _, course := range []models.Course{first, second, third} {
		_, err := svc.Enroll(user.ID, course.ID)
		require.NoError(t, err)
	}

	_, err := svc.UpdateProgress(user.ID, second.ID, 40)
	require.NoError(t, err)

	enrolled, err := svc.ListForUser(user.ID)
	require.NoError(t, err)
	require.Len(t, enrolled, 3)

	// Most recently enrolled first
	assert.Equal(t, "Third", enrolled[0].Course.Title)
	assert.Equal(t, "Second", enrolled[1].Course.Title)
	assert.Equal(t, "First", enrolled[2].Course.Title)
	assert.Equal(t, 40, enrolled[1].Progress)
}

func TestListUnenrolledForUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewEnrollmentService(db)
	user := createUser(t, db, "alice")

	enrolledCourse := createCourse(t, db, "Enrolled", "Programming", "Beginner")
	for i := 0; i < 5; i++ {
		createCourse(t, db, "Candidate", "Programming", "Beginner")
	}

	_, err := svc.Enroll(user.ID, enrolledCourse.ID)
	require.NoError(t, err)

	courses, err := svc.ListUnenrolledForUser(user.ID, 3)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(courses), 3)
	for _, course := range courses {
		assert.NotEqual(t, enrolledCourse.ID, course.ID,
			"suggestions must never include an enrolled course")
	}

	// Limit of zero returns nothing
	courses, err = svc.ListUnenrolledForUser(user.ID, 0)
	require.NoError(t, err)
	assert.Empty(t, courses)
}

// The end-to-end scenario: alice registers, enrolls, advances to 40, then
// an out-of-range 140 lands as 100 with the completion timestamp set.
func TestEnrollmentScenario(t *testing.T) {
	db := newTestDB(t)
	creds := NewCredentialService(db, testSaltRound, false)
	ledger := NewEnrollmentService(db)

	course := createCourse(t, db, "Go Basics", "Programming", "Beginner")

	alice, err := creds.Register("alice", "alice@example.com", "secret123")
	require.NoError(t, err)

	result, err := ledger.Enroll(alice.ID, course.ID)
	require.NoError(t, err)
	require.Equal(t, EnrollCreated, result)

	stored, err := ledger.UpdateProgress(alice.ID, course.ID, 40)
	require.NoError(t, err)
	assert.Equal(t, 40, stored)

	enrollment, err := ledger.GetEnrollment(alice.ID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, 40, enrollment.Progress)

	stored, err = ledger.UpdateProgress(alice.ID, course.ID, 140)
	require.NoError(t, err)
	assert.Equal(t, 100, stored)

	enrollment, err = ledger.GetEnrollment(alice.ID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, enrollment.Progress)
	assert.NotNil(t, enrollment.CompletedAt)
}
