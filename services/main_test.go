package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/MeghnathGit/elearning-platform/database"
	"github.com/MeghnathGit/elearning-platform/models"
)

// newTestDB opens a fresh in-memory SQLite database named after the test,
// migrated with the same schema the application uses. A single connection
// keeps concurrent test writers serialized at the pool instead of hitting
// SQLITE_BUSY.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.RunMigrations(db))
	return db
}

func createCourse(t *testing.T, db *gorm.DB, title, category, level string) models.Course {
	t.Helper()

	course := models.Course{
		Title:    title,
		Category: category,
		Level:    level,
	}
	require.NoError(t, db.Create(&course).Error)
	return course
}

func createUser(t *testing.T, db *gorm.DB, username string) models.User {
	t.Helper()

	user := models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "x",
		Role:     "USER",
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}
