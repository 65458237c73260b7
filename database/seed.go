package database

import (
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/MeghnathGit/elearning-platform/config"
	"github.com/MeghnathGit/elearning-platform/models"
)

// Seed bootstraps the single admin account and a starter catalog. It is
// safe to run on every startup: the admin is looked up by username and
// sample courses are only inserted into an empty catalog.
func Seed(db *gorm.DB) error {
	admin, err := seedAdmin(db)
	if err != nil {
		return err
	}
	return seedCourses(db, admin.ID)
}

func seedAdmin(db *gorm.DB) (*models.User, error) {
	var admin models.User
	err := db.Where("username = ?", "admin").First(&admin).Error
	if err == nil {
		return &admin, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword(
		[]byte(config.AppConfig.AdminPassword), config.AppConfig.SaltRound)
	if err != nil {
		return nil, err
	}

	admin = models.User{
		Username: "admin",
		Email:    config.AppConfig.AdminEmail,
		Password: string(hashed),
		Role:     "ADMIN",
	}
	if err := db.Create(&admin).Error; err != nil {
		return nil, err
	}

	log.Println("Seeded admin account.")
	return &admin, nil
}

func seedCourses(db *gorm.DB, adminID uint) error {
	var count int64
	if err := db.Model(&models.Course{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	sampleCourses := []models.Course{
		{
			Title:       "Python Programming Masterclass",
			Description: "Learn Python from scratch to advanced level with hands-on projects",
			Category:    "Programming",
			Instructor:  "John Doe",
			Duration:    40,
			Level:       "Beginner",
			CreatedBy:   adminID,
		},
		{
			Title:       "Web Development Bootcamp",
			Description: "Build modern websites with HTML, CSS, JavaScript and Flask",
			Category:    "Web Development",
			Instructor:  "Jane Smith",
			Duration:    60,
			Level:       "Intermediate",
			CreatedBy:   adminID,
		},
		{
			Title:       "Data Science Fundamentals",
			Description: "Master data analysis, visualization and machine learning basics",
			Category:    "Data Science",
			Instructor:  "Mike Johnson",
			Duration:    80,
			Level:       "Advanced",
			CreatedBy:   adminID,
		},
		{
			Title:       "Cloud Computing with AWS",
			Description: "Learn cloud deployment, services and infrastructure",
			Category:    "Cloud Computing",
			Instructor:  "Admin",
			Duration:    50,
			Level:       "Intermediate",
			CreatedBy:   adminID,
		},
		{
			Title:       "Cybersecurity Essentials",
			Description: "Protect systems and networks from cyber threats",
			Category:    "Cybersecurity",
			Instructor:  "Admin",
			Duration:    45,
			Level:       "Beginner",
			CreatedBy:   adminID,
		},
	}

	if err := db.Create(&sampleCourses).Error; err != nil {
		return err
	}

	log.Printf("Seeded %d sample courses.", len(sampleCourses))
	return nil
}
