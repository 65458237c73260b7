package database

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/MeghnathGit/elearning-platform/config"
	"github.com/MeghnathGit/elearning-platform/models"
)

// DbInstance struct holds the database connection instance
type DbInstance struct {
	Db *gorm.DB
}

// Database is the global database instance
var Database DbInstance

// ConnectDb establishes the database connection. The backend is selected
// exactly once here, from DB_DRIVER; nothing downstream ever branches on
// the driver again.
func ConnectDb() {
	dialector, err := openDialector()
	if err != nil {
		log.Fatalf("Failed to configure database: %v", err)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Set up connection pooling
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	// Run database migrations
	if err := RunMigrations(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	// Seed admin account and sample catalog
	if err := Seed(db); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	// Save database instance globally
	Database = DbInstance{Db: db}
}

// openDialector maps the configured driver name onto a GORM dialector
func openDialector() (gorm.Dialector, error) {
	switch config.AppConfig.DBDriver {
	case "sqlite":
		return sqlite.Open(config.AppConfig.DBName), nil
	case "postgres":
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			config.AppConfig.DBHost,
			config.AppConfig.DBUser,
			config.AppConfig.DBPassword,
			config.AppConfig.DBName,
			config.AppConfig.DBPort,
		)
		return postgres.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER: %q", config.AppConfig.DBDriver)
	}
}

// RunMigrations performs database migrations. The Enrollment migration
// creates the composite unique index on (user_id, course_id) that the
// enroll operation relies on.
func RunMigrations(db *gorm.DB) error {
	log.Println("Running Migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.Course{},
		&models.Content{},
		&models.Enrollment{},
	)
	if err != nil {
		return err
	}

	log.Println("Migrations completed successfully.")
	return nil
}
