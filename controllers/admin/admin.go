package adminController

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/MeghnathGit/elearning-platform/database"
	"github.com/MeghnathGit/elearning-platform/middleware"
	"github.com/MeghnathGit/elearning-platform/services"
)

// AdminCreateCourse adds a new course to the catalog. Admin access is
// enforced by the route middleware.
func AdminCreateCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCourse").(*struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Category    string `json:"category"`
		Instructor  string `json:"instructor"`
		Duration    int64  `json:"duration"`
		Level       string `json:"level"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	catalog := services.NewCatalogService(database.Database.Db)
	course, err := catalog.AddCourse(services.CourseFields{
		Title:       reqData.Title,
		Description: reqData.Description,
		Category:    reqData.Category,
		Instructor:  reqData.Instructor,
		Duration:    reqData.Duration,
		Level:       reqData.Level,
		CreatedBy:   userID,
	})
	if err != nil {
		if errors.Is(err, services.ErrEmptyTitle) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Title must not be empty!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// AdminAddContent attaches a piece of material to a course.
func AdminAddContent(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	reqData, ok := c.Locals("validatedContent").(*struct {
		Title       string `json:"title"`
		ContentType string `json:"content_type"`
		ContentURL  string `json:"content_url"`
		Duration    string `json:"duration"`
		Sequence    int    `json:"sequence"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	catalog := services.NewCatalogService(database.Database.Db)
	content, err := catalog.AddContent(courseID, services.ContentFields{
		Title:       reqData.Title,
		ContentType: reqData.ContentType,
		ContentURL:  reqData.ContentURL,
		Duration:    reqData.Duration,
		Sequence:    reqData.Sequence,
	})
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		if errors.Is(err, services.ErrEmptyTitle) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Title must not be empty!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create content!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Content created successfully!", content)
}

// AdminDashboardStats returns the aggregate statistics dashboard.
func AdminDashboardStats(c *fiber.Ctx) error {
	catalog := services.NewCatalogService(database.Database.Db)
	stats, err := catalog.GetDashboardStats()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch dashboard stats!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard stats fetched successfully!", stats)
}
