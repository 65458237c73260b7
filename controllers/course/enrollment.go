package courseController

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/MeghnathGit/elearning-platform/database"
	"github.com/MeghnathGit/elearning-platform/middleware"
	"github.com/MeghnathGit/elearning-platform/services"
)

func EnrollInCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uint)

	ledger := services.NewEnrollmentService(database.Database.Db)
	result, err := ledger.Enroll(userID, courseID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}

	if result == services.EnrollAlreadyEnrolled {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "You are already enrolled in this course.", fiber.Map{
			"result": result,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrolled in course successfully!", fiber.Map{
		"result": result,
	})
}

func UpdateProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uint)
	rawProgress := c.Locals("validatedProgress").(int)

	ledger := services.NewEnrollmentService(database.Database.Db)
	stored, err := ledger.UpdateProgress(userID, courseID, rawProgress)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "You are not enrolled in this course!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress updated successfully!", fiber.Map{
		"progress": stored,
	})
}

// GetMyCourses lists the caller's enrolled courses with progress, most
// recently enrolled first.
func GetMyCourses(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	ledger := services.NewEnrollmentService(database.Database.Db)
	enrolled, err := ledger.ListForUser(userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments": enrolled,
	})
}

// GetSuggestedCourses returns a bounded random sample of courses the caller
// has not enrolled in yet.
func GetSuggestedCourses(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	limit := c.Locals("suggestionsLimit").(int)

	ledger := services.NewEnrollmentService(database.Database.Db)
	courses, err := ledger.ListUnenrolledForUser(userID, limit)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch suggestions!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Suggested courses fetched successfully!", fiber.Map{
		"courses": courses,
	})
}
