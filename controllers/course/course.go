package courseController

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/MeghnathGit/elearning-platform/database"
	"github.com/MeghnathGit/elearning-platform/middleware"
	"github.com/MeghnathGit/elearning-platform/services"
)

// GetAllCourses lists the catalog with optional category, level and title
// search filters taken from query parameters.
func GetAllCourses(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	filter := services.CourseFilter{
		Category: c.Query("category"),
		Level:    c.Query("level"),
		Search:   c.Query("search"),
	}

	catalog := services.NewCatalogService(database.Database.Db)
	courses, err := catalog.ListCourses(filter)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	// Mark which courses the caller is already enrolled in
	enrolled, err := services.NewEnrollmentService(database.Database.Db).ListForUser(userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}
	enrolledIDs := make([]uint, 0, len(enrolled))
	for _, e := range enrolled {
		enrolledIDs = append(enrolledIDs, e.Course.ID)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses":             courses,
		"enrolled_course_ids": enrolledIDs,
	})
}

// GetCourseDetails returns one course with its contents and the caller's
// enrollment state.
func GetCourseDetails(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(uint)

	catalog := services.NewCatalogService(database.Database.Db)
	course, err := catalog.GetCourse(courseID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course!", nil)
	}

	contents, err := catalog.ListContent(courseID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch course content!", nil)
	}

	ledger := services.NewEnrollmentService(database.Database.Db)
	enrollment, err := ledger.GetEnrollment(userID, courseID)
	isEnrolled := err == nil

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully!", fiber.Map{
		"course":      course,
		"contents":    contents,
		"is_enrolled": isEnrolled,
		"enrollment":  enrollment,
	})
}

// GetFeaturedCourses returns the newest courses for the landing page. This
// endpoint is public.
func GetFeaturedCourses(c *fiber.Ctx) error {
	limit := 6
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	courses, err := services.NewCatalogService(database.Database.Db).FeaturedCourses(limit)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Featured courses fetched successfully!", fiber.Map{
		"courses": courses,
	})
}
