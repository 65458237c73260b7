package courseValidator

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/MeghnathGit/elearning-platform/middleware"
)

// CourseID validates the :id route parameter and stores it in locals.
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseIDStr := strings.TrimSpace(c.Params("id"))
		if courseIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID is required!", nil)
		}

		courseID, err := strconv.Atoi(courseIDStr)
		if err != nil || courseID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		c.Locals("courseID", uint(courseID))
		return c.Next()
	}
}

// UpdateProgress validates the progress payload. A missing or unparseable
// value is rejected here, so the stored progress stays untouched;
// out-of-range values pass through and get clamped downstream.
func UpdateProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Progress *int `json:"progress"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Progress == nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"progress": "Progress is required and must be an integer!",
			})
		}

		c.Locals("validatedProgress", *reqData.Progress)
		return c.Next()
	}
}

// CreateCourse validates the admin course-creation payload.
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			Category    string `json:"category"`
			Instructor  string `json:"instructor"`
			Duration    int64  `json:"duration"`
			Level       string `json:"level"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Title
		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}

		// Validate Duration
		if reqData.Duration < 0 {
			errors["duration"] = "Duration must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// CreateContent validates the admin content-creation payload.
func CreateContent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string `json:"title"`
			ContentType string `json:"content_type"`
			ContentURL  string `json:"content_url"`
			Duration    string `json:"duration"`
			Sequence    int    `json:"sequence"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}

		switch reqData.ContentType {
		case "", "VIDEO", "PDF", "QUIZ":
		default:
			errors["content_type"] = "Content type must be VIDEO, PDF or QUIZ!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedContent", reqData)
		return c.Next()
	}
}

// SuggestionsQuery validates the optional limit query parameter.
func SuggestionsQuery() fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit := 3
		if limitStr := c.Query("limit"); limitStr != "" {
			parsed, err := strconv.Atoi(limitStr)
			if err != nil || parsed < 1 {
				return middleware.ValidationErrorResponse(c, map[string]string{
					"limit": "Limit must be a positive integer!",
				})
			}
			limit = parsed
		}

		c.Locals("suggestionsLimit", limit)
		return c.Next()
	}
}
