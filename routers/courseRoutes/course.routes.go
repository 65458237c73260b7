package courseRoutes

import (
	"github.com/gofiber/fiber/v2"

	controllers "github.com/MeghnathGit/elearning-platform/controllers/course"
	"github.com/MeghnathGit/elearning-platform/middleware"
	validators "github.com/MeghnathGit/elearning-platform/validators/course"
)

// SetupCourseRoutes sets up all user-facing course routes
func SetupCourseRoutes(app *fiber.App) {
	// Public landing-page listing
	app.Get("/courses/featured", controllers.GetFeaturedCourses)

	courseGroup := app.Group("/course")

	// Catalog browsing
	courseGroup.Get("/list", middleware.JWTMiddleware, controllers.GetAllCourses)
	courseGroup.Get("/:id", middleware.JWTMiddleware, validators.CourseID(), controllers.GetCourseDetails)

	// Enrollment and progress
	courseGroup.Post("/:id/enroll", middleware.JWTMiddleware, validators.CourseID(), controllers.EnrollInCourse)
	courseGroup.Patch("/:id/progress", middleware.JWTMiddleware, validators.CourseID(), validators.UpdateProgress(), controllers.UpdateProgress)
}
