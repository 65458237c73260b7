package courseRoutes

import (
	"github.com/gofiber/fiber/v2"

	adminControllers "github.com/MeghnathGit/elearning-platform/controllers/admin"
	"github.com/MeghnathGit/elearning-platform/middleware"
	validators "github.com/MeghnathGit/elearning-platform/validators/course"
)

// SetupAdminCourseRoutes sets up all admin course management routes
func SetupAdminCourseRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.AdminOnly)

	// Course and content creation
	adminGroup.Post("/course/create", validators.CreateCourse(), adminControllers.AdminCreateCourse)
	adminGroup.Post("/course/:id/content", validators.CourseID(), validators.CreateContent(), adminControllers.AdminAddContent)

	// Dashboard
	adminGroup.Get("/dashboard/stats", adminControllers.AdminDashboardStats)
}
