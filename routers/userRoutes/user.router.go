package userRoutes

import (
	"github.com/gofiber/fiber/v2"

	authControllers "github.com/MeghnathGit/elearning-platform/controllers/auth"
	courseControllers "github.com/MeghnathGit/elearning-platform/controllers/course"
	"github.com/MeghnathGit/elearning-platform/middleware"
	validators "github.com/MeghnathGit/elearning-platform/validators/course"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/user", middleware.JWTMiddleware)

	userGroup.Get("/profile", authControllers.Profile)
	userGroup.Get("/enrollments", courseControllers.GetMyCourses)
	userGroup.Get("/suggestions", validators.SuggestionsQuery(), courseControllers.GetSuggestedCourses)
}
