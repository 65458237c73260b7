package authController

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/MeghnathGit/elearning-platform/config"
	"github.com/MeghnathGit/elearning-platform/database"
	"github.com/MeghnathGit/elearning-platform/middleware"
	"github.com/MeghnathGit/elearning-platform/models"
	"github.com/MeghnathGit/elearning-platform/services"
)

func credentials() *services.CredentialService {
	return services.NewCredentialService(
		database.Database.Db,
		config.AppConfig.SaltRound,
		config.AppConfig.AllowEmailLogin,
	)
}

func Signup(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSignup").(*struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	user, err := credentials().Register(reqData.Username, reqData.Email, reqData.Password)
	if err != nil {
		if errors.Is(err, services.ErrConflict) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Username or email is already registered!", nil)
		}
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully.", user)
}

func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*struct {
		Username string `json:"username"`
		Password string `json:"password"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	user, err := credentials().Verify(reqData.Username, reqData.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
		}
		log.Printf("Error verifying credentials: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	token, err := middleware.GenerateJWT(user.ID, user.Username, user.Role, user.Email)
	if err != nil {
		log.Printf("Error generating JWT: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged in successfully!", fiber.Map{
		"token": token,
		"user":  user,
	})
}

// Profile returns the caller's account along with their enrollment count.
func Profile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.First(&user, userID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	enrolledCount, err := services.NewEnrollmentService(database.Database.Db).CountForUser(userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch profile!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully!", fiber.Map{
		"user":            user,
		"enrolled_courses": enrolledCount,
	})
}
