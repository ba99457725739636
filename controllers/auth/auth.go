package authController

import (
	"log"
	"strings"
	"time"

	"github.com/Deva1502/kono-banking-application-main/config"
	userController "github.com/Deva1502/kono-banking-application-main/controllers/userControllers"
	"github.com/Deva1502/kono-banking-application-main/database"
	"github.com/Deva1502/kono-banking-application-main/middleware"
	"github.com/Deva1502/kono-banking-application-main/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	AcType   string `json:"ac_type"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup registers a user, provisions the primary account with its
// opening transaction and issues a session token.
func Signup(c *fiber.Ctx) error {
	reqData := new(signupRequest)
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	email := strings.ToLower(strings.TrimSpace(reqData.Email))

	// Check if email already exists
	existingUser := models.User{}
	result := database.Database.Db.Where("email = ?", email).First(&existingUser)
	if result.RowsAffected > 0 {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	acType := reqData.AcType
	if acType == "" {
		acType = models.AcTypeSavings
	}

	user := models.User{
		Name:     reqData.Name,
		Email:    email,
		Password: string(hashedPassword),
		AcType:   acType,
	}

	if err := database.Database.Db.Create(&user).Error; err != nil {
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register user!", nil)
	}

	// Primary account + opening transaction
	if _, _, err := userController.EnsurePrimaryAccount(user.ID); err != nil {
		log.Printf("Error provisioning account for user %d: %v", user.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to provision account!", nil)
	}

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error generating session token!", nil)
	}

	user.Password = ""

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully.", fiber.Map{
		"user":  user,
		"token": token,
	})
}

// Login verifies credentials, touches last_login_at and issues a
// session token.
func Login(c *fiber.Ctx) error {
	reqData := new(loginRequest)
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to parse request body!", nil)
	}

	email := strings.ToLower(strings.TrimSpace(reqData.Email))

	var user models.User
	if err := database.Database.Db.Where("email = ?", email).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	// Update last login time
	now := time.Now()
	user.LastLoginAt = &now
	if err := database.Database.Db.Model(&user).Update("last_login_at", now).Error; err != nil {
		log.Printf("Error saving last login time: %v", err)
	}

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error generating session token!", nil)
	}

	user.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful.", fiber.Map{
		"user":  user,
		"token": token,
	})
}

// Logout revokes the caller's session; the token stops working even
// though its signature is still valid.
func Logout(c *fiber.Ctx) error {
	sessionID, ok := c.Locals("sessionId").(string)
	if !ok || sessionID == "" {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	if err := middleware.DeleteSession(c.Context(), sessionID); err != nil {
		log.Printf("Error revoking session: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to logout!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logout successful.", nil)
}
