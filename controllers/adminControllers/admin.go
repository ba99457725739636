package adminController

import (
	"errors"

	"github.com/Deva1502/kono-banking-application-main/database"
	"github.com/Deva1502/kono-banking-application-main/middleware"
	"github.com/Deva1502/kono-banking-application-main/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ListUsers returns all users for back-office use.
func ListUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := database.Database.Db.Order("created_at desc").Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
	}

	for i := range users {
		users[i].Password = ""
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully.", users)
}

// CreateFixedDeposit seeds a fixed deposit for a user. Interest and
// claiming are handled outside this service.
func CreateFixedDeposit(c *fiber.Ctx) error {
	var body struct {
		UserID uint    `json:"user_id"`
		Amount float64 `json:"amount"`
	}
	if err := c.BodyParser(&body); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var user models.User
	if err := database.Database.Db.First(&user, body.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	deposit := models.FixedDeposit{
		UserID: body.UserID,
		Amount: body.Amount,
	}

	if err := database.Database.Db.Create(&deposit).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create fixed deposit!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Fixed deposit created successfully.", deposit)
}
