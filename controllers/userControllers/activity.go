package userController

import (
	"errors"

	"github.com/Deva1502/kono-banking-application-main/database"
	"github.com/Deva1502/kono-banking-application-main/middleware"
	"github.com/Deva1502/kono-banking-application-main/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetTransactions returns the caller's ledger entries, newest first.
func GetTransactions(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	var transactions []models.Transaction
	if err := database.Database.Db.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&transactions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch transactions!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Transactions fetched successfully.", transactions)
}

// GetFixedDeposits returns all of the caller's fixed deposits, claimed
// ones included; only unclaimed ones count toward the profile total.
func GetFixedDeposits(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	var deposits []models.FixedDeposit
	if err := database.Database.Db.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&deposits).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch fixed deposits!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Fixed deposits fetched successfully.", deposits)
}

// GetATMCard returns a single card, scoped to the caller so one user
// cannot read another's card by id.
func GetATMCard(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)
	cardID := c.Params("id")

	var card models.ATMCard
	err := database.Database.Db.
		Where("id = ? AND user_id = ?", cardID, userID).
		First(&card).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "ATM card not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch ATM card!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "ATM card fetched successfully.", card)
}
