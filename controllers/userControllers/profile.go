package userController

import (
	"errors"
	"fmt"
	"log"

	"github.com/Deva1502/kono-banking-application-main/database"
	"github.com/Deva1502/kono-banking-application-main/middleware"
	"github.com/Deva1502/kono-banking-application-main/models"
	"github.com/Deva1502/kono-banking-application-main/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// profileAllowList names the user fields a profile patch may touch.
// Everything else (email, password, ac_type, id, ...) is silently
// dropped; that is the security boundary, not an error.
var profileAllowList = map[string]bool{
	"name":           true,
	"phone":          true,
	"dob":            true,
	"address":        true,
	"role":           true,
	"status":         true,
	"avatar_url":     true,
	"email_verified": true,
	"phone_verified": true,
	"kyc_verified":   true,
	"kyc_status":     true,
}

// BuildProfilePatch filters a raw patch down to the allow-list and
// normalizes date-valued fields. A dob that does not parse as a real
// calendar date fails the whole patch before anything is written.
func BuildProfilePatch(patch map[string]interface{}) (map[string]interface{}, error) {
	fields := map[string]interface{}{}
	for key, value := range patch {
		if !profileAllowList[key] {
			continue
		}
		if key == "dob" {
			raw, ok := value.(string)
			if !ok {
				return nil, fmt.Errorf("%w: dob must be a date string", models.ErrValidation)
			}
			parsed, err := utils.ParseDate(raw)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", models.ErrValidation, err)
			}
			fields[key] = parsed
			continue
		}
		fields[key] = value
	}
	return fields, nil
}

// BuildProfile assembles the composite profile view: user fields plus
// account summaries, the unclaimed fixed-deposit total and ATM card
// summaries. Pure read; it assumes provisioning already ran when the
// caller needs the at-least-one-account guarantee.
func BuildProfile(userID uint) (*models.ProfileView, error) {
	db := database.Database.Db

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", models.ErrStorage, err)
	}

	accounts := []models.AccountSummary{}
	if err := db.Model(&models.Account{}).
		Where("user_id = ?", userID).
		Select("id, amount, ac_type").
		Order("id").
		Scan(&accounts).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStorage, err)
	}

	var fdAmount float64
	if err := db.Model(&models.FixedDeposit{}).
		Where("user_id = ? AND is_claimed = ?", userID, false).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&fdAmount).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStorage, err)
	}

	atms := []models.ATMCardSummary{}
	if err := db.Model(&models.ATMCard{}).
		Where("user_id = ?", userID).
		Select("id, card_type").
		Order("id").
		Scan(&atms).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrStorage, err)
	}

	return &models.ProfileView{
		ID:            user.ID,
		Name:          user.Name,
		Email:         user.Email,
		AcType:        user.AcType,
		Phone:         user.Phone,
		Dob:           user.Dob,
		Address:       user.Address,
		Role:          user.Role,
		Status:        user.Status,
		AvatarURL:     user.AvatarURL,
		EmailVerified: user.EmailVerified,
		PhoneVerified: user.PhoneVerified,
		KycVerified:   user.KycVerified,
		KycStatus:     user.KycStatus,
		LastLoginAt:   user.LastLoginAt,
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
		Accounts:      accounts,
		FdAmount:      fdAmount,
		Atms:          atms,
	}, nil
}

// ApplyProfileUpdate persists an allow-listed patch, re-provisions and
// re-aggregates, so the response matches a fresh profile fetch.
func ApplyProfileUpdate(userID uint, patch map[string]interface{}) (*models.ProfileView, error) {
	fields, err := BuildProfilePatch(patch)
	if err != nil {
		return nil, err
	}

	db := database.Database.Db

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", models.ErrStorage, err)
	}

	if len(fields) > 0 {
		if err := db.Model(&models.User{}).Where("id = ?", userID).Updates(fields).Error; err != nil {
			return nil, fmt.Errorf("%w: %v", models.ErrStorage, err)
		}
	}

	if _, _, err := EnsurePrimaryAccount(userID); err != nil {
		return nil, err
	}

	return BuildProfile(userID)
}

// GetProfile handles GET /user/profile.
func GetProfile(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	if _, _, err := EnsurePrimaryAccount(userID); err != nil {
		return profileErrorResponse(c, err)
	}

	view, err := BuildProfile(userID)
	if err != nil {
		return profileErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully.", view)
}

// UpdateProfile handles PUT /user/profile.
func UpdateProfile(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	patch := map[string]interface{}{}
	if err := c.BodyParser(&patch); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	view, err := ApplyProfileUpdate(userID, patch)
	if err != nil {
		return profileErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully.", view)
}

func profileErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Profile not found!", nil)
	case errors.Is(err, models.ErrValidation):
		return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, err.Error(), nil)
	case errors.Is(err, models.ErrConflict):
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Please retry your request.", nil)
	default:
		log.Printf("Profile request failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}
}
