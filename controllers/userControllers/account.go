package userController

import (
	"errors"
	"fmt"
	"log"

	"github.com/Deva1502/kono-banking-application-main/database"
	"github.com/Deva1502/kono-banking-application-main/models"

	"gorm.io/gorm"
)

// EnsurePrimaryAccount guarantees the user owns at least one account.
// When the user already has accounts they are returned unchanged with
// created=false. When none exist, exactly one account (balance 0, type
// from the user's preference) is created together with its zero-amount
// opening transaction in a single store transaction; created=true.
//
// The account row carries a provisioning marker with a unique index, so
// two concurrent first calls cannot both insert: the loser hits a
// duplicate-key error, re-reads and returns the winner's account. The
// conflict is resolved here and never reaches the caller.
func EnsurePrimaryAccount(userID uint) ([]models.Account, bool, error) {
	db := database.Database.Db

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, models.ErrNotFound
		}
		return nil, false, fmt.Errorf("%w: %v", models.ErrStorage, err)
	}

	var accounts []models.Account
	if err := db.Where("user_id = ?", userID).Find(&accounts).Error; err != nil {
		return nil, false, fmt.Errorf("%w: %v", models.ErrStorage, err)
	}
	if len(accounts) > 0 {
		return accounts, false, nil
	}

	acType := user.AcType
	if acType == "" {
		acType = models.AcTypeSavings
	}

	marker := userID
	account := models.Account{
		UserID:       userID,
		Amount:       0,
		AcType:       acType,
		ProvisionKey: &marker,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&account).Error; err != nil {
			return err
		}
		opening := models.Transaction{
			UserID:    userID,
			AccountID: account.ID,
			Amount:    0,
			Type:      models.TxnCredit,
			IsSuccess: true,
			Remark:    models.OpeningRemark,
		}
		return tx.Create(&opening).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			log.Printf("Account provisioning lost the race for user %d, re-reading", userID)
			if err := db.Where("user_id = ?", userID).Find(&accounts).Error; err != nil {
				return nil, false, fmt.Errorf("%w: %v", models.ErrStorage, err)
			}
			if len(accounts) == 0 {
				return nil, false, fmt.Errorf("%w: account vanished after duplicate provisioning", models.ErrConflict)
			}
			return accounts, false, nil
		}
		return nil, false, fmt.Errorf("%w: %v", models.ErrStorage, err)
	}

	return []models.Account{account}, true, nil
}
