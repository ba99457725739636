package models

import (
	"gorm.io/gorm"
)

// ATMCard belongs to a user. The profile only ever reads a summary of
// it; issuance is handled elsewhere.
type ATMCard struct {
	gorm.Model
	UserID   uint   `gorm:"index;not null" json:"user_id"`
	CardType string `gorm:"type:varchar(20)" json:"card_type"`
}
