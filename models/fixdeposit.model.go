package models

import (
	"gorm.io/gorm"
)

// FixedDeposit belongs to a user. Only unclaimed deposits count toward
// the fd_amount reported in the profile.
type FixedDeposit struct {
	gorm.Model
	UserID    uint    `gorm:"index;not null" json:"user_id"`
	Amount    float64 `gorm:"default:0" json:"amount"`
	IsClaimed bool    `gorm:"default:false" json:"is_claimed"`
}
