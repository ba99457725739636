package models

import (
	"gorm.io/gorm"
)

const (
	AcTypeSavings = "savings"
	AcTypeCurrent = "current"
)

// Account holds a balance for a user. ProvisionKey is set to the owner's
// id only on the auto-provisioned account; the unique index makes a
// concurrent second provisioning attempt fail at the store instead of
// creating a duplicate.
type Account struct {
	gorm.Model
	UserID       uint    `gorm:"index;not null" json:"user_id"`
	Amount       float64 `gorm:"default:0" json:"amount"`
	AcType       string  `gorm:"type:varchar(10);default:'savings'" json:"ac_type"` // savings | current
	ProvisionKey *uint   `gorm:"uniqueIndex" json:"-"`
}
