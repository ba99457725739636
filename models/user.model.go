package models

import (
	"time"

	"gorm.io/gorm"
)

// User is the aggregation root. Accounts, transactions, fixed deposits
// and ATM cards all reference it by id.
type User struct {
	gorm.Model
	Name          string     `gorm:"not null" json:"name"`
	Email         string     `gorm:"uniqueIndex;not null" json:"email"` // stored lower-case
	Password      string     `gorm:"not null" json:"-"`
	AcType        string     `gorm:"type:varchar(10);default:'savings'" json:"ac_type"` // savings | current
	Phone         string     `json:"phone"`
	Dob           *time.Time `json:"dob"`
	Address       string     `json:"address"`
	Role          string     `gorm:"default:'user'" json:"role"`
	Status        string     `gorm:"default:'Active'" json:"status"`
	AvatarURL     string     `json:"avatar_url"`
	EmailVerified bool       `gorm:"default:false" json:"email_verified"`
	PhoneVerified bool       `gorm:"default:false" json:"phone_verified"`
	KycVerified   bool       `gorm:"default:false" json:"kyc_verified"`
	KycStatus     string     `json:"kyc_status"`
	LastLoginAt   *time.Time `json:"last_login_at"`
}
