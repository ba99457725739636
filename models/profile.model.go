package models

import "time"

// AccountSummary is the account projection exposed in a profile.
type AccountSummary struct {
	ID     uint    `json:"id"`
	Amount float64 `json:"amount"`
	AcType string  `json:"ac_type"`
}

// ATMCardSummary is the card projection exposed in a profile.
type ATMCardSummary struct {
	ID       uint   `json:"id"`
	CardType string `json:"card_type"`
}

// ProfileView is the composite payload returned by profile fetch and
// profile update. Accounts and Atms are always non-nil and FdAmount is
// always present (0 when the user has no unclaimed deposits), so the
// response shape is stable across calls.
type ProfileView struct {
	ID            uint             `json:"id"`
	Name          string           `json:"name"`
	Email         string           `json:"email"`
	AcType        string           `json:"ac_type"`
	Phone         string           `json:"phone"`
	Dob           *time.Time       `json:"dob"`
	Address       string           `json:"address"`
	Role          string           `json:"role"`
	Status        string           `json:"status"`
	AvatarURL     string           `json:"avatar_url"`
	EmailVerified bool             `json:"email_verified"`
	PhoneVerified bool             `json:"phone_verified"`
	KycVerified   bool             `json:"kyc_verified"`
	KycStatus     string           `json:"kyc_status"`
	LastLoginAt   *time.Time       `json:"last_login_at"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
	Accounts      []AccountSummary `json:"accounts"`
	FdAmount      float64          `json:"fd_amount"`
	Atms          []ATMCardSummary `json:"atms"`
}
