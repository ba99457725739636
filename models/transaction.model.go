package models

import (
	"gorm.io/gorm"
)

const (
	TxnCredit = "credit"
	TxnDebit  = "debit"

	// OpeningRemark marks the zero-amount credit paired with every
	// account creation.
	OpeningRemark = "Account Opening"
)

// Transaction is an append-only ledger entry. Never updated or deleted.
type Transaction struct {
	gorm.Model
	UserID    uint    `gorm:"index;not null" json:"user_id"`
	AccountID uint    `gorm:"index;not null" json:"account_id"`
	Amount    float64 `gorm:"default:0" json:"amount"`
	Type      string  `gorm:"type:varchar(10);check:type IN ('credit', 'debit')" json:"type"`
	IsSuccess bool    `gorm:"default:false" json:"is_success"`
	Remark    string  `json:"remark"`
}
