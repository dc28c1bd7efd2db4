package models

import (
	"time"
)

// MerchantPayment status constants
const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
)

// MerchantPayment is an invoice code created by a merchant. Paying it debits
// the payer and credits the merchant, and flips pending -> paid exactly once.
type MerchantPayment struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	MerchantID  uint       `gorm:"not null" json:"merchant_id"`
	Amount      float64    `gorm:"not null" json:"amount"`
	Description string     `json:"description"`
	Code        string     `gorm:"uniqueIndex;not null" json:"code"`
	Status      string     `gorm:"default:pending" json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	PaidAt      *time.Time `json:"paid_at,omitempty"`
}
