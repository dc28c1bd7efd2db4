package models

import (
	"time"
)

// Voucher status constants
const (
	VoucherStatusActive   = "active"
	VoucherStatusRedeemed = "redeemed"
)

// Voucher is a bearer cash code. It transitions active -> redeemed exactly
// once, crediting the redeemer's wallet with the fixed amount.
type Voucher struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	CreatorID  uint       `gorm:"not null" json:"creator_id"`
	Amount     float64    `gorm:"not null" json:"amount"`
	Code       string     `gorm:"uniqueIndex;not null" json:"code"`
	Status     string     `gorm:"default:active" json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	RedeemedAt *time.Time `json:"redeemed_at,omitempty"`
}
