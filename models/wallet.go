package models

import (
	"time"
)

// WalletTransaction is the append-only ledger entry behind every wallet
// balance mutation. Rows are never updated or deleted.
type WalletTransaction struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Type      string    `json:"type"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

// Transaction type labels for the fixed wallet flows. Utility purchases use
// a category-specific label built by the controller, e.g. "Mobile (MTN)".
const (
	TransactionTypeVoucherRedeem   = "Voucher Redeemed"
	TransactionTypeMerchantPayment = "Merchant Payment"
	TransactionTypeMerchantReceipt = "Merchant Payment Received"
	TransactionTypeMarketplace     = "Marketplace Order"
)
