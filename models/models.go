package models

import (
	"time"
)

// User represents an account holder. The wallet balance lives directly on the
// user row; every mutation of it appends a WalletTransaction.
type User struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Phone         string    `gorm:"uniqueIndex;not null" json:"phone"`
	Password      string    `gorm:"not null" json:"-"`
	WalletBalance float64   `gorm:"not null;default:0" json:"wallet_balance"`
	IsAdmin       bool      `gorm:"default:false" json:"is_admin"`
	CreatedAt     time.Time `json:"created_at"`
}

// Store represents a merchant storefront in the marketplace
type Store struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Domain    string    `json:"domain"`
	CreatedAt time.Time `json:"created_at"`
}

// Product represents a marketplace product
type Product struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	StoreID     *uint     `json:"store_id"`
	Store       *Store    `json:"store,omitempty" gorm:"foreignKey:StoreID"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description"`
	Price       float64   `gorm:"not null" json:"price"`
	Image       string    `json:"image"`
	InStock     bool      `gorm:"default:true" json:"in_stock"`
	CreatedAt   time.Time `json:"created_at"`
}

// CartItem holds one product line in a user's cart. Adding the same product
// again merges into the existing row, so (user, product) stays unique.
type CartItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"user_id"`
	ProductID uint      `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"product_id"`
	Product   Product   `json:"product" gorm:"foreignKey:ProductID"`
	Qty       int       `gorm:"default:1" json:"qty"`
	CreatedAt time.Time `json:"created_at"`
}

// MarketplaceOrder is created at checkout. Total is frozen at creation time.
type MarketplaceOrder struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          uint      `gorm:"not null" json:"user_id"`
	Total           float64   `gorm:"not null" json:"total"`
	Status          string    `gorm:"default:processing" json:"status"`
	ExternalOrderID string    `json:"external_order_id"`
	Details         string    `json:"details"`
	CreatedAt       time.Time `json:"created_at"`
}

// Order status constants
const (
	OrderStatusProcessing = "processing"
	OrderStatusPaid       = "paid"
)

// UtilityPurchase records a simulated utility buy (airtime, electricity,
// digital voucher, lotto). There is no provider integration; the row itself
// is the fulfillment.
type UtilityPurchase struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null" json:"user_id"`
	Category  string    `json:"category"`
	Amount    float64   `json:"amount"`
	Details   string    `json:"details"`
	Status    string    `gorm:"default:completed" json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
