package utils

import (
	"errors"
)

// Domain errors surfaced by the wallet and redemption flows. Controllers map
// them to HTTP responses at the request boundary; none are fatal.
var (
	// ErrInvalidAmount signals a missing, non-numeric, or non-positive amount.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInsufficientFunds signals a debit larger than the wallet balance.
	ErrInsufficientFunds = errors.New("insufficient wallet balance")
	// ErrEmptyCart signals a checkout attempt with no cart items.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrVoucherRedeemed signals a second redemption of the same voucher code.
	ErrVoucherRedeemed = errors.New("voucher already redeemed")
	// ErrPaymentPaid signals a second payment against the same invoice code.
	ErrPaymentPaid = errors.New("payment already completed")
)
