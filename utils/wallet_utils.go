package utils

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"sort"

	"github.com/sentipay/sentipay/config"
	"github.com/sentipay/sentipay/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LockForUpdate takes a row-level lock for the duration of the surrounding
// transaction. SQLite (used by the test suite) has no FOR UPDATE; its single
// writer already serializes the check-then-mutate sequence.
func LockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// LockUsersForUpdate locks the given user rows in ascending ID order.
// Transfers touching two wallets take both locks up front so two
// opposite-direction transfers cannot deadlock on each other's rows.
func LockUsersForUpdate(tx *gorm.DB, ids ...uint) error {
	sorted := make([]uint, len(ids))
	copy(sorted, ids)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	for _, id := range sorted {
		var user models.User
		if err := LockForUpdate(tx).First(&user, id).Error; err != nil {
			return err
		}
	}
	return nil
}

// CreditWalletTx increases the user's wallet balance and appends the matching
// ledger entry. Must run inside the caller's transaction; on error the caller
// rolls back, so balance and ledger always move together.
func CreditWalletTx(tx *gorm.DB, userID uint, amount float64, label string) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	var user models.User
	if err := LockForUpdate(tx).First(&user, userID).Error; err != nil {
		return err
	}

	if err := tx.Model(&models.User{}).Where("id = ?", userID).
		Update("wallet_balance", gorm.Expr("wallet_balance + ?", amount)).Error; err != nil {
		return err
	}

	entry := models.WalletTransaction{
		UserID: userID,
		Type:   label,
		Amount: amount,
	}
	return tx.Create(&entry).Error
}

// DebitWalletTx decreases the user's wallet balance and appends the matching
// ledger entry. The balance check happens under the row lock, so concurrent
// debits cannot both pass it and drive the balance negative. Returns
// ErrInsufficientFunds without mutating anything when the balance is short.
func DebitWalletTx(tx *gorm.DB, userID uint, amount float64, label string) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	var user models.User
	if err := LockForUpdate(tx).First(&user, userID).Error; err != nil {
		return err
	}

	if user.WalletBalance < amount {
		return ErrInsufficientFunds
	}

	if err := tx.Model(&models.User{}).Where("id = ?", userID).
		Update("wallet_balance", gorm.Expr("wallet_balance - ?", amount)).Error; err != nil {
		return err
	}

	entry := models.WalletTransaction{
		UserID: userID,
		Type:   label,
		Amount: amount,
	}
	return tx.Create(&entry).Error
}

// GenerateCode returns a URL-safe random code built from n random bytes. The
// code space is wide enough that a unique-constraint collision indicates a
// misconfigured generator, not bad luck, so callers treat it as an error
// rather than retrying.
func GenerateCode(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate code: %v", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// GetUserBalance reads the current wallet balance outside any transaction
func GetUserBalance(userID uint) (float64, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return 0, err
	}
	return user.WalletBalance, nil
}
