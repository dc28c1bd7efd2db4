package controllers

import (
	"fmt"
	"strconv"

	"github.com/sentipay/sentipay/config"
	"github.com/sentipay/sentipay/models"
	"github.com/sentipay/sentipay/utils"

	"github.com/gin-gonic/gin"
)

// GetWallet returns the balance plus the most recent ledger entries
func GetWallet(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var recent []models.WalletTransaction
	if err := config.DB.Where("user_id = ?", user.ID).
		Order("created_at DESC").Limit(5).Find(&recent).Error; err != nil {
		utils.LogError("Failed to fetch recent transactions for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to load wallet", nil)
		return
	}

	utils.Success(c, "Wallet loaded", gin.H{
		"balance":             fmt.Sprintf("%.2f", user.WalletBalance),
		"recent_transactions": formatTransactions(recent),
	})
}

// GetWalletTransactions returns the full ledger history, newest first
func GetWalletTransactions(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	var total int64
	if err := config.DB.Model(&models.WalletTransaction{}).
		Where("user_id = ?", user.ID).Count(&total).Error; err != nil {
		utils.LogError("Failed to count transactions for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to count transactions", nil)
		return
	}

	var transactions []models.WalletTransaction
	if err := config.DB.Where("user_id = ?", user.ID).
		Order("created_at DESC").Limit(limit).Offset(offset).
		Find(&transactions).Error; err != nil {
		utils.LogError("Failed to fetch transactions for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch transactions", nil)
		return
	}

	utils.SuccessWithPagination(c, "Transactions loaded", formatTransactions(transactions), total, page, limit)
}

func formatTransactions(transactions []models.WalletTransaction) []gin.H {
	formatted := make([]gin.H, len(transactions))
	for i, txn := range transactions {
		formatted[i] = gin.H{
			"id":         txn.ID,
			"type":       txn.Type,
			"amount":     fmt.Sprintf("%.2f", txn.Amount),
			"created_at": txn.CreatedAt,
		}
	}
	return formatted
}
