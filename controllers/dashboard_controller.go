package controllers

import (
	"fmt"

	"github.com/sentipay/sentipay/config"
	"github.com/sentipay/sentipay/models"
	"github.com/sentipay/sentipay/utils"

	"github.com/gin-gonic/gin"
)

// Dashboard returns the signed-in user's wallet balance and headline counts
func Dashboard(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var totalVouchers, totalPayments int64
	if err := config.DB.Model(&models.Voucher{}).Count(&totalVouchers).Error; err != nil {
		utils.LogError("Failed to count vouchers: %v", err)
		utils.InternalServerError(c, "Failed to load dashboard", nil)
		return
	}
	if err := config.DB.Model(&models.MerchantPayment{}).Count(&totalPayments).Error; err != nil {
		utils.LogError("Failed to count merchant payments: %v", err)
		utils.InternalServerError(c, "Failed to load dashboard", nil)
		return
	}

	utils.Success(c, "Dashboard loaded", gin.H{
		"wallet_balance": fmt.Sprintf("%.2f", user.WalletBalance),
		"total_vouchers": totalVouchers,
		"total_payments": totalPayments,
	})
}

// Profile returns the signed-in user's account details
func Profile(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	utils.Success(c, "Profile loaded", gin.H{
		"id":         user.ID,
		"phone":      user.Phone,
		"is_admin":   user.IsAdmin,
		"created_at": user.CreatedAt,
	})
}

// currentUser pulls the authenticated user placed in the context by
// middleware.AuthMiddleware, writing the error response on failure.
func currentUser(c *gin.Context) (models.User, bool) {
	userVal, exists := c.Get("user")
	if !exists {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "User not found")
		return models.User{}, false
	}
	user, ok := userVal.(models.User)
	if !ok {
		utils.LogError("Invalid user type in context")
		utils.InternalServerError(c, "Invalid user in context", nil)
		return models.User{}, false
	}
	return user, true
}
