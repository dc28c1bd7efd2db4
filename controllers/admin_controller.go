package controllers

import (
	"strconv"
	"time"

	"github.com/sentipay/sentipay/config"
	"github.com/sentipay/sentipay/models"
	"github.com/sentipay/sentipay/utils"

	"github.com/gin-gonic/gin"
)

const adminStatsCacheKey = "admin:dashboard"

type adminStats struct {
	TotalUsers    int64   `json:"total_users"`
	TotalVouchers int64   `json:"total_vouchers"`
	TotalPayments int64   `json:"total_payments"`
	TotalBalance  float64 `json:"total_balance"`
}

// AdminDashboard returns platform-wide totals, cached for a minute
func AdminDashboard(c *gin.Context) {
	var stats adminStats
	hit, err := utils.GetCache(c.Request.Context(), config.Redis, adminStatsCacheKey, &stats)
	if err != nil {
		utils.LogError("Admin stats cache read failed: %v", err)
	} else if hit {
		utils.Success(c, "Dashboard loaded", gin.H{"stats": stats})
		return
	}

	if err := config.DB.Model(&models.User{}).Count(&stats.TotalUsers).Error; err != nil {
		utils.LogError("Failed to count users: %v", err)
		utils.InternalServerError(c, "Failed to load dashboard", nil)
		return
	}
	if err := config.DB.Model(&models.Voucher{}).Count(&stats.TotalVouchers).Error; err != nil {
		utils.LogError("Failed to count vouchers: %v", err)
		utils.InternalServerError(c, "Failed to load dashboard", nil)
		return
	}
	if err := config.DB.Model(&models.MerchantPayment{}).Count(&stats.TotalPayments).Error; err != nil {
		utils.LogError("Failed to count payments: %v", err)
		utils.InternalServerError(c, "Failed to load dashboard", nil)
		return
	}
	if err := config.DB.Model(&models.User{}).
		Select("COALESCE(SUM(wallet_balance), 0)").Scan(&stats.TotalBalance).Error; err != nil {
		utils.LogError("Failed to sum balances: %v", err)
		utils.InternalServerError(c, "Failed to load dashboard", nil)
		return
	}

	if err := utils.SetCache(c.Request.Context(), config.Redis, adminStatsCacheKey, stats, time.Minute); err != nil {
		utils.LogError("Admin stats cache write failed: %v", err)
	}

	utils.Success(c, "Dashboard loaded", gin.H{"stats": stats})
}

// AdminListUsers returns a paginated user list with balances
func AdminListUsers(c *gin.Context) {
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
	if err := config.DB.Model(&models.User{}).Count(&total).Error; err != nil {
		utils.LogError("Failed to count users: %v", err)
		utils.InternalServerError(c, "Failed to load users", nil)
		return
	}

	var users []models.User
	if err := config.DB.Order("created_at DESC").
		Limit(limit).Offset(offset).Find(&users).Error; err != nil {
		utils.LogError("Failed to list users: %v", err)
		utils.InternalServerError(c, "Failed to load users", nil)
		return
	}

	formatted := make([]gin.H, len(users))
	for i, u := range users {
		formatted[i] = gin.H{
			"id":             u.ID,
			"phone":          u.Phone,
			"wallet_balance": formatPrice(u.WalletBalance),
			"is_admin":       u.IsAdmin,
			"created_at":     u.CreatedAt,
		}
	}

	utils.SuccessWithPagination(c, "Users loaded", formatted, total, page, limit)
}
