package controllers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sentipay/sentipay/config"
	"github.com/sentipay/sentipay/models"
	"github.com/sentipay/sentipay/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Checkout turns the caller's cart into a paid order. The whole flow runs in
// one transaction: totaling the cart, debiting the wallet, creating the order
// and clearing the cart all commit or roll back together.
func Checkout(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	utils.LogInfo("Checkout called by user ID: %d", user.ID)

	var order models.MarketplaceOrder
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var items []models.CartItem
		if err := tx.Preload("Product").Where("user_id = ?", user.ID).Find(&items).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return utils.ErrEmptyCart
		}

		var total float64
		titles := make([]string, len(items))
		for i, item := range items {
			total += item.Product.Price * float64(item.Qty)
			titles[i] = fmt.Sprintf("%s x%d", item.Product.Title, item.Qty)
		}

		if err := utils.DebitWalletTx(tx, user.ID, total, models.TransactionTypeMarketplace); err != nil {
			return err
		}

		ref, err := utils.GenerateCode(8)
		if err != nil {
			return err
		}
		order = models.MarketplaceOrder{
			UserID:          user.ID,
			Total:           total,
			Status:          models.OrderStatusPaid,
			ExternalOrderID: "SIM-" + ref,
			Details:         strings.Join(titles, ", "),
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		return tx.Where("user_id = ?", user.ID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrEmptyCart):
			utils.BadRequest(c, "Cart is empty", nil)
		case errors.Is(err, utils.ErrInsufficientFunds):
			utils.BadRequest(c, "Insufficient wallet balance", nil)
		default:
			utils.LogError("Checkout failed for user ID: %d: %v", user.ID, err)
			utils.InternalServerError(c, "Checkout failed", nil)
		}
		return
	}

	utils.LogInfo("Order %d (%.2f) placed by user ID: %d", order.ID, order.Total, user.ID)
	utils.Created(c, "Order placed", gin.H{"order": formatOrder(order)})
}

// ListOrders returns the caller's marketplace orders, newest first
func ListOrders(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var orders []models.MarketplaceOrder
	if err := config.DB.Where("user_id = ?", user.ID).
		Order("created_at DESC").Find(&orders).Error; err != nil {
		utils.LogError("Failed to list orders for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to load orders", nil)
		return
	}

	formatted := make([]gin.H, len(orders))
	for i, o := range orders {
		formatted[i] = formatOrder(o)
	}
	utils.Success(c, "Orders loaded", gin.H{"orders": formatted})
}

// GetOrder returns one order. Only the owner or an admin may view it.
func GetOrder(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var order models.MarketplaceOrder
	if err := config.DB.First(&order, c.Param("id")).Error; err != nil {
		utils.NotFound(c, "Order not found")
		return
	}
	if order.UserID != user.ID && !user.IsAdmin {
		utils.Forbidden(c, "Not your order")
		return
	}

	utils.Success(c, "Order loaded", gin.H{"order": formatOrder(order)})
}

func formatOrder(order models.MarketplaceOrder) gin.H {
	return gin.H{
		"id":                order.ID,
		"user_id":           order.UserID,
		"total":             formatPrice(order.Total),
		"status":            order.Status,
		"external_order_id": order.ExternalOrderID,
		"details":           order.Details,
		"created_at":        order.CreatedAt,
	}
}
