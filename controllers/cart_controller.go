package controllers

import (
	"github.com/sentipay/sentipay/config"
	"github.com/sentipay/sentipay/models"
	"github.com/sentipay/sentipay/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AddToCartRequest represents the add-to-cart payload
type AddToCartRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Qty       int  `json:"qty"`
}

// AddToCart puts a product in the caller's cart. Adding a product already in
// the cart merges the quantities instead of creating a second line.
func AddToCart(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}
	if req.Qty < 1 {
		req.Qty = 1
	}

	var product models.Product
	if err := config.DB.First(&product, req.ProductID).Error; err != nil {
		utils.NotFound(c, "Product not found")
		return
	}
	if !product.InStock {
		utils.BadRequest(c, "Product is out of stock", nil)
		return
	}

	// Upsert on the (user, product) unique index so concurrent adds of the
	// same product merge instead of tripping the constraint
	item := models.CartItem{
		UserID:    user.ID,
		ProductID: req.ProductID,
		Qty:       req.Qty,
	}
	err := config.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"qty": gorm.Expr("qty + ?", req.Qty)}),
	}).Create(&item).Error
	if err != nil {
		utils.LogError("Failed to add cart item for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to update cart", nil)
		return
	}

	if err := config.DB.Where("user_id = ? AND product_id = ?", user.ID, req.ProductID).
		First(&item).Error; err != nil {
		utils.LogError("Failed to reload cart item for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to update cart", nil)
		return
	}

	utils.LogInfo("Product %d added to cart for user ID: %d (qty %d)", req.ProductID, user.ID, item.Qty)
	utils.Success(c, "Added to cart", gin.H{
		"item": gin.H{
			"id":         item.ID,
			"product_id": item.ProductID,
			"qty":        item.Qty,
		},
	})
}

// GetCart returns the caller's cart lines and running total
func GetCart(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var items []models.CartItem
	if err := config.DB.Preload("Product").Where("user_id = ?", user.ID).
		Order("created_at ASC").Find(&items).Error; err != nil {
		utils.LogError("Failed to load cart for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to load cart", nil)
		return
	}

	var total float64
	formatted := make([]gin.H, len(items))
	for i, item := range items {
		line := item.Product.Price * float64(item.Qty)
		total += line
		formatted[i] = gin.H{
			"id":       item.ID,
			"product":  item.Product,
			"qty":      item.Qty,
			"subtotal": formatPrice(line),
		}
	}

	utils.Success(c, "Cart loaded", gin.H{
		"items": formatted,
		"total": formatPrice(total),
	})
}

// RemoveFromCart deletes one cart line owned by the caller
func RemoveFromCart(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var item models.CartItem
	if err := config.DB.Where("id = ? AND user_id = ?", c.Param("id"), user.ID).
		First(&item).Error; err != nil {
		utils.NotFound(c, "Cart item not found")
		return
	}
	if err := config.DB.Delete(&item).Error; err != nil {
		utils.LogError("Failed to remove cart item %d: %v", item.ID, err)
		utils.InternalServerError(c, "Failed to update cart", nil)
		return
	}

	utils.Success(c, "Removed from cart", nil)
}
