package controllers

import (
	"github.com/sentipay/sentipay/config"
	"github.com/sentipay/sentipay/models"
	"github.com/sentipay/sentipay/utils"

	"github.com/gin-gonic/gin"
)

// ProductRequest represents the admin create/update payload
type ProductRequest struct {
	StoreID     *uint   `json:"store_id"`
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	InStock     *bool   `json:"in_stock"`
}

// AdminListProducts returns the whole catalog for the admin panel
func AdminListProducts(c *gin.Context) {
	var products []models.Product
	if err := config.DB.Preload("Store").Order("created_at DESC").Find(&products).Error; err != nil {
		utils.LogError("Failed to list products for admin: %v", err)
		utils.InternalServerError(c, "Failed to load products", nil)
		return
	}
	utils.Success(c, "Products loaded", gin.H{"products": products})
}

// AdminCreateProduct adds a product to the catalog
func AdminCreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid product details", err.Error())
		return
	}
	if req.Price < 0 {
		utils.BadRequest(c, "Price cannot be negative", nil)
		return
	}
	if req.StoreID != nil {
		var store models.Store
		if err := config.DB.First(&store, *req.StoreID).Error; err != nil {
			utils.NotFound(c, "Store not found")
			return
		}
	}

	product := models.Product{
		StoreID:     req.StoreID,
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		InStock:     true,
	}
	if req.InStock != nil {
		product.InStock = *req.InStock
	}
	if err := config.DB.Create(&product).Error; err != nil {
		utils.LogError("Failed to create product: %v", err)
		utils.InternalServerError(c, "Failed to create product", nil)
		return
	}

	invalidateProductCache(c)
	utils.LogInfo("Product %d created", product.ID)
	utils.Created(c, "Product created", gin.H{"product": product})
}

// AdminUpdateProduct edits an existing product
func AdminUpdateProduct(c *gin.Context) {
	var product models.Product
	if err := config.DB.First(&product, c.Param("id")).Error; err != nil {
		utils.NotFound(c, "Product not found")
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid product details", err.Error())
		return
	}
	if req.Price < 0 {
		utils.BadRequest(c, "Price cannot be negative", nil)
		return
	}

	product.StoreID = req.StoreID
	product.Title = req.Title
	product.Description = req.Description
	product.Price = req.Price
	product.Image = req.Image
	if req.InStock != nil {
		product.InStock = *req.InStock
	}
	if err := config.DB.Save(&product).Error; err != nil {
		utils.LogError("Failed to update product %d: %v", product.ID, err)
		utils.InternalServerError(c, "Failed to update product", nil)
		return
	}

	invalidateProductCache(c)
	utils.LogInfo("Product %d updated", product.ID)
	utils.Success(c, "Product updated", gin.H{"product": product})
}

// AdminDeleteProduct removes a product and any cart lines pointing at it
func AdminDeleteProduct(c *gin.Context) {
	var product models.Product
	if err := config.DB.First(&product, c.Param("id")).Error; err != nil {
		utils.NotFound(c, "Product not found")
		return
	}

	if err := config.DB.Where("product_id = ?", product.ID).Delete(&models.CartItem{}).Error; err != nil {
		utils.LogError("Failed to clear cart lines for product %d: %v", product.ID, err)
		utils.InternalServerError(c, "Failed to delete product", nil)
		return
	}
	if err := config.DB.Delete(&product).Error; err != nil {
		utils.LogError("Failed to delete product %d: %v", product.ID, err)
		utils.InternalServerError(c, "Failed to delete product", nil)
		return
	}

	invalidateProductCache(c)
	utils.LogInfo("Product %d deleted", product.ID)
	utils.Success(c, "Product deleted", nil)
}
