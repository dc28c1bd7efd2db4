package controllers

import (
	"fmt"
	"time"

	"github.com/sentipay/sentipay/config"
	"github.com/sentipay/sentipay/models"
	"github.com/sentipay/sentipay/utils"

	"github.com/gin-gonic/gin"
)

const productCacheKey = "marketplace:products"

// ListProducts returns the marketplace catalog. The unfiltered list is served
// from Redis when available; store-filtered requests always hit the database.
func ListProducts(c *gin.Context) {
	storeID := c.Query("store_id")

	var products []models.Product
	if storeID == "" {
		hit, err := utils.GetCache(c.Request.Context(), config.Redis, productCacheKey, &products)
		if err != nil {
			utils.LogError("Product cache read failed: %v", err)
		} else if hit {
			utils.Success(c, "Products loaded", gin.H{"products": products})
			return
		}
	}

	query := config.DB.Preload("Store").Order("created_at DESC")
	if storeID != "" {
		query = query.Where("store_id = ?", storeID)
	}
	if err := query.Find(&products).Error; err != nil {
		utils.LogError("Failed to list products: %v", err)
		utils.InternalServerError(c, "Failed to load products", nil)
		return
	}

	if storeID == "" {
		if err := utils.SetCache(c.Request.Context(), config.Redis, productCacheKey, products, 5*time.Minute); err != nil {
			utils.LogError("Product cache write failed: %v", err)
		}
	}

	utils.Success(c, "Products loaded", gin.H{"products": products})
}

// GetProduct returns one product by ID
func GetProduct(c *gin.Context) {
	var product models.Product
	if err := config.DB.Preload("Store").First(&product, c.Param("id")).Error; err != nil {
		utils.NotFound(c, "Product not found")
		return
	}
	utils.Success(c, "Product loaded", gin.H{"product": product})
}

// ListStores returns all storefronts with their product counts
func ListStores(c *gin.Context) {
	var stores []models.Store
	if err := config.DB.Order("name ASC").Find(&stores).Error; err != nil {
		utils.LogError("Failed to list stores: %v", err)
		utils.InternalServerError(c, "Failed to load stores", nil)
		return
	}

	formatted := make([]gin.H, len(stores))
	for i, store := range stores {
		var count int64
		if err := config.DB.Model(&models.Product{}).Where("store_id = ?", store.ID).Count(&count).Error; err != nil {
			utils.LogError("Failed to count products for store %d: %v", store.ID, err)
			utils.InternalServerError(c, "Failed to load stores", nil)
			return
		}
		formatted[i] = gin.H{
			"id":            store.ID,
			"name":          store.Name,
			"domain":        store.Domain,
			"product_count": count,
		}
	}

	utils.Success(c, "Stores loaded", gin.H{"stores": formatted})
}

// invalidateProductCache drops the cached catalog after admin changes
func invalidateProductCache(c *gin.Context) {
	if err := utils.DeleteCache(c.Request.Context(), config.Redis, productCacheKey); err != nil {
		utils.LogError("Product cache invalidation failed: %v", err)
	}
}

func formatPrice(price float64) string {
	return fmt.Sprintf("%.2f", price)
}
