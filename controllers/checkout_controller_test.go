package controllers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/sentipay/sentipay/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkoutRouter(userID uint) *gin.Engine {
	router := gin.New()
	user := router.Group("/user", authAs(userID))
	user.POST("/cart/add", AddToCart)
	user.POST("/checkout", Checkout)
	user.GET("/orders", ListOrders)
	return router
}

func TestCheckoutHappyPath(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "+27824000001", 200)
	notebook := createTestProduct(t, db, "Notebook", 45)
	pen := createTestProduct(t, db, "Pen", 12.50)
	router := checkoutRouter(user.ID)

	doJSON(t, router, "POST", "/user/cart/add", gin.H{"product_id": notebook.ID, "qty": 2})
	doJSON(t, router, "POST", "/user/cart/add", gin.H{"product_id": pen.ID, "qty": 1})

	w := doJSON(t, router, "POST", "/user/checkout", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	assert.Equal(t, 97.50, userBalance(t, db, user.ID))

	var order models.MarketplaceOrder
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&order).Error)
	assert.Equal(t, models.OrderStatusPaid, order.Status)
	assert.Equal(t, 102.50, order.Total)
	assert.True(t, strings.HasPrefix(order.ExternalOrderID, "SIM-"))
	assert.Contains(t, order.Details, "Notebook x2")

	// Cart is purged by the same transaction
	var cartCount int64
	require.NoError(t, db.Model(&models.CartItem{}).
		Where("user_id = ?", user.ID).Count(&cartCount).Error)
	assert.Zero(t, cartCount)

	var entry models.WalletTransaction
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&entry).Error)
	assert.Equal(t, models.TransactionTypeMarketplace, entry.Type)
	assert.Equal(t, 102.50, entry.Amount)
}

func TestCheckoutEmptyCart(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "+27824000002", 200)
	router := checkoutRouter(user.ID)

	w := doJSON(t, router, "POST", "/user/checkout", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.MarketplaceOrder{}).Count(&count).Error)
	assert.Zero(t, count)
	assert.Equal(t, 200.0, userBalance(t, db, user.ID))
}

func TestCheckoutInsufficientFundsRollsBack(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "+27824000003", 50)
	product := createTestProduct(t, db, "Monitor", 1500)
	router := checkoutRouter(user.ID)

	doJSON(t, router, "POST", "/user/cart/add", gin.H{"product_id": product.ID, "qty": 1})

	w := doJSON(t, router, "POST", "/user/checkout", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// No order, no debit, cart untouched
	var orders int64
	require.NoError(t, db.Model(&models.MarketplaceOrder{}).Count(&orders).Error)
	assert.Zero(t, orders)

	assert.Equal(t, 50.0, userBalance(t, db, user.ID))

	var cartCount int64
	require.NoError(t, db.Model(&models.CartItem{}).
		Where("user_id = ?", user.ID).Count(&cartCount).Error)
	assert.Equal(t, int64(1), cartCount)
}

func TestGetOrderOwnerOrAdmin(t *testing.T) {
	db := setupTestDB(t)
	owner := createTestUser(t, db, "+27824000004", 0)
	stranger := createTestUser(t, db, "+27824000005", 0)
	admin := models.User{Phone: "+27824000006", Password: "hashed", IsAdmin: true}
	require.NoError(t, db.Create(&admin).Error)

	order := models.MarketplaceOrder{
		UserID: owner.ID,
		Total:  80,
		Status: models.OrderStatusPaid,
	}
	require.NoError(t, db.Create(&order).Error)

	newRouter := func(userID uint) *gin.Engine {
		router := gin.New()
		router.GET("/orders/:id", authAs(userID), GetOrder)
		return router
	}

	w := doJSON(t, newRouter(owner.ID), "GET", "/orders/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, newRouter(stranger.ID), "GET", "/orders/1", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, newRouter(admin.ID), "GET", "/orders/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
