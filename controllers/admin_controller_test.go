package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/sentipay/sentipay/middleware"
	"github.com/sentipay/sentipay/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func adminRouter(userID uint) *gin.Engine {
	router := gin.New()
	admin := router.Group("/admin", authAs(userID), middleware.AdminMiddleware())
	admin.GET("/dashboard", AdminDashboard)
	admin.GET("/users", AdminListUsers)
	admin.POST("/products", AdminCreateProduct)
	admin.PUT("/products/:id", AdminUpdateProduct)
	admin.DELETE("/products/:id", AdminDeleteProduct)
	admin.GET("/reports/transactions/export", AdminExportTransactions)
	return router
}

func createTestAdmin(t *testing.T, db *gorm.DB, phone string) models.User {
	t.Helper()
	admin := models.User{Phone: phone, Password: "hashed", IsAdmin: true}
	require.NoError(t, db.Create(&admin).Error)
	return admin
}

func TestAdminGuard(t *testing.T) {
	db := setupTestDB(t)
	regular := createTestUser(t, db, "+27827000001", 0)
	router := adminRouter(regular.ID)

	w := doJSON(t, router, "GET", "/admin/dashboard", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminDashboardTotals(t *testing.T) {
	db := setupTestDB(t)
	admin := createTestAdmin(t, db, "+27827000002")
	createTestUser(t, db, "+27827000003", 120)
	createTestUser(t, db, "+27827000004", 80)
	router := adminRouter(admin.ID)

	w := doJSON(t, router, "GET", "/admin/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := parseBody(t, w)
	data := body["data"].(map[string]interface{})
	stats := data["stats"].(map[string]interface{})
	assert.Equal(t, float64(3), stats["total_users"])
	assert.Equal(t, 200.0, stats["total_balance"])
}

func TestAdminProductLifecycle(t *testing.T) {
	db := setupTestDB(t)
	admin := createTestAdmin(t, db, "+27827000005")
	router := adminRouter(admin.ID)

	w := doJSON(t, router, "POST", "/admin/products", gin.H{
		"title": "Desk Lamp",
		"price": 220.0,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var product models.Product
	require.NoError(t, db.Where("title = ?", "Desk Lamp").First(&product).Error)
	assert.True(t, product.InStock)

	w = doJSON(t, router, "PUT", fmt.Sprintf("/admin/products/%d", product.ID), gin.H{
		"title":    "Desk Lamp",
		"price":    199.0,
		"in_stock": false,
	})
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, db.First(&product, product.ID).Error)
	assert.Equal(t, 199.0, product.Price)
	assert.False(t, product.InStock)

	w = doJSON(t, router, "DELETE", fmt.Sprintf("/admin/products/%d", product.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Product{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestAdminCreateProductRejectsNegativePrice(t *testing.T) {
	db := setupTestDB(t)
	admin := createTestAdmin(t, db, "+27827000006")
	router := adminRouter(admin.ID)

	w := doJSON(t, router, "POST", "/admin/products", gin.H{
		"title": "Broken",
		"price": -1.0,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminExportTransactions(t *testing.T) {
	db := setupTestDB(t)
	admin := createTestAdmin(t, db, "+27827000007")
	user := createTestUser(t, db, "+27827000008", 0)
	require.NoError(t, db.Create(&models.WalletTransaction{
		UserID: user.ID,
		Type:   models.TransactionTypeVoucherRedeem,
		Amount: 55,
	}).Error)
	router := adminRouter(admin.ID)

	w := doJSON(t, router, "GET", "/admin/reports/transactions/export", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "spreadsheetml")
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".xlsx")
	assert.NotZero(t, w.Body.Len())
}

func TestAdminExportRejectsBadDates(t *testing.T) {
	db := setupTestDB(t)
	admin := createTestAdmin(t, db, "+27827000009")
	router := adminRouter(admin.ID)

	w := doJSON(t, router, "GET", "/admin/reports/transactions/export?from=yesterday", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
