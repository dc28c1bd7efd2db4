package controllers

import (
	"net/http"
	"testing"

	"github.com/sentipay/sentipay/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func utilityRouter(userID uint) *gin.Engine {
	router := gin.New()
	utility := router.Group("/utility", authAs(userID))
	utility.POST("/mobile", BuyMobile)
	utility.POST("/electricity", BuyElectricity)
	utility.POST("/vouchers", BuyDigitalVoucher)
	utility.POST("/lotto", BuyLotto)
	utility.POST("/buy/:category", BuyUtility)
	return router
}

func TestBuyMobile(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "+27826000001", 100)
	router := utilityRouter(user.ID)

	w := doJSON(t, router, "POST", "/utility/mobile", gin.H{
		"amount":  30.0,
		"network": "MTN",
	})
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, 70.0, userBalance(t, db, user.ID))

	var purchase models.UtilityPurchase
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&purchase).Error)
	assert.Equal(t, "mobile", purchase.Category)
	assert.Equal(t, "MTN", purchase.Details)
	assert.Equal(t, "completed", purchase.Status)

	var entry models.WalletTransaction
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&entry).Error)
	assert.Equal(t, "Mobile (MTN)", entry.Type)
}

func TestBuyUtilityGenericCategory(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "+27826000002", 100)
	router := utilityRouter(user.ID)

	w := doJSON(t, router, "POST", "/utility/buy/water", gin.H{
		"amount":  25.0,
		"details": "Account 12345",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var purchase models.UtilityPurchase
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&purchase).Error)
	assert.Equal(t, "water", purchase.Category)
}

func TestUtilityInsufficientFunds(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "+27826000003", 10)
	router := utilityRouter(user.ID)

	w := doJSON(t, router, "POST", "/utility/electricity", gin.H{
		"amount": 50.0,
		"meter":  "M-9876",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Failed purchase leaves no trace
	assert.Equal(t, 10.0, userBalance(t, db, user.ID))
	var count int64
	require.NoError(t, db.Model(&models.UtilityPurchase{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestUtilityValidation(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "+27826000004", 100)
	router := utilityRouter(user.ID)

	cases := []struct {
		path    string
		payload gin.H
	}{
		{"/utility/mobile", gin.H{"amount": 0, "network": "MTN"}},
		{"/utility/mobile", gin.H{"amount": 30, "network": ""}},
		{"/utility/electricity", gin.H{"amount": -5, "meter": "M-1"}},
		{"/utility/vouchers", gin.H{"amount": 30, "brand": " "}},
		{"/utility/lotto", gin.H{"price": 0, "ticket": "T-1"}},
	}
	for _, tc := range cases {
		w := doJSON(t, router, "POST", tc.path, tc.payload)
		assert.Equal(t, http.StatusBadRequest, w.Code, "payload %v", tc.payload)
	}

	assert.Equal(t, 100.0, userBalance(t, db, user.ID))
}
