package controllers

import (
	"net/http"
	"testing"

	"github.com/sentipay/sentipay/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func voucherRouter(creatorID, redeemerID uint) *gin.Engine {
	router := gin.New()
	creator := router.Group("/creator", authAs(creatorID))
	creator.POST("/vouchers", CreateVoucher)
	creator.GET("/vouchers", ListVouchers)

	redeemer := router.Group("/redeemer", authAs(redeemerID))
	redeemer.GET("/vouchers/:code", GetVoucher)
	redeemer.POST("/redeem/:code", RedeemVoucher)
	redeemer.POST("/redeem", RedeemVoucherForm)
	return router
}

func TestVoucherRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	creator := createTestUser(t, db, "+27821000001", 500)
	redeemer := createTestUser(t, db, "+27821000002", 10)
	router := voucherRouter(creator.ID, redeemer.ID)

	w := doJSON(t, router, "POST", "/creator/vouchers", gin.H{"amount": 120.0})
	require.Equal(t, http.StatusCreated, w.Code)

	var voucher models.Voucher
	require.NoError(t, db.Where("creator_id = ?", creator.ID).First(&voucher).Error)
	assert.Equal(t, models.VoucherStatusActive, voucher.Status)
	assert.NotEmpty(t, voucher.Code)

	// Issuing does not touch the creator's wallet
	assert.Equal(t, 500.0, userBalance(t, db, creator.ID))

	w = doJSON(t, router, "POST", "/redeemer/redeem/"+voucher.Code, nil)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, 130.0, userBalance(t, db, redeemer.ID))

	require.NoError(t, db.First(&voucher, voucher.ID).Error)
	assert.Equal(t, models.VoucherStatusRedeemed, voucher.Status)
	assert.NotNil(t, voucher.RedeemedAt)

	var entry models.WalletTransaction
	require.NoError(t, db.Where("user_id = ?", redeemer.ID).First(&entry).Error)
	assert.Equal(t, models.TransactionTypeVoucherRedeem, entry.Type)
	assert.Equal(t, 120.0, entry.Amount)
}

func TestVoucherDoubleRedeem(t *testing.T) {
	db := setupTestDB(t)
	creator := createTestUser(t, db, "+27821000003", 0)
	redeemer := createTestUser(t, db, "+27821000004", 0)
	router := voucherRouter(creator.ID, redeemer.ID)

	w := doJSON(t, router, "POST", "/creator/vouchers", gin.H{"amount": 50.0})
	require.Equal(t, http.StatusCreated, w.Code)

	var voucher models.Voucher
	require.NoError(t, db.Where("creator_id = ?", creator.ID).First(&voucher).Error)

	w = doJSON(t, router, "POST", "/redeemer/redeem/"+voucher.Code, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, "POST", "/redeemer/redeem/"+voucher.Code, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	// The second attempt must not credit again
	assert.Equal(t, 50.0, userBalance(t, db, redeemer.ID))

	var count int64
	require.NoError(t, db.Model(&models.WalletTransaction{}).
		Where("user_id = ?", redeemer.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestVoucherRedeemByForm(t *testing.T) {
	db := setupTestDB(t)
	creator := createTestUser(t, db, "+27821000005", 0)
	redeemer := createTestUser(t, db, "+27821000006", 0)
	router := voucherRouter(creator.ID, redeemer.ID)

	w := doJSON(t, router, "POST", "/creator/vouchers", gin.H{"amount": 25.0})
	require.Equal(t, http.StatusCreated, w.Code)

	var voucher models.Voucher
	require.NoError(t, db.Where("creator_id = ?", creator.ID).First(&voucher).Error)

	w = doJSON(t, router, "POST", "/redeemer/redeem", gin.H{"code": voucher.Code})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 25.0, userBalance(t, db, redeemer.ID))
}

func TestVoucherUnknownCode(t *testing.T) {
	db := setupTestDB(t)
	creator := createTestUser(t, db, "+27821000007", 0)
	redeemer := createTestUser(t, db, "+27821000008", 0)
	router := voucherRouter(creator.ID, redeemer.ID)

	w := doJSON(t, router, "POST", "/redeemer/redeem/NOPE99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, "GET", "/redeemer/vouchers/NOPE99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateVoucherRejectsBadAmount(t *testing.T) {
	db := setupTestDB(t)
	creator := createTestUser(t, db, "+27821000009", 0)
	router := voucherRouter(creator.ID, creator.ID)

	for _, amount := range []float64{0, -5} {
		w := doJSON(t, router, "POST", "/creator/vouchers", gin.H{"amount": amount})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}

	var count int64
	require.NoError(t, db.Model(&models.Voucher{}).Count(&count).Error)
	assert.Zero(t, count)
}
