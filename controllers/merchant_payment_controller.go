package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/sentipay/sentipay/config"
	"github.com/sentipay/sentipay/models"
	"github.com/sentipay/sentipay/utils"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"
	"gorm.io/gorm"
)

// CreateMerchantPaymentRequest represents the invoice creation payload
type CreateMerchantPaymentRequest struct {
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Description string  `json:"description"`
}

// CreateMerchantPayment creates a pending invoice code for the caller
func CreateMerchantPayment(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req CreateMerchantPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid payment request from user ID: %d: %v", user.ID, err)
		utils.BadRequest(c, "Invalid amount", err.Error())
		return
	}

	code, err := utils.GenerateCode(8)
	if err != nil {
		utils.LogError("Failed to generate payment code: %v", err)
		utils.InternalServerError(c, "Failed to create payment", nil)
		return
	}

	payment := models.MerchantPayment{
		MerchantID:  user.ID,
		Amount:      req.Amount,
		Description: req.Description,
		Code:        code,
		Status:      models.PaymentStatusPending,
	}
	if err := config.DB.Create(&payment).Error; err != nil {
		utils.LogError("Failed to create merchant payment for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to create payment", nil)
		return
	}

	utils.LogInfo("Merchant payment %s created by user ID: %d", payment.Code, user.ID)
	utils.Created(c, "Payment request created", gin.H{
		"payment": formatPayment(payment),
		"pay_url": MerchantPayPath(payment.Code),
		"qr_url":  fmt.Sprintf("/v1/merchant/payments/%s/qrcode", payment.Code),
	})
}

// GetMerchantPayment returns one payment request by code
func GetMerchantPayment(c *gin.Context) {
	if _, ok := currentUser(c); !ok {
		return
	}

	var payment models.MerchantPayment
	if err := config.DB.Where("code = ?", c.Param("code")).First(&payment).Error; err != nil {
		utils.NotFound(c, "Payment not found")
		return
	}

	utils.Success(c, "Payment loaded", gin.H{"payment": formatPayment(payment)})
}

// ListMerchantPayments returns the caller's payment requests
func ListMerchantPayments(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var payments []models.MerchantPayment
	if err := config.DB.Where("merchant_id = ?", user.ID).
		Order("created_at DESC").Find(&payments).Error; err != nil {
		utils.LogError("Failed to list payments for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to list payments", nil)
		return
	}

	formatted := make([]gin.H, len(payments))
	for i, p := range payments {
		formatted[i] = formatPayment(p)
	}
	utils.Success(c, "Payments loaded", gin.H{"payments": formatted})
}

// PayMerchant executes a pending invoice: the payer is debited and the
// merchant credited in one transaction, and the code flips to paid exactly
// once. A stale code gets 409, a short balance 400, and neither moves funds.
func PayMerchant(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	code := c.Param("code")
	utils.LogInfo("PayMerchant %s called by user ID: %d", code, user.ID)

	var payment models.MerchantPayment
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := utils.LockForUpdate(tx).Where("code = ?", code).First(&payment).Error; err != nil {
			return err
		}
		if payment.Status != models.PaymentStatusPending {
			return utils.ErrPaymentPaid
		}
		if err := utils.LockUsersForUpdate(tx, user.ID, payment.MerchantID); err != nil {
			return err
		}
		if err := utils.DebitWalletTx(tx, user.ID, payment.Amount, models.TransactionTypeMerchantPayment); err != nil {
			return err
		}
		if err := utils.CreditWalletTx(tx, payment.MerchantID, payment.Amount, models.TransactionTypeMerchantReceipt); err != nil {
			return err
		}
		now := time.Now()
		payment.Status = models.PaymentStatusPaid
		payment.PaidAt = &now
		return tx.Save(&payment).Error
	})
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			utils.NotFound(c, "Payment not found")
		case errors.Is(err, utils.ErrPaymentPaid):
			utils.Conflict(c, "Payment already completed", nil)
		case errors.Is(err, utils.ErrInsufficientFunds):
			utils.BadRequest(c, "Insufficient wallet balance", nil)
		default:
			utils.LogError("Payment %s failed for user ID: %d: %v", code, user.ID, err)
			utils.InternalServerError(c, "Payment failed", nil)
		}
		return
	}

	utils.LogInfo("Payment %s of %.2f completed: payer %d -> merchant %d", code, payment.Amount, user.ID, payment.MerchantID)
	utils.Success(c, "Payment successful", gin.H{"payment": formatPayment(payment)})
}

// MerchantPayPath is the link target encoded into payment QR images. It
// must stay in step with the pay route registration.
func MerchantPayPath(code string) string {
	return "/v1/user/merchant/pay/" + code
}

// MerchantPaymentQR renders a QR PNG encoding the pay link for a code. It is
// public so scanners and <img> tags can fetch it without a session.
func MerchantPaymentQR(c *gin.Context) {
	code := c.Param("code")

	var payment models.MerchantPayment
	if err := config.DB.Where("code = ?", code).First(&payment).Error; err != nil {
		utils.NotFound(c, "Payment not found")
		return
	}

	png, err := qrcode.Encode(absoluteURL(c, MerchantPayPath(code)), qrcode.Medium, 256)
	if err != nil {
		utils.LogError("Failed to encode QR for payment %s: %v", code, err)
		utils.InternalServerError(c, "Failed to generate QR code", nil)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

// absoluteURL builds a link a phone camera can follow: BASE_URL when
// configured, otherwise the scheme and host of the incoming request.
func absoluteURL(c *gin.Context, path string) string {
	if base := os.Getenv("BASE_URL"); base != "" {
		return base + path
	}
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s%s", scheme, c.Request.Host, path)
}

func formatPayment(payment models.MerchantPayment) gin.H {
	return gin.H{
		"id":          payment.ID,
		"merchant_id": payment.MerchantID,
		"amount":      fmt.Sprintf("%.2f", payment.Amount),
		"description": payment.Description,
		"code":        payment.Code,
		"status":      payment.Status,
		"created_at":  payment.CreatedAt,
		"paid_at":     payment.PaidAt,
	}
}
