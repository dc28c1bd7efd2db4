package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sentipay/sentipay/config"
	"github.com/sentipay/sentipay/models"
	"github.com/sentipay/sentipay/utils"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"
	"gorm.io/gorm"
)

// CreateVoucherRequest represents the voucher issue payload
type CreateVoucherRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

// CreateVoucher issues a new active voucher owned by the caller. Issuing does
// not touch the creator's wallet; funds move only on redemption.
func CreateVoucher(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var req CreateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid voucher request from user ID: %d: %v", user.ID, err)
		utils.BadRequest(c, "Invalid amount", err.Error())
		return
	}

	code, err := utils.GenerateCode(6)
	if err != nil {
		utils.LogError("Failed to generate voucher code: %v", err)
		utils.InternalServerError(c, "Failed to create voucher", nil)
		return
	}

	voucher := models.Voucher{
		CreatorID: user.ID,
		Amount:    req.Amount,
		Code:      code,
		Status:    models.VoucherStatusActive,
	}
	if err := config.DB.Create(&voucher).Error; err != nil {
		utils.LogError("Failed to create voucher for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to create voucher", nil)
		return
	}

	utils.LogInfo("Voucher %s created by user ID: %d", voucher.Code, user.ID)
	utils.Created(c, "Voucher created", gin.H{
		"voucher": formatVoucher(voucher),
		"qr_url":  fmt.Sprintf("/v1/vouchers/%s/qrcode", voucher.Code),
	})
}

// GetVoucher returns one voucher by code
func GetVoucher(c *gin.Context) {
	if _, ok := currentUser(c); !ok {
		return
	}

	var voucher models.Voucher
	if err := config.DB.Where("code = ?", c.Param("code")).First(&voucher).Error; err != nil {
		utils.NotFound(c, "Voucher not found")
		return
	}

	utils.Success(c, "Voucher loaded", gin.H{"voucher": formatVoucher(voucher)})
}

// ListVouchers returns the vouchers issued by the caller
func ListVouchers(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var vouchers []models.Voucher
	if err := config.DB.Where("creator_id = ?", user.ID).
		Order("created_at DESC").Find(&vouchers).Error; err != nil {
		utils.LogError("Failed to list vouchers for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to list vouchers", nil)
		return
	}

	formatted := make([]gin.H, len(vouchers))
	for i, v := range vouchers {
		formatted[i] = formatVoucher(v)
	}
	utils.Success(c, "Vouchers loaded", gin.H{"vouchers": formatted})
}

// RedeemVoucher credits the caller with the voucher amount. The voucher row
// is locked for the duration so a code can only ever be redeemed once; a
// second attempt gets 409 and no credit.
func RedeemVoucher(c *gin.Context) {
	redeemVoucherCode(c, c.Param("code"))
}

// RedeemVoucherForm accepts the code in the request body instead of the path
func RedeemVoucherForm(c *gin.Context) {
	var req struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Voucher code is required", nil)
		return
	}
	redeemVoucherCode(c, req.Code)
}

func redeemVoucherCode(c *gin.Context, code string) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	utils.LogInfo("RedeemVoucher %s called by user ID: %d", code, user.ID)

	var voucher models.Voucher
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := utils.LockForUpdate(tx).Where("code = ?", code).First(&voucher).Error; err != nil {
			return err
		}
		if voucher.Status != models.VoucherStatusActive {
			return utils.ErrVoucherRedeemed
		}
		if err := utils.CreditWalletTx(tx, user.ID, voucher.Amount, models.TransactionTypeVoucherRedeem); err != nil {
			return err
		}
		now := time.Now()
		voucher.Status = models.VoucherStatusRedeemed
		voucher.RedeemedAt = &now
		return tx.Save(&voucher).Error
	})
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			utils.NotFound(c, "Voucher not found")
		case errors.Is(err, utils.ErrVoucherRedeemed):
			utils.Conflict(c, "Voucher already redeemed", nil)
		default:
			utils.LogError("Redemption of %s failed for user ID: %d: %v", code, user.ID, err)
			utils.InternalServerError(c, "Redemption failed", nil)
		}
		return
	}

	utils.LogInfo("Voucher %s of %.2f redeemed by user ID: %d", code, voucher.Amount, user.ID)
	utils.Success(c, "Voucher redeemed", gin.H{
		"voucher":  formatVoucher(voucher),
		"credited": fmt.Sprintf("%.2f", voucher.Amount),
	})
}

// VoucherRedeemPath is the link target encoded into voucher QR images. It
// must stay in step with the redeem route registration.
func VoucherRedeemPath(code string) string {
	return "/v1/user/redeem/" + code
}

// VoucherQR renders a QR PNG encoding the redeem link for a code
func VoucherQR(c *gin.Context) {
	code := c.Param("code")

	var voucher models.Voucher
	if err := config.DB.Where("code = ?", code).First(&voucher).Error; err != nil {
		utils.NotFound(c, "Voucher not found")
		return
	}

	png, err := qrcode.Encode(absoluteURL(c, VoucherRedeemPath(code)), qrcode.Medium, 256)
	if err != nil {
		utils.LogError("Failed to encode QR for voucher %s: %v", code, err)
		utils.InternalServerError(c, "Failed to generate QR code", nil)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

func formatVoucher(voucher models.Voucher) gin.H {
	return gin.H{
		"id":          voucher.ID,
		"creator_id":  voucher.CreatorID,
		"amount":      fmt.Sprintf("%.2f", voucher.Amount),
		"code":        voucher.Code,
		"status":      voucher.Status,
		"created_at":  voucher.CreatedAt,
		"redeemed_at": voucher.RedeemedAt,
	}
}
