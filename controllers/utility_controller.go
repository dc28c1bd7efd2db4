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

// BuyMobile debits the wallet for an airtime/data purchase
func BuyMobile(c *gin.Context) {
	var req struct {
		Amount  float64 `json:"amount"`
		Network string  `json:"network"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Amount <= 0 || strings.TrimSpace(req.Network) == "" {
		utils.BadRequest(c, "Invalid mobile purchase details", nil)
		return
	}
	purchaseUtility(c, "mobile", fmt.Sprintf("Mobile (%s)", req.Network), req.Amount, req.Network)
}

// BuyElectricity debits the wallet for an electricity token purchase
func BuyElectricity(c *gin.Context) {
	var req struct {
		Amount float64 `json:"amount"`
		Meter  string  `json:"meter"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Amount <= 0 || strings.TrimSpace(req.Meter) == "" {
		utils.BadRequest(c, "Invalid electricity details", nil)
		return
	}
	purchaseUtility(c, "electricity", fmt.Sprintf("Electricity (Meter %s)", req.Meter), req.Amount, req.Meter)
}

// BuyDigitalVoucher debits the wallet for a branded digital voucher
func BuyDigitalVoucher(c *gin.Context) {
	var req struct {
		Amount float64 `json:"amount"`
		Brand  string  `json:"brand"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Amount <= 0 || strings.TrimSpace(req.Brand) == "" {
		utils.BadRequest(c, "Invalid voucher purchase details", nil)
		return
	}
	purchaseUtility(c, "vouchers", fmt.Sprintf("Digital Voucher (%s)", req.Brand), req.Amount, req.Brand)
}

// BuyLotto debits the wallet for a lotto ticket
func BuyLotto(c *gin.Context) {
	var req struct {
		Price  float64 `json:"price"`
		Ticket string  `json:"ticket"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Price <= 0 || strings.TrimSpace(req.Ticket) == "" {
		utils.BadRequest(c, "Invalid lotto ticket details", nil)
		return
	}
	purchaseUtility(c, "lotto", fmt.Sprintf("Lotto (%s)", req.Ticket), req.Price, req.Ticket)
}

// BuyUtility handles the generic category purchase form
func BuyUtility(c *gin.Context) {
	category := c.Param("category")
	var req struct {
		Amount  float64 `json:"amount"`
		Details string  `json:"details"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Amount <= 0 {
		utils.BadRequest(c, "Invalid purchase details", nil)
		return
	}
	label := fmt.Sprintf("Utility (%s)", category)
	purchaseUtility(c, category, label, req.Amount, req.Details)
}

// purchaseUtility runs the shared debit-and-record flow. Fulfillment is
// simulated; no provider is called, the purchase row is the whole effect.
func purchaseUtility(c *gin.Context, category, label string, amount float64, details string) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	utils.LogInfo("Utility purchase (%s) of %.2f for user ID: %d", category, amount, user.ID)

	var purchase models.UtilityPurchase
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := utils.DebitWalletTx(tx, user.ID, amount, label); err != nil {
			return err
		}
		purchase = models.UtilityPurchase{
			UserID:   user.ID,
			Category: category,
			Amount:   amount,
			Details:  details,
		}
		return tx.Create(&purchase).Error
	})
	if err != nil {
		if errors.Is(err, utils.ErrInsufficientFunds) {
			utils.BadRequest(c, "Insufficient wallet balance", nil)
			return
		}
		utils.LogError("Utility purchase failed for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Purchase failed", nil)
		return
	}

	utils.LogInfo("Utility purchase %d completed for user ID: %d", purchase.ID, user.ID)
	utils.Success(c, "Purchase successful", gin.H{
		"purchase": gin.H{
			"id":       purchase.ID,
			"category": purchase.Category,
			"amount":   fmt.Sprintf("%.2f", purchase.Amount),
			"details":  purchase.Details,
			"status":   purchase.Status,
		},
	})
}
