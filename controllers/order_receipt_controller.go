package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"github.com/sentipay/sentipay/config"
	"github.com/sentipay/sentipay/models"
	"github.com/sentipay/sentipay/utils"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
)

// DownloadOrderReceipt renders a PDF receipt for a paid order. Only the owner
// or an admin may download it.
func DownloadOrderReceipt(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	var order models.MarketplaceOrder
	if err := config.DB.First(&order, c.Param("id")).Error; err != nil {
		utils.NotFound(c, "Order not found")
		return
	}
	if order.UserID != user.ID && !user.IsAdmin {
		utils.Forbidden(c, "Not your order")
		return
	}

	var owner models.User
	if err := config.DB.First(&owner, order.UserID).Error; err != nil {
		utils.LogError("Failed to load user %d for receipt: %v", order.UserID, err)
		utils.InternalServerError(c, "Failed to generate receipt", nil)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 12, "Order Receipt")
	pdf.Ln(16)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Order #%d", order.ID))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Reference: %s", order.ExternalOrderID))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Account: %s", owner.Phone))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Date: %s", order.CreatedAt.Format("02 Jan 2006 15:04")))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Items")
	pdf.Ln(9)
	pdf.SetFont("Arial", "", 11)
	for _, line := range strings.Split(order.Details, ", ") {
		if line == "" {
			continue
		}
		pdf.Cell(0, 6, line)
		pdf.Ln(6)
	}
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Total paid: %s", formatPrice(order.Total)))
	pdf.Ln(10)

	pdf.SetFont("Arial", "I", 9)
	pdf.Cell(0, 6, fmt.Sprintf("Status: %s", order.Status))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.LogError("Failed to render receipt for order %d: %v", order.ID, err)
		utils.InternalServerError(c, "Failed to generate receipt", nil)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=receipt-%d.pdf", order.ID))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
