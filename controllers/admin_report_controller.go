package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/sentipay/sentipay/config"
	"github.com/sentipay/sentipay/models"
	"github.com/sentipay/sentipay/utils"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
)

// AdminExportTransactions writes the wallet ledger for a period to an xlsx
// workbook. The period comes from from/to query params (YYYY-MM-DD) and
// defaults to the last 30 days.
func AdminExportTransactions(c *gin.Context) {
	now := time.Now()
	from := now.AddDate(0, 0, -30)
	to := now

	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			utils.BadRequest(c, "Invalid from date, expected YYYY-MM-DD", nil)
			return
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			utils.BadRequest(c, "Invalid to date, expected YYYY-MM-DD", nil)
			return
		}
		// include the whole end day
		to = parsed.AddDate(0, 0, 1)
	}

	var transactions []models.WalletTransaction
	if err := config.DB.Where("created_at >= ? AND created_at < ?", from, to).
		Order("created_at ASC").Find(&transactions).Error; err != nil {
		utils.LogError("Failed to load transactions for export: %v", err)
		utils.InternalServerError(c, "Failed to export transactions", nil)
		return
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Transactions")
	if err != nil {
		utils.LogError("Failed to create export sheet: %v", err)
		utils.InternalServerError(c, "Failed to export transactions", nil)
		return
	}

	header := sheet.AddRow()
	for _, title := range []string{"ID", "User ID", "Type", "Amount", "Date"} {
		header.AddCell().Value = title
	}

	var total float64
	for _, txn := range transactions {
		row := sheet.AddRow()
		row.AddCell().SetInt(int(txn.ID))
		row.AddCell().SetInt(int(txn.UserID))
		row.AddCell().Value = txn.Type
		row.AddCell().SetFloat(txn.Amount)
		row.AddCell().Value = txn.CreatedAt.Format("2006-01-02 15:04:05")
		total += txn.Amount
	}

	summary := sheet.AddRow()
	summary.AddCell().Value = "Total"
	summary.AddCell()
	summary.AddCell().SetInt(len(transactions))
	summary.AddCell().SetFloat(total)

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		utils.LogError("Failed to write export workbook: %v", err)
		utils.InternalServerError(c, "Failed to export transactions", nil)
		return
	}

	filename := fmt.Sprintf("transactions-%s-%s.xlsx",
		from.Format("20060102"), to.Format("20060102"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
