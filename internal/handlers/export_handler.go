package handlers

import (
	"fmt"
	"net/http"

	"salesmgt/internal/database"
	"salesmgt/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// --- GET: /api/export/sales.xlsx ---
func ExportSales(c *gin.Context) {
	var sales []models.Sale
	if err := database.DB.Preload("Details").Order("date_added asc").Find(&sales).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sales"})
		return
	}

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	headers := []string{"ID", "Customer ID", "Items Sold", "Sub Total", "Tax", "Grand Total", "Paid", "Change", "Date"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for i, s := range sales {
		row := i + 2
		customer := ""
		if s.CustomerID != nil {
			customer = fmt.Sprint(*s.CustomerID)
		}
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), s.ID)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), customer)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), s.SumProducts())
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), s.SubTotal.InexactFloat64())
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), s.TaxAmount.InexactFloat64())
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), s.GrandTotal.InexactFloat64())
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), s.AmountPaid.InexactFloat64())
		f.SetCellValue(sheet, fmt.Sprintf("H%d", row), s.AmountChange.InexactFloat64())
		f.SetCellValue(sheet, fmt.Sprintf("I%d", row), s.DateAdded.Format("2006-01-02 15:04"))
	}

	writeWorkbook(c, f, "sales.xlsx")
}

// --- GET: /api/export/purchases.xlsx ---
func ExportPurchases(c *gin.Context) {
	var purchases []models.Purchase
	if err := database.DB.Preload("Item").Preload("Vendor").
		Order("order_date asc").Find(&purchases).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch purchases"})
		return
	}

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	headers := []string{"ID", "Item", "Vendor", "Quantity", "Price", "Total Value", "Status", "Order Date"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for i, p := range purchases {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), p.ID)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), p.Item.Name)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), p.Vendor.Name)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), p.Quantity)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), p.Price.InexactFloat64())
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), p.TotalValue.InexactFloat64())
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), models.DeliveryStatusLabel(p.DeliveryStatus))
		f.SetCellValue(sheet, fmt.Sprintf("H%d", row), p.OrderDate.Format("2006-01-02 15:04"))
	}

	writeWorkbook(c, f, "purchases.xlsx")
}

func writeWorkbook(c *gin.Context, f *excelize.File, filename string) {
	c.Header("Content-Type", xlsxContentType)
	c.Header("Content-Disposition", "attachment; filename="+filename)
	if err := f.Write(c.Writer); err != nil {
		database.Logger().WithError(err).Error("workbook write failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write file"})
	}
}
