package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"salesmgt/internal/database"
	"salesmgt/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type SaleRequest struct {
	CustomerID    *uint               `json:"customer_id"`
	Items         []database.SaleLine `json:"items" binding:"required,min=1,dive"`
	TaxPercentage decimal.Decimal     `json:"tax_percentage"`
	AmountPaid    decimal.Decimal     `json:"amount_paid"`
}

// --- GET: List sales, newest first ---
func GetSales(c *gin.Context) {
	var sales []models.Sale
	if err := database.DB.Preload("Details").
		Order("date_added desc").
		Find(&sales).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sales"})
		return
	}
	c.JSON(http.StatusOK, sales)
}

// --- GET: One sale by id ---
func GetSale(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sale ID"})
		return
	}

	var sale models.Sale
	if err := database.DB.Preload("Details").First(&sale, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sale not found"})
		return
	}
	c.JSON(http.StatusOK, sale)
}

// --- POST: Checkout ---
func ProcessSale(c *gin.Context) {
	var req SaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.TaxPercentage.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tax percentage cannot be negative"})
		return
	}

	sale, err := database.CreateSale(database.DB, req.CustomerID, req.Items, req.TaxPercentage, req.AmountPaid)
	if err != nil {
		var stockErr database.ErrInsufficientStock
		switch {
		case errors.As(err, &stockErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": stockErr.Error()})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "One of the items does not exist"})
		default:
			database.Logger().WithError(err).Error("sale create failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create sale record"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Sale successful!",
		"sale_id": sale.ID,
		"total":   sale.GrandTotal,
	})
}

// --- DELETE: Remove a sale and its lines ---
func DeleteSale(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sale ID"})
		return
	}

	if err := database.DB.Select("Details").Delete(&models.Sale{ID: uint(id)}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete sale"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Sale deleted successfully"})
}
