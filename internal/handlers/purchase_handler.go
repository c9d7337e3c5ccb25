package handlers

import (
	"errors"
	"net/http"
	"time"

	"salesmgt/internal/database"
	"salesmgt/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PurchaseRequest struct {
	ItemID         uint            `json:"item_id" binding:"required"`
	VendorID       uint            `json:"vendor_id" binding:"required"`
	Description    string          `json:"description"`
	Quantity       int             `json:"quantity" binding:"min=1"`
	Price          decimal.Decimal `json:"price"`
	DeliveryDate   *time.Time      `json:"delivery_date"`
	DeliveryStatus string          `json:"delivery_status" binding:"omitempty,oneof=P S"`
}

// --- GET: List purchases, oldest order first ---
func GetPurchases(c *gin.Context) {
	var purchases []models.Purchase
	if err := database.DB.Preload("Item").Preload("Vendor").
		Order("order_date asc").
		Find(&purchases).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch purchases"})
		return
	}
	c.JSON(http.StatusOK, purchases)
}

// --- GET: One purchase by slug ---
func GetPurchase(c *gin.Context) {
	var purchase models.Purchase
	if err := database.DB.Preload("Item").Preload("Vendor").
		Where("slug = ?", c.Param("slug")).First(&purchase).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Purchase not found"})
		return
	}
	c.JSON(http.StatusOK, purchase)
}

// --- POST: Record an inbound purchase ---
// Total value is derived server-side and the item is restocked in the same
// transaction; see database.CreatePurchase.
func AddPurchase(c *gin.Context) {
	var input PurchaseRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	purchase := models.Purchase{
		ItemID:         input.ItemID,
		VendorID:       input.VendorID,
		Description:    input.Description,
		Quantity:       input.Quantity,
		Price:          input.Price,
		DeliveryDate:   input.DeliveryDate,
		DeliveryStatus: input.DeliveryStatus,
	}
	if err := database.CreatePurchase(database.DB, &purchase); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Referenced item or vendor does not exist"})
			return
		}
		database.Logger().WithError(err).Error("purchase create failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create purchase"})
		return
	}

	c.JSON(http.StatusCreated, purchase)
}

// --- PUT: Update a purchase ---
// Recomputes the derived total; never touches item stock.
func UpdatePurchase(c *gin.Context) {
	var purchase models.Purchase
	if err := database.DB.Where("slug = ?", c.Param("slug")).First(&purchase).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Purchase not found"})
		return
	}

	var input PurchaseRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	purchase.ItemID = input.ItemID
	purchase.VendorID = input.VendorID
	purchase.Description = input.Description
	purchase.Quantity = input.Quantity
	purchase.Price = input.Price
	purchase.DeliveryDate = input.DeliveryDate
	if input.DeliveryStatus != "" {
		purchase.DeliveryStatus = input.DeliveryStatus
	}
	if err := database.UpdatePurchase(database.DB, &purchase); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Referenced item or vendor does not exist"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update purchase"})
		return
	}

	c.JSON(http.StatusOK, purchase)
}

// --- DELETE: Remove a purchase record ---
// Stock already received stays on the item; this only drops the paperwork.
func DeletePurchase(c *gin.Context) {
	var purchase models.Purchase
	if err := database.DB.Where("slug = ?", c.Param("slug")).First(&purchase).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Purchase not found"})
		return
	}

	if err := database.DB.Delete(&purchase).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete purchase"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Purchase deleted successfully"})
}
