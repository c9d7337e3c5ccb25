package handlers

import (
	"net/http"
	"strconv"
	"time"

	"salesmgt/internal/database"
	"salesmgt/internal/models"

	"github.com/gin-gonic/gin"
)

type DeliveryRequest struct {
	ItemID      *uint     `json:"item_id"`
	CustomerID  *uint     `json:"customer_id"`
	Date        time.Time `json:"date" binding:"required"`
	IsDelivered bool      `json:"is_delivered"`
}

// --- GET: List deliveries, with optional ?q= customer name search ---
func GetDeliveries(c *gin.Context) {
	var deliveries []models.Delivery

	query := database.DB.Preload("Item").Preload("Customer")
	if q := c.Query("q"); q != "" {
		query = query.
			Joins("LEFT JOIN customers ON customers.id = deliveries.customer_id").
			Where("customers.first_name LIKE ? OR customers.last_name LIKE ?", "%"+q+"%", "%"+q+"%")
	}
	if err := query.Find(&deliveries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch deliveries"})
		return
	}

	c.JSON(http.StatusOK, deliveries)
}

// --- GET: One delivery by id ---
func GetDelivery(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid delivery ID"})
		return
	}

	var delivery models.Delivery
	if err := database.DB.Preload("Item").Preload("Customer").
		First(&delivery, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Delivery not found"})
		return
	}
	c.JSON(http.StatusOK, delivery)
}

// --- POST: Schedule a delivery ---
func AddDelivery(c *gin.Context) {
	var input DeliveryRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	delivery := models.Delivery{
		ItemID:      input.ItemID,
		CustomerID:  input.CustomerID,
		Date:        input.Date,
		IsDelivered: input.IsDelivered,
	}
	if err := database.DB.Omit("Item", "Customer").Create(&delivery).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create delivery"})
		return
	}

	c.JSON(http.StatusCreated, delivery)
}

// --- PUT: Update a delivery (reschedule, mark delivered) ---
func UpdateDelivery(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid delivery ID"})
		return
	}

	var delivery models.Delivery
	if err := database.DB.First(&delivery, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Delivery not found"})
		return
	}

	var input DeliveryRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	delivery.ItemID = input.ItemID
	delivery.CustomerID = input.CustomerID
	delivery.Date = input.Date
	delivery.IsDelivered = input.IsDelivered
	if err := database.DB.Omit("Item", "Customer").Save(&delivery).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update delivery"})
		return
	}

	c.JSON(http.StatusOK, delivery)
}

// --- DELETE: Cancel a delivery ---
func DeleteDelivery(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid delivery ID"})
		return
	}

	if err := database.DB.Delete(&models.Delivery{}, id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete delivery"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Delivery deleted successfully"})
}
