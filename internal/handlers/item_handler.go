package handlers

import (
	"net/http"
	"time"

	"salesmgt/internal/database"
	"salesmgt/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type ItemRequest struct {
	Name         string          `json:"name" binding:"required"`
	Description  string          `json:"description"`
	CategoryID   uint            `json:"category_id" binding:"required"`
	Quantity     int             `json:"quantity" binding:"min=0"`
	Price        decimal.Decimal `json:"price"`
	ExpiringDate *time.Time      `json:"expiring_date"`
	VendorID     *uint           `json:"vendor_id"`
}

// --- GET: List items, with optional ?q= name search ---
func GetItems(c *gin.Context) {
	var items []models.Item

	query := database.DB.Preload("Category").Preload("Vendor").Order("name asc")
	if q := c.Query("q"); q != "" {
		query = query.Where("name LIKE ?", "%"+q+"%")
	}
	if err := query.Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch items"})
		return
	}

	c.JSON(http.StatusOK, items)
}

// --- GET: One item by slug ---
func GetItem(c *gin.Context) {
	var item models.Item
	if err := database.DB.Preload("Category").Preload("Vendor").
		Where("slug = ?", c.Param("slug")).First(&item).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// --- GET: Lookup-ahead for the sale screen, top 10 name matches ---
func SearchItems(c *gin.Context) {
	term := c.Query("term")

	var items []models.Item
	if err := database.DB.Preload("Category").
		Where("name LIKE ?", "%"+term+"%").
		Limit(10).
		Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search items"})
		return
	}

	c.JSON(http.StatusOK, items)
}

// --- POST: Add an item ---
func AddItem(c *gin.Context) {
	var input ItemRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	// Category must exist up front; the FK would reject it anyway but the
	// caller deserves a clear answer.
	var category models.Category
	if err := database.DB.First(&category, input.CategoryID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
		return
	}

	slug, err := database.UniqueSlug(database.DB, &models.Item{}, input.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create item"})
		return
	}

	item := models.Item{
		Name:         input.Name,
		Slug:         slug,
		Description:  input.Description,
		CategoryID:   input.CategoryID,
		Quantity:     input.Quantity,
		Price:        input.Price,
		ExpiringDate: input.ExpiringDate,
		VendorID:     input.VendorID,
	}
	if err := database.DB.Omit("Category", "Vendor").Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create item"})
		return
	}

	c.JSON(http.StatusCreated, item)
}

// --- PUT: Update an item ---
func UpdateItem(c *gin.Context) {
	var item models.Item
	if err := database.DB.Where("slug = ?", c.Param("slug")).First(&item).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}

	var input ItemRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	item.Name = input.Name
	item.Description = input.Description
	item.CategoryID = input.CategoryID
	item.Quantity = input.Quantity
	item.Price = input.Price
	item.ExpiringDate = input.ExpiringDate
	item.VendorID = input.VendorID
	if err := database.DB.Omit("Category", "Vendor").Save(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update item"})
		return
	}

	c.JSON(http.StatusOK, item)
}

// --- DELETE: Remove an item ---
func DeleteItem(c *gin.Context) {
	var item models.Item
	if err := database.DB.Where("slug = ?", c.Param("slug")).First(&item).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}

	if err := database.DB.Delete(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item deleted successfully"})
}
