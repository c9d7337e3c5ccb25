package handlers

import (
	"net/http"

	"salesmgt/internal/database"
	"salesmgt/internal/models"

	"github.com/gin-gonic/gin"
)

type VendorRequest struct {
	Name        string  `json:"name" binding:"required"`
	PhoneNumber *int64  `json:"phone_number"`
	Address     *string `json:"address"`
}

// --- GET: List vendors, with optional ?q= name search ---
func GetVendors(c *gin.Context) {
	var vendors []models.Vendor

	query := database.DB
	if q := c.Query("q"); q != "" {
		query = query.Where("name LIKE ?", "%"+q+"%")
	}
	if err := query.Find(&vendors).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch vendors"})
		return
	}

	c.JSON(http.StatusOK, vendors)
}

// --- GET: One vendor by slug ---
func GetVendor(c *gin.Context) {
	var vendor models.Vendor
	if err := database.DB.Where("slug = ?", c.Param("slug")).First(&vendor).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vendor not found"})
		return
	}
	c.JSON(http.StatusOK, vendor)
}

// --- POST: Add a vendor ---
func AddVendor(c *gin.Context) {
	var input VendorRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	slug, err := database.UniqueSlug(database.DB, &models.Vendor{}, input.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create vendor"})
		return
	}

	vendor := models.Vendor{
		Name:        input.Name,
		Slug:        slug,
		PhoneNumber: input.PhoneNumber,
		Address:     input.Address,
	}
	if err := database.DB.Create(&vendor).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create vendor"})
		return
	}

	c.JSON(http.StatusCreated, vendor)
}

// --- PUT: Update a vendor (slug stays put) ---
func UpdateVendor(c *gin.Context) {
	var vendor models.Vendor
	if err := database.DB.Where("slug = ?", c.Param("slug")).First(&vendor).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vendor not found"})
		return
	}

	var input VendorRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	vendor.Name = input.Name
	vendor.PhoneNumber = input.PhoneNumber
	vendor.Address = input.Address
	if err := database.DB.Save(&vendor).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update vendor"})
		return
	}

	c.JSON(http.StatusOK, vendor)
}

// --- DELETE: Remove a vendor ---
// Purchases from this vendor go with it; items just lose the reference.
func DeleteVendor(c *gin.Context) {
	var vendor models.Vendor
	if err := database.DB.Where("slug = ?", c.Param("slug")).First(&vendor).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vendor not found"})
		return
	}

	if err := database.DB.Delete(&vendor).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete vendor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Vendor deleted successfully"})
}
