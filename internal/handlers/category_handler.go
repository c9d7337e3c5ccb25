package handlers

import (
	"net/http"

	"salesmgt/internal/database"
	"salesmgt/internal/models"

	"github.com/gin-gonic/gin"
)

type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// --- GET: List categories ---
func GetCategories(c *gin.Context) {
	var categories []models.Category
	if err := database.DB.Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
		return
	}
	c.JSON(http.StatusOK, categories)
}

// --- GET: One category by slug, with its items and vendor coverage ---
func GetCategory(c *gin.Context) {
	var category models.Category
	if err := database.DB.Where("slug = ?", c.Param("slug")).First(&category).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	var items []models.Item
	if err := database.DB.Where("category_id = ?", category.ID).Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch category items"})
		return
	}

	// How many distinct vendors supply this category
	var vendorCount int64
	if err := database.DB.Model(&models.Item{}).
		Where("category_id = ? AND vendor_id IS NOT NULL", category.ID).
		Distinct("vendor_id").
		Count(&vendorCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count vendors"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"category":            category,
		"items":               items,
		"unique_vendor_count": vendorCount,
	})
}

// --- POST: Add a category ---
func AddCategory(c *gin.Context) {
	var input CategoryRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	slug, err := database.UniqueSlug(database.DB, &models.Category{}, input.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
		return
	}

	category := models.Category{Name: input.Name, Slug: slug}
	if err := database.DB.Create(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
		return
	}

	c.JSON(http.StatusCreated, category)
}

// --- PUT: Rename a category ---
func UpdateCategory(c *gin.Context) {
	var category models.Category
	if err := database.DB.Where("slug = ?", c.Param("slug")).First(&category).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	var input CategoryRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	category.Name = input.Name
	if err := database.DB.Save(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
		return
	}

	c.JSON(http.StatusOK, category)
}

// --- DELETE: Remove a category and everything filed under it ---
func DeleteCategory(c *gin.Context) {
	var category models.Category
	if err := database.DB.Where("slug = ?", c.Param("slug")).First(&category).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	if err := database.DB.Delete(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
