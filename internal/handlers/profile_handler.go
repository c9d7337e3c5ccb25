package handlers

import (
	"net/http"

	"salesmgt/internal/database"
	"salesmgt/internal/models"

	"github.com/gin-gonic/gin"
)

type ProfileRequest struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Telephone *string `json:"telephone"`
	Status    string  `json:"status" binding:"omitempty,oneof=INA A OL"`
	Role      *string `json:"role" binding:"omitempty,oneof=OP EX AD"`
}

// --- GET: List staff profiles, ordered by slug ---
func GetProfiles(c *gin.Context) {
	var profiles []models.Profile
	if err := database.DB.Order("slug asc").Find(&profiles).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch profiles"})
		return
	}
	c.JSON(http.StatusOK, profiles)
}

// --- GET: One profile by slug ---
func GetProfile(c *gin.Context) {
	var profile models.Profile
	if err := database.DB.Where("slug = ?", c.Param("slug")).First(&profile).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// --- PUT: Update a profile (admin assigns roles here) ---
func UpdateProfile(c *gin.Context) {
	var profile models.Profile
	if err := database.DB.Where("slug = ?", c.Param("slug")).First(&profile).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}

	var input ProfileRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	profile.FirstName = input.FirstName
	profile.LastName = input.LastName
	profile.Email = input.Email
	profile.Telephone = input.Telephone
	if input.Status != "" {
		profile.Status = input.Status
	}
	if input.Role != nil {
		profile.Role = input.Role
	}
	if err := database.DB.Save(&profile).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, profile)
}
