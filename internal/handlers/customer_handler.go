package handlers

import (
	"net/http"
	"strconv"

	"salesmgt/internal/database"
	"salesmgt/internal/models"

	"github.com/gin-gonic/gin"
)

type CustomerRequest struct {
	FirstName     string  `json:"first_name" binding:"required"`
	LastName      *string `json:"last_name"`
	Address       *string `json:"address"`
	Email         *string `json:"email" binding:"omitempty,email"`
	Phone         *string `json:"phone"`
	LoyaltyPoints int     `json:"loyalty_points"`
}

// --- GET: List customers, with optional ?q= name search ---
func GetCustomers(c *gin.Context) {
	var customers []models.Customer

	query := database.DB
	if q := c.Query("q"); q != "" {
		query = query.Where("first_name LIKE ? OR last_name LIKE ?", "%"+q+"%", "%"+q+"%")
	}
	if err := query.Find(&customers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch customers"})
		return
	}

	c.JSON(http.StatusOK, customers)
}

// --- GET: One customer by id ---
func GetCustomer(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer ID"})
		return
	}

	var customer models.Customer
	if err := database.DB.First(&customer, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		return
	}
	c.JSON(http.StatusOK, customer)
}

// --- POST: Add a customer ---
func AddCustomer(c *gin.Context) {
	var input CustomerRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	customer := models.Customer{
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		Address:       input.Address,
		Email:         input.Email,
		Phone:         input.Phone,
		LoyaltyPoints: input.LoyaltyPoints,
	}
	if err := database.DB.Create(&customer).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create customer"})
		return
	}

	c.JSON(http.StatusCreated, customer)
}

// --- PUT: Update a customer ---
func UpdateCustomer(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer ID"})
		return
	}

	var customer models.Customer
	if err := database.DB.First(&customer, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		return
	}

	var input CustomerRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	customer.FirstName = input.FirstName
	customer.LastName = input.LastName
	customer.Address = input.Address
	customer.Email = input.Email
	customer.Phone = input.Phone
	customer.LoyaltyPoints = input.LoyaltyPoints
	if err := database.DB.Save(&customer).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update customer"})
		return
	}

	c.JSON(http.StatusOK, customer)
}

// --- DELETE: Remove a customer ---
// Their deliveries go with them; their past sales stay behind.
func DeleteCustomer(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer ID"})
		return
	}

	if err := database.DB.Delete(&models.Customer{}, id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete customer"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}
