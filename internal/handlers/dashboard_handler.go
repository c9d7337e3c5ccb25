package handlers

import (
	"net/http"

	"salesmgt/internal/database"

	"github.com/gin-gonic/gin"
)

// DashboardData is everything the dashboard page needs in one round trip:
// headline counts plus the four chart series, each recomputed from scratch.
type DashboardData struct {
	Counts          database.DashboardCounts `json:"counts"`
	TopSoldItems    database.ChartSeries     `json:"top_sold_items"`
	DeliveryStatus  database.ChartSeries     `json:"delivery_status"`
	TopVendors      database.ChartSeries     `json:"top_vendors"`
	InventoryHealth database.InventoryHealth `json:"inventory_health"`
}

// --- GET: /api/dashboard ---
func GetDashboard(c *gin.Context) {
	var data DashboardData
	var err error

	if data.Counts, err = database.GetDashboardCounts(database.DB); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute dashboard counts"})
		return
	}
	if data.TopSoldItems, err = database.TopSoldItems(database.DB); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute top sold items"})
		return
	}
	if data.DeliveryStatus, err = database.DeliveryStatusBreakdown(database.DB); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute delivery breakdown"})
		return
	}
	if data.TopVendors, err = database.TopVendorsBySpend(database.DB); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute top vendors"})
		return
	}
	if data.InventoryHealth, err = database.InventoryHealthByCategory(database.DB); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute inventory health"})
		return
	}

	c.JSON(http.StatusOK, data)
}
