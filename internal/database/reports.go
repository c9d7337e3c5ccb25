package database

import (
	"salesmgt/internal/models"
	"salesmgt/internal/utils"

	"gorm.io/gorm"
)

// ChartSeries is one label/value pair ready for the dashboard's chart
// renderer. Labels and values are index-aligned.
type ChartSeries struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// InventoryHealth carries the per-category quantity and value series, both
// normalized to a 0-100 scale so they can share one radar chart.
type InventoryHealth struct {
	Labels     []string `json:"labels"`
	Quantities []int    `json:"quantities"`
	Values     []int    `json:"values"`
}

// TopSoldItems groups sale lines by item, sums quantity sold and returns the
// five best sellers. Items never sold are absent, not zero-filled.
func TopSoldItems(db *gorm.DB) (ChartSeries, error) {
	var rows []struct {
		Name string
		Sold float64
	}
	err := db.Table("sale_details").
		Select("items.name as name, SUM(sale_details.quantity) as sold").
		Joins("JOIN items ON sale_details.item_id = items.id").
		Group("items.name").
		Order("sold desc").
		Limit(5).
		Scan(&rows).Error
	if err != nil {
		return ChartSeries{}, err
	}

	series := ChartSeries{Labels: []string{}, Values: []float64{}}
	for _, r := range rows {
		series.Labels = append(series.Labels, r.Name)
		series.Values = append(series.Values, r.Sold)
	}
	return series, nil
}

// DeliveryStatusBreakdown counts purchases per delivery status, ordered by
// status code so chart colors stay stable.
func DeliveryStatusBreakdown(db *gorm.DB) (ChartSeries, error) {
	var rows []struct {
		DeliveryStatus string
		Count          float64
	}
	err := db.Model(&models.Purchase{}).
		Select("delivery_status, COUNT(*) as count").
		Group("delivery_status").
		Order("delivery_status asc").
		Scan(&rows).Error
	if err != nil {
		return ChartSeries{}, err
	}

	series := ChartSeries{Labels: []string{}, Values: []float64{}}
	for _, r := range rows {
		series.Labels = append(series.Labels, models.DeliveryStatusLabel(r.DeliveryStatus))
		series.Values = append(series.Values, r.Count)
	}
	return series, nil
}

// TopVendorsBySpend sums purchase totals per vendor and returns the five we
// spend the most with.
func TopVendorsBySpend(db *gorm.DB) (ChartSeries, error) {
	var rows []struct {
		Name  string
		Spend float64
	}
	err := db.Table("purchases").
		Select("vendors.name as name, COALESCE(SUM(purchases.total_value), 0) as spend").
		Joins("JOIN vendors ON purchases.vendor_id = vendors.id").
		Group("vendors.name").
		Order("spend desc").
		Limit(5).
		Scan(&rows).Error
	if err != nil {
		return ChartSeries{}, err
	}

	series := ChartSeries{Labels: []string{}, Values: []float64{}}
	for _, r := range rows {
		series.Labels = append(series.Labels, r.Name)
		series.Values = append(series.Values, r.Spend)
	}
	return series, nil
}

// InventoryHealthByCategory sums stock per category and derives a value
// figure as sum(quantity) * sum(price). That multiplies the summed quantity
// by the summed price across the whole category rather than summing per-item
// products; the dashboard has always shown the coarse figure, so it stays.
func InventoryHealthByCategory(db *gorm.DB) (InventoryHealth, error) {
	var rows []struct {
		Name     string
		Quantity *float64
		Price    *float64
	}
	err := db.Table("categories").
		Select("categories.name as name, SUM(items.quantity) as quantity, SUM(items.price) as price").
		Joins("LEFT JOIN items ON items.category_id = categories.id").
		Group("categories.name").
		Order("categories.name asc").
		Scan(&rows).Error
	if err != nil {
		return InventoryHealth{}, err
	}

	health := InventoryHealth{Labels: []string{}}
	quantities := make([]*float64, 0, len(rows))
	values := make([]*float64, 0, len(rows))
	for _, r := range rows {
		health.Labels = append(health.Labels, r.Name)

		var qty, price float64
		if r.Quantity != nil {
			qty = *r.Quantity
		}
		if r.Price != nil {
			price = *r.Price
		}
		quantities = append(quantities, utils.Float64Ptr(qty))
		values = append(values, utils.Float64Ptr(qty*price))
	}

	health.Quantities = utils.NormalizeSeries(quantities)
	health.Values = utils.NormalizeSeries(values)
	return health, nil
}

// DashboardCounts holds the headline numbers above the charts.
type DashboardCounts struct {
	ItemsCount     int64            `json:"items_count"`
	TotalStock     int64            `json:"total_stock"`
	ProfilesCount  int64            `json:"profiles_count"`
	DeliveryCount  int64            `json:"delivery_count"`
	CategoryCounts map[string]int64 `json:"category_counts"`
}

// GetDashboardCounts gathers the simple totals shown on the dashboard header.
func GetDashboardCounts(db *gorm.DB) (DashboardCounts, error) {
	counts := DashboardCounts{CategoryCounts: map[string]int64{}}

	if err := db.Model(&models.Item{}).Count(&counts.ItemsCount).Error; err != nil {
		return counts, err
	}
	// COALESCE so an empty store reads 0 instead of NULL
	if err := db.Model(&models.Item{}).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&counts.TotalStock).Error; err != nil {
		return counts, err
	}
	if err := db.Model(&models.Profile{}).Count(&counts.ProfilesCount).Error; err != nil {
		return counts, err
	}
	if err := db.Model(&models.Delivery{}).Count(&counts.DeliveryCount).Error; err != nil {
		return counts, err
	}

	var rows []struct {
		Name  string
		Count int64
	}
	err := db.Table("categories").
		Select("categories.name as name, COUNT(items.id) as count").
		Joins("LEFT JOIN items ON items.category_id = categories.id").
		Group("categories.name").
		Scan(&rows).Error
	if err != nil {
		return counts, err
	}
	for _, r := range rows {
		counts.CategoryCounts[r.Name] = r.Count
	}
	return counts, nil
}
