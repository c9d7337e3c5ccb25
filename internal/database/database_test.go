package database_test

import (
	"testing"

	"salesmgt/internal/database"
	"salesmgt/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// memdb opens a fresh in-memory database per test. A single connection keeps
// every query on the same :memory: instance, and foreign keys are switched on
// so the OnDelete rules in the schema actually fire.
func memdb(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatal(err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatal(err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatal(err)
	}
	return db
}

// seedItem creates a category, vendor and item to purchase against.
func seedItem(t *testing.T, db *gorm.DB, name string, quantity int, price string) (*models.Item, *models.Vendor) {
	t.Helper()

	category := models.Category{Name: "Electronics", Slug: "electronics-" + name}
	if err := db.Create(&category).Error; err != nil {
		t.Fatal(err)
	}
	vendor := models.Vendor{Name: "Test Vendor", Slug: "test-vendor-" + name}
	if err := db.Create(&vendor).Error; err != nil {
		t.Fatal(err)
	}
	item := models.Item{
		Name:       name,
		Slug:       name,
		CategoryID: category.ID,
		Quantity:   quantity,
		Price:      decimal.RequireFromString(price),
		VendorID:   &vendor.ID,
	}
	if err := db.Omit("Category", "Vendor").Create(&item).Error; err != nil {
		t.Fatal(err)
	}
	return &item, &vendor
}
