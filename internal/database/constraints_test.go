package database_test

import (
	"errors"
	"testing"
	"time"

	"salesmgt/internal/database"
	"salesmgt/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func TestDeletingCategoryCascadesToItems(t *testing.T) {
	db := memdb(t)
	item, _ := seedItem(t, db, "widget", 5, "50.00")

	if err := db.Delete(&models.Category{ID: item.CategoryID}).Error; err != nil {
		t.Fatal(err)
	}

	var got models.Item
	err := db.First(&got, item.ID).Error
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("item survived its category: %v", err)
	}
}

func TestDeletingVendorNullsItemReference(t *testing.T) {
	db := memdb(t)
	item, vendor := seedItem(t, db, "widget", 5, "50.00")

	if err := db.Delete(vendor).Error; err != nil {
		t.Fatal(err)
	}

	var got models.Item
	if err := db.First(&got, item.ID).Error; err != nil {
		t.Fatal(err)
	}
	if got.VendorID != nil {
		t.Fatalf("want vendor reference nulled, got %d", *got.VendorID)
	}
}

func TestDeletingItemCascadesToPurchases(t *testing.T) {
	db := memdb(t)
	item, vendor := seedItem(t, db, "widget", 5, "50.00")

	p := &models.Purchase{
		ItemID:   item.ID,
		VendorID: vendor.ID,
		Quantity: 2,
		Price:    decimal.RequireFromString("10.00"),
	}
	if err := database.CreatePurchase(db, p); err != nil {
		t.Fatal(err)
	}

	if err := db.Delete(item).Error; err != nil {
		t.Fatal(err)
	}

	var count int64
	if err := db.Model(&models.Purchase{}).Count(&count).Error; err != nil {
		t.Fatal(err)
	}
	if count != 0 {
		t.Fatalf("want purchases gone with the item, got %d left", count)
	}
}

func TestDeletingVendorCascadesToPurchases(t *testing.T) {
	db := memdb(t)
	item, vendor := seedItem(t, db, "widget", 5, "50.00")

	p := &models.Purchase{
		ItemID:   item.ID,
		VendorID: vendor.ID,
		Quantity: 2,
		Price:    decimal.RequireFromString("10.00"),
	}
	if err := database.CreatePurchase(db, p); err != nil {
		t.Fatal(err)
	}

	if err := db.Delete(vendor).Error; err != nil {
		t.Fatal(err)
	}

	var count int64
	if err := db.Model(&models.Purchase{}).Count(&count).Error; err != nil {
		t.Fatal(err)
	}
	if count != 0 {
		t.Fatalf("want purchases gone with the vendor, got %d left", count)
	}
}

func TestDeletingCustomerCascadesToDeliveries(t *testing.T) {
	db := memdb(t)
	item, _ := seedItem(t, db, "widget", 5, "50.00")

	customer := models.Customer{FirstName: "John"}
	if err := db.Create(&customer).Error; err != nil {
		t.Fatal(err)
	}
	delivery := models.Delivery{
		ItemID:     &item.ID,
		CustomerID: &customer.ID,
		Date:       time.Now(),
	}
	if err := db.Create(&delivery).Error; err != nil {
		t.Fatal(err)
	}

	if err := db.Delete(&customer).Error; err != nil {
		t.Fatal(err)
	}

	var got models.Delivery
	err := db.First(&got, delivery.ID).Error
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("delivery survived its customer: %v", err)
	}
}

func TestDeletingItemNullsDeliveryReference(t *testing.T) {
	db := memdb(t)
	item, _ := seedItem(t, db, "widget", 5, "50.00")

	customer := models.Customer{FirstName: "John"}
	if err := db.Create(&customer).Error; err != nil {
		t.Fatal(err)
	}
	delivery := models.Delivery{
		ItemID:     &item.ID,
		CustomerID: &customer.ID,
		Date:       time.Now(),
	}
	if err := db.Create(&delivery).Error; err != nil {
		t.Fatal(err)
	}

	if err := db.Delete(item).Error; err != nil {
		t.Fatal(err)
	}

	var got models.Delivery
	if err := db.First(&got, delivery.ID).Error; err != nil {
		t.Fatal(err)
	}
	if got.ItemID != nil {
		t.Fatalf("want item reference nulled, got %d", *got.ItemID)
	}
}
