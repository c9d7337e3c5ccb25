package database_test

import (
	"errors"
	"testing"

	"salesmgt/internal/database"
	"salesmgt/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func TestCreatePurchaseComputesTotalValue(t *testing.T) {
	db := memdb(t)
	item, vendor := seedItem(t, db, "widget", 5, "50.00")

	p := &models.Purchase{
		ItemID:   item.ID,
		VendorID: vendor.ID,
		Quantity: 10,
		Price:    decimal.RequireFromString("45.00"),
	}
	if err := database.CreatePurchase(db, p); err != nil {
		t.Fatal(err)
	}

	if want := decimal.RequireFromString("450.00"); !p.TotalValue.Equal(want) {
		t.Fatalf("want total %s, got %s", want, p.TotalValue)
	}
	if p.Slug == "" {
		t.Fatal("slug not assigned")
	}
	if p.DeliveryStatus != models.DeliveryPending {
		t.Fatalf("want default status P, got %q", p.DeliveryStatus)
	}
}

func TestCreatePurchaseKeepsCurrencyPrecision(t *testing.T) {
	db := memdb(t)
	item, vendor := seedItem(t, db, "widget", 0, "10.00")

	p := &models.Purchase{
		ItemID:   item.ID,
		VendorID: vendor.ID,
		Quantity: 3,
		Price:    decimal.RequireFromString("99.99"),
	}
	if err := database.CreatePurchase(db, p); err != nil {
		t.Fatal(err)
	}

	if want := decimal.RequireFromString("299.97"); !p.TotalValue.Equal(want) {
		t.Fatalf("want total %s, got %s", want, p.TotalValue)
	}
}

func TestCreatePurchaseIncrementsItemStockExactlyOnce(t *testing.T) {
	db := memdb(t)
	item, vendor := seedItem(t, db, "widget", 5, "50.00")

	p := &models.Purchase{
		ItemID:   item.ID,
		VendorID: vendor.ID,
		Quantity: 10,
		Price:    decimal.RequireFromString("45.00"),
	}
	if err := database.CreatePurchase(db, p); err != nil {
		t.Fatal(err)
	}

	var got models.Item
	if err := db.First(&got, item.ID).Error; err != nil {
		t.Fatal(err)
	}
	if got.Quantity != 15 {
		t.Fatalf("want stock 15 after purchase, got %d", got.Quantity)
	}
}

func TestUpdatePurchaseDoesNotReapplyIncrement(t *testing.T) {
	db := memdb(t)
	item, vendor := seedItem(t, db, "widget", 5, "50.00")

	p := &models.Purchase{
		ItemID:   item.ID,
		VendorID: vendor.ID,
		Quantity: 10,
		Price:    decimal.RequireFromString("45.00"),
	}
	if err := database.CreatePurchase(db, p); err != nil {
		t.Fatal(err)
	}

	// Unrelated update: stock must not move again
	p.Description = "restock order"
	if err := database.UpdatePurchase(db, p); err != nil {
		t.Fatal(err)
	}

	var got models.Item
	if err := db.First(&got, item.ID).Error; err != nil {
		t.Fatal(err)
	}
	if got.Quantity != 15 {
		t.Fatalf("stock re-applied on update: want 15, got %d", got.Quantity)
	}
}

func TestUpdatePurchaseRecalculatesTotal(t *testing.T) {
	db := memdb(t)
	item, vendor := seedItem(t, db, "widget", 5, "50.00")

	p := &models.Purchase{
		ItemID:   item.ID,
		VendorID: vendor.ID,
		Quantity: 10,
		Price:    decimal.RequireFromString("45.00"),
	}
	if err := database.CreatePurchase(db, p); err != nil {
		t.Fatal(err)
	}

	p.Price = decimal.RequireFromString("60.00")
	p.Quantity = 8
	if err := database.UpdatePurchase(db, p); err != nil {
		t.Fatal(err)
	}

	if want := decimal.RequireFromString("480.00"); !p.TotalValue.Equal(want) {
		t.Fatalf("want recalculated total %s, got %s", want, p.TotalValue)
	}
}

func TestUpdatePurchaseRejectsMissingReferents(t *testing.T) {
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

	p.ItemID = 9999
	if err := database.UpdatePurchase(db, p); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("want ErrRecordNotFound for missing item, got %v", err)
	}

	p.ItemID = item.ID
	p.VendorID = 9999
	if err := database.UpdatePurchase(db, p); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("want ErrRecordNotFound for missing vendor, got %v", err)
	}
}

func TestCreatePurchaseZeroQuantityLeavesStockAlone(t *testing.T) {
	db := memdb(t)
	item, vendor := seedItem(t, db, "widget", 7, "50.00")

	p := &models.Purchase{
		ItemID:   item.ID,
		VendorID: vendor.ID,
		Quantity: 0,
		Price:    decimal.RequireFromString("45.00"),
	}
	if err := database.CreatePurchase(db, p); err != nil {
		t.Fatal(err)
	}

	var got models.Item
	if err := db.First(&got, item.ID).Error; err != nil {
		t.Fatal(err)
	}
	if got.Quantity != 7 {
		t.Fatalf("want stock unchanged at 7, got %d", got.Quantity)
	}
}

func TestCreatePurchaseMissingItemFails(t *testing.T) {
	db := memdb(t)
	_, vendor := seedItem(t, db, "widget", 5, "50.00")

	p := &models.Purchase{
		ItemID:   9999,
		VendorID: vendor.ID,
		Quantity: 1,
		Price:    decimal.RequireFromString("1.00"),
	}
	err := database.CreatePurchase(db, p)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("want ErrRecordNotFound, got %v", err)
	}

	var count int64
	if err := db.Model(&models.Purchase{}).Count(&count).Error; err != nil {
		t.Fatal(err)
	}
	if count != 0 {
		t.Fatalf("purchase persisted despite missing item")
	}
}

func TestCreatePurchaseMissingVendorFails(t *testing.T) {
	db := memdb(t)
	item, _ := seedItem(t, db, "widget", 5, "50.00")

	p := &models.Purchase{
		ItemID:   item.ID,
		VendorID: 9999,
		Quantity: 4,
		Price:    decimal.RequireFromString("1.00"),
	}
	if err := database.CreatePurchase(db, p); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("want ErrRecordNotFound, got %v", err)
	}

	// The whole transaction rolled back, stock included
	var got models.Item
	if err := db.First(&got, item.ID).Error; err != nil {
		t.Fatal(err)
	}
	if got.Quantity != 5 {
		t.Fatalf("stock changed on failed purchase: got %d", got.Quantity)
	}
}

func TestPurchaseSlugsStayUniquePerVendor(t *testing.T) {
	db := memdb(t)
	item, vendor := seedItem(t, db, "widget", 5, "50.00")

	var slugs []string
	for i := 0; i < 3; i++ {
		p := &models.Purchase{
			ItemID:   item.ID,
			VendorID: vendor.ID,
			Quantity: 1,
			Price:    decimal.RequireFromString("2.00"),
		}
		if err := database.CreatePurchase(db, p); err != nil {
			t.Fatal(err)
		}
		slugs = append(slugs, p.Slug)
	}

	seen := map[string]bool{}
	for _, s := range slugs {
		if seen[s] {
			t.Fatalf("duplicate slug %q in %v", s, slugs)
		}
		seen[s] = true
	}
	if slugs[0] != "test-vendor" {
		t.Fatalf("want slug derived from vendor name, got %q", slugs[0])
	}
}
