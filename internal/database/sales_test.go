package database_test

import (
	"errors"
	"testing"

	"salesmgt/internal/database"
	"salesmgt/internal/models"

	"github.com/shopspring/decimal"
)

func TestCreateSaleComputesTotalsAndDeductsStock(t *testing.T) {
	db := memdb(t)
	itemA, _ := seedItem(t, db, "amp", 10, "50.00")
	itemB, _ := seedItem(t, db, "mic", 5, "30.00")

	sale, err := database.CreateSale(db, nil, []database.SaleLine{
		{ItemID: itemA.ID, Quantity: 2},
		{ItemID: itemB.ID, Quantity: 3},
	}, decimal.NewFromInt(10), decimal.RequireFromString("250.00"))
	if err != nil {
		t.Fatal(err)
	}

	// 2*50 + 3*30 = 190; tax 10% = 19; grand 209; change 41
	if want := decimal.RequireFromString("190.00"); !sale.SubTotal.Equal(want) {
		t.Fatalf("want subtotal %s, got %s", want, sale.SubTotal)
	}
	if want := decimal.RequireFromString("19.00"); !sale.TaxAmount.Equal(want) {
		t.Fatalf("want tax %s, got %s", want, sale.TaxAmount)
	}
	if want := decimal.RequireFromString("209.00"); !sale.GrandTotal.Equal(want) {
		t.Fatalf("want grand total %s, got %s", want, sale.GrandTotal)
	}
	if want := decimal.RequireFromString("41.00"); !sale.AmountChange.Equal(want) {
		t.Fatalf("want change %s, got %s", want, sale.AmountChange)
	}
	if sale.SumProducts() != 5 {
		t.Fatalf("want 5 units across lines, got %d", sale.SumProducts())
	}

	var gotA, gotB models.Item
	if err := db.First(&gotA, itemA.ID).Error; err != nil {
		t.Fatal(err)
	}
	if err := db.First(&gotB, itemB.ID).Error; err != nil {
		t.Fatal(err)
	}
	if gotA.Quantity != 8 || gotB.Quantity != 2 {
		t.Fatalf("stock not deducted: got %d, %d", gotA.Quantity, gotB.Quantity)
	}
}

func TestCreateSaleInsufficientStockRollsBack(t *testing.T) {
	db := memdb(t)
	itemA, _ := seedItem(t, db, "amp", 10, "50.00")
	itemB, _ := seedItem(t, db, "mic", 1, "30.00")

	_, err := database.CreateSale(db, nil, []database.SaleLine{
		{ItemID: itemA.ID, Quantity: 2},
		{ItemID: itemB.ID, Quantity: 3}, // only 1 on hand
	}, decimal.Zero, decimal.Zero)

	var stockErr database.ErrInsufficientStock
	if !errors.As(err, &stockErr) {
		t.Fatalf("want ErrInsufficientStock, got %v", err)
	}
	if stockErr.ItemName != "mic" {
		t.Fatalf("want error naming mic, got %q", stockErr.ItemName)
	}

	// First line's deduction must roll back with the sale
	var gotA models.Item
	if err := db.First(&gotA, itemA.ID).Error; err != nil {
		t.Fatal(err)
	}
	if gotA.Quantity != 10 {
		t.Fatalf("deduction leaked from rolled-back sale: got %d", gotA.Quantity)
	}

	var count int64
	if err := db.Model(&models.Sale{}).Count(&count).Error; err != nil {
		t.Fatal(err)
	}
	if count != 0 {
		t.Fatal("sale persisted despite rollback")
	}
}

func TestDeletedCustomerLeavesSaleBehind(t *testing.T) {
	db := memdb(t)
	item, _ := seedItem(t, db, "amp", 10, "50.00")

	customer := models.Customer{FirstName: "John"}
	if err := db.Create(&customer).Error; err != nil {
		t.Fatal(err)
	}

	sale, err := database.CreateSale(db, &customer.ID,
		[]database.SaleLine{{ItemID: item.ID, Quantity: 1}}, decimal.Zero, decimal.Zero)
	if err != nil {
		t.Fatal(err)
	}

	if err := db.Delete(&customer).Error; err != nil {
		t.Fatal(err)
	}

	var got models.Sale
	if err := db.First(&got, sale.ID).Error; err != nil {
		t.Fatal(err)
	}
	if got.CustomerID == nil || *got.CustomerID != customer.ID {
		t.Fatalf("want dangling customer reference, got %v", got.CustomerID)
	}
}
