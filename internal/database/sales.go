package database

import (
	"fmt"

	"salesmgt/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SaleLine is one cart entry in a checkout request.
type SaleLine struct {
	ItemID   uint `json:"item_id" binding:"required"`
	Quantity int  `json:"quantity" binding:"required,min=1"`
}

// ErrInsufficientStock is returned when a cart line asks for more units
// than the item has on hand.
type ErrInsufficientStock struct {
	ItemName string
}

func (e ErrInsufficientStock) Error() string {
	return fmt.Sprintf("insufficient stock for %s", e.ItemName)
}

// CreateSale turns a cart into a Sale with its detail lines, deducting item
// stock as it goes. Everything runs in one transaction with each item row
// locked, mirroring the restock path in CreatePurchase.
func CreateSale(db *gorm.DB, customerID *uint, lines []SaleLine, taxPercentage, amountPaid decimal.Decimal) (*models.Sale, error) {
	sale := &models.Sale{
		CustomerID:    customerID,
		TaxPercentage: taxPercentage,
		AmountPaid:    amountPaid,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		subTotal := decimal.Zero
		var details []models.SaleDetail

		for _, line := range lines {
			var item models.Item
			if err := lockForUpdate(tx).First(&item, line.ItemID).Error; err != nil {
				return err
			}
			if item.Quantity < line.Quantity {
				return ErrInsufficientStock{ItemName: item.Name}
			}

			item.Quantity -= line.Quantity
			if err := tx.Omit("Category", "Vendor").Save(&item).Error; err != nil {
				return err
			}

			lineTotal := item.Price.Mul(decimal.NewFromInt(int64(line.Quantity))).Round(2)
			subTotal = subTotal.Add(lineTotal)
			details = append(details, models.SaleDetail{
				ItemID:      item.ID,
				Price:       item.Price,
				Quantity:    line.Quantity,
				TotalDetail: lineTotal,
			})
		}

		sale.SubTotal = subTotal
		sale.TaxAmount = subTotal.Mul(taxPercentage).Div(decimal.NewFromInt(100)).Round(2)
		sale.GrandTotal = subTotal.Add(sale.TaxAmount)
		sale.AmountChange = amountPaid.Sub(sale.GrandTotal)
		sale.Details = details

		return tx.Create(sale).Error
	})
	if err != nil {
		return nil, err
	}
	return sale, nil
}
