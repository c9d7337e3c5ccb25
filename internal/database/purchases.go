package database

import (
	"salesmgt/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// purchaseTotal computes price * quantity at currency precision.
func purchaseTotal(price decimal.Decimal, quantity int) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(quantity))).Round(2)
}

// lockForUpdate row-locks reads that feed a read-modify-write. SQLite has no
// FOR UPDATE syntax; its single-writer lock already covers us there.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// CreatePurchase records an inbound purchase and restocks the item in one
// transaction. The item row is locked first so concurrent purchases against
// the same item cannot lose the quantity increment. The increment happens
// here and only here: re-saving a purchase never re-applies it.
func CreatePurchase(db *gorm.DB, p *models.Purchase) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var item models.Item
		if err := lockForUpdate(tx).First(&item, p.ItemID).Error; err != nil {
			return err
		}

		var vendor models.Vendor
		if err := tx.First(&vendor, p.VendorID).Error; err != nil {
			return err
		}

		slug, err := UniqueSlug(tx, &models.Purchase{}, vendor.Name)
		if err != nil {
			return err
		}
		p.Slug = slug
		p.TotalValue = purchaseTotal(p.Price, p.Quantity)
		if p.DeliveryStatus == "" {
			p.DeliveryStatus = models.DeliveryPending
		}

		if err := tx.Omit("Item", "Vendor").Create(p).Error; err != nil {
			return err
		}

		item.Quantity += p.Quantity
		return tx.Omit("Category", "Vendor").Save(&item).Error
	})
}

// UpdatePurchase applies field changes and recomputes the derived total.
// Item stock is deliberately untouched: the restock belongs to creation.
func UpdatePurchase(db *gorm.DB, p *models.Purchase) error {
	var item models.Item
	if err := db.First(&item, p.ItemID).Error; err != nil {
		return err
	}
	var vendor models.Vendor
	if err := db.First(&vendor, p.VendorID).Error; err != nil {
		return err
	}

	p.TotalValue = purchaseTotal(p.Price, p.Quantity)
	return db.Omit("Item", "Vendor").Save(p).Error
}
