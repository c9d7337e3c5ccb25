package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Profile status codes
const (
	StatusInactive = "INA"
	StatusActive   = "A"
	StatusOnLeave  = "OL"
)

// Role codes
const (
	RoleOperative = "OP"
	RoleExecutive = "EX"
	RoleAdmin     = "AD"
)

// Purchase delivery status codes
const (
	DeliveryPending    = "P"
	DeliverySuccessful = "S"
)

// DeliveryStatusLabel maps a delivery status code to its display label.
func DeliveryStatusLabel(code string) string {
	switch code {
	case DeliveryPending:
		return "Pending"
	case DeliverySuccessful:
		return "Successful"
	}
	return code
}

// User - The login identity
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:50" json:"username"`
	Email        string    `gorm:"size:150" json:"email"`
	PasswordHash string    `json:"-"` // Never return this in JSON
	IsSuperuser  bool      `gorm:"default:false" json:"is_superuser"`
	CreatedAt    time.Time `json:"created_at"`
}

// Profile - One per user, created automatically on registration.
// Role and status live here, not on the User row.
type Profile struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	UserID       uint    `gorm:"uniqueIndex" json:"user_id"`
	User         User    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Slug         string  `gorm:"uniqueIndex;size:150" json:"slug"`
	FirstName    string  `gorm:"size:30" json:"first_name"`
	LastName     string  `gorm:"size:30" json:"last_name"`
	Email        *string `gorm:"size:150" json:"email"`
	Telephone    *string `gorm:"size:30" json:"telephone"`
	ProfileImage string  `gorm:"size:255;default:'profile_pics/default.jpg'" json:"profile_image"`
	Status       string  `gorm:"size:12;default:'INA'" json:"status"` // INA, A, OL
	Role         *string `gorm:"size:12" json:"role"`                 // OP, EX, AD
}

// Vendor - Supplies inventory items
type Vendor struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"size:50" json:"name"`
	Slug        string  `gorm:"uniqueIndex;size:60" json:"slug"`
	PhoneNumber *int64  `json:"phone_number"`
	Address     *string `gorm:"size:50" json:"address"`
}

// Customer - Buys from us, earns loyalty points
type Customer struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	FirstName     string  `gorm:"size:256" json:"first_name"`
	LastName      *string `gorm:"size:256" json:"last_name"`
	Address       *string `gorm:"size:256" json:"address"`
	Email         *string `gorm:"size:256" json:"email"`
	Phone         *string `gorm:"size:30" json:"phone"`
	LoyaltyPoints int     `gorm:"default:0" json:"loyalty_points"`
}

// FullName joins first and last name, tolerating a missing last name.
func (c *Customer) FullName() string {
	if c.LastName == nil || *c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + *c.LastName
}

// Category - Groups inventory items
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:50" json:"name"`
	Slug string `gorm:"uniqueIndex;size:60" json:"slug"`
}

// Item - The inventory
type Item struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	Slug         string          `gorm:"uniqueIndex;size:60" json:"slug"`
	Name         string          `gorm:"size:50" json:"name"`
	Description  string          `gorm:"size:256" json:"description"`
	CategoryID   uint            `gorm:"not null" json:"category_id"`
	Category     Category        `gorm:"constraint:OnDelete:CASCADE" json:"category"`
	Quantity     int             `gorm:"default:0" json:"quantity"`
	Price        decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"price"`
	ExpiringDate *time.Time      `json:"expiring_date"`
	VendorID     *uint           `json:"vendor_id"`
	Vendor       *Vendor         `gorm:"constraint:OnDelete:SET NULL" json:"vendor,omitempty"`
}

// Purchase - Inbound stock from a vendor.
// TotalValue is derived (price * quantity) and recomputed on every save;
// creating a purchase also bumps the item's stock, exactly once.
type Purchase struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	Slug           string          `gorm:"uniqueIndex;size:60" json:"slug"` // derived from vendor name
	ItemID         uint            `gorm:"not null" json:"item_id"`
	Item           Item            `gorm:"constraint:OnDelete:CASCADE" json:"item"`
	VendorID       uint            `gorm:"not null" json:"vendor_id"`
	Vendor         Vendor          `gorm:"constraint:OnDelete:CASCADE" json:"vendor"`
	Description    string          `gorm:"size:300" json:"description"`
	Quantity       int             `gorm:"default:0" json:"quantity"`
	Price          decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"price"`
	TotalValue     decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"total_value"`
	DeliveryDate   *time.Time      `json:"delivery_date"`
	DeliveryStatus string          `gorm:"size:1;default:'P'" json:"delivery_status"` // P, S
	OrderDate      time.Time       `gorm:"autoCreateTime" json:"order_date"`
}

// Sale - The transaction header.
// CustomerID has no FK constraint on purpose: deleting a customer must not
// touch their past sales, the reference is simply left dangling.
type Sale struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	CustomerID    *uint           `json:"customer_id"`
	SubTotal      decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"sub_total"`
	GrandTotal    decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"grand_total"`
	TaxAmount     decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"tax_amount"`
	TaxPercentage decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"tax_percentage"`
	AmountPaid    decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"amount_paid"`
	AmountChange  decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"amount_change"`
	DateAdded     time.Time       `gorm:"autoCreateTime" json:"date_added"`
	Details       []SaleDetail    `gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE" json:"details"`
}

// SumProducts returns the total quantity sold across all lines.
func (s *Sale) SumProducts() int {
	total := 0
	for _, d := range s.Details {
		total += d.Quantity
	}
	return total
}

// SaleDetail - One line of a sale.
// ItemID is unconstrained like Sale.CustomerID: sold lines outlive the item.
type SaleDetail struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	SaleID      uint            `gorm:"not null" json:"sale_id"`
	ItemID      uint            `json:"item_id"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"price"`
	Quantity    int             `gorm:"default:0" json:"quantity"`
	TotalDetail decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"total_detail"`
}

// Delivery - A scheduled drop-off of an item to a customer
type Delivery struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ItemID      *uint     `json:"item_id"`
	Item        *Item     `gorm:"constraint:OnDelete:SET NULL" json:"item,omitempty"`
	CustomerID  *uint     `json:"customer_id"`
	Customer    *Customer `gorm:"constraint:OnDelete:CASCADE" json:"customer,omitempty"`
	Date        time.Time `json:"date"`
	IsDelivered bool      `gorm:"default:false" json:"is_delivered"`
}
