package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderStatus represents the status of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Valid reports whether the status is a known value.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// Order is an immutable record of a customer purchase. Item prices and
// names are snapshotted at creation and never follow later catalog edits.
type Order struct {
	ID              uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	CustomerName    string          `json:"customer_name" gorm:"size:255;not null;index"`
	CustomerPhone   string          `json:"customer_phone" gorm:"size:50;not null;index"`
	CustomerEmail   string          `json:"customer_email,omitempty" gorm:"size:255"`
	CustomerAddress string          `json:"customer_address" gorm:"size:512;not null"`
	CustomerNote    string          `json:"customer_note,omitempty" gorm:"type:text"`
	TotalAmount     decimal.Decimal `json:"total_amount" gorm:"type:decimal(20,2);not null"`
	Status          OrderStatus     `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	CreatedAt       time.Time       `json:"created_at" gorm:"index:,sort:desc"`
	UpdatedAt       time.Time       `json:"updated_at"`

	// Relations
	Items []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
}

// BeforeCreate sets UUID before creating the record.
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// OrderItem is a point-in-time snapshot of a product line within an
// order. ProductID references the catalog entry but the name and price
// here stay fixed even if the product later changes or is deleted.
type OrderItem struct {
	ID              uint            `json:"-" gorm:"primaryKey"`
	OrderID         uuid.UUID       `json:"-" gorm:"type:char(36);not null;index"`
	ProductName     string          `json:"product_name" gorm:"size:255;not null"`
	ProductID       uuid.UUID       `json:"product_id" gorm:"type:char(36);not null"`
	Quantity        int             `json:"quantity" gorm:"not null"`
	PriceAtPurchase decimal.Decimal `json:"price_at_purchase" gorm:"type:decimal(20,2);not null"`
}
