package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductType distinguishes ready-made items from made-to-order ones.
type ProductType string

const (
	ProductTypeReady  ProductType = "ready"
	ProductTypeCustom ProductType = "custom"
)

// Valid reports whether the product type is a known value.
func (t ProductType) Valid() bool {
	return t == ProductTypeReady || t == ProductTypeCustom
}

// ProductOptionChoice is a single choice within an option group.
type ProductOptionChoice struct {
	Label         string          `json:"label"`
	PriceModifier decimal.Decimal `json:"price_modifier"`
}

// ProductOptionGroup groups related choices, e.g. size or color.
type ProductOptionGroup struct {
	Name    string                `json:"name"`
	Choices []ProductOptionChoice `json:"choices"`
}

// Product represents a store item, ready-made or customizable.
type Product struct {
	ID          uuid.UUID            `json:"id" gorm:"type:char(36);primaryKey"`
	Name        string               `json:"name" gorm:"size:255;not null;index"`
	Slug        string               `json:"slug" gorm:"uniqueIndex;size:255;not null"`
	Price       decimal.Decimal      `json:"price" gorm:"type:decimal(20,2);not null"`
	Category    string               `json:"category,omitempty" gorm:"size:255"`
	CategoryID  *uuid.UUID           `json:"category_id,omitempty" gorm:"type:char(36);index"`
	Description string               `json:"description,omitempty" gorm:"type:text"`
	Type        ProductType          `json:"type" gorm:"type:varchar(20);not null;default:'ready';index"`
	Images      []string             `json:"images" gorm:"type:json;serializer:json"`
	Options     []ProductOptionGroup `json:"options" gorm:"type:json;serializer:json"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
