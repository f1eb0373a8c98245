package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category is a product grouping with an SEO-friendly slug.
type Category struct {
	ID   uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name string    `json:"name" gorm:"size:255;not null;index"`
	Slug string    `json:"slug" gorm:"uniqueIndex;size:255;not null"`
}

// BeforeCreate sets UUID before creating the record.
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
