package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Company is a portfolio client whose projects are showcased.
type Company struct {
	ID      uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name    string    `json:"name" gorm:"size:255;not null;index"`
	Slug    string    `json:"slug" gorm:"uniqueIndex;size:255;not null"`
	LogoURL string    `json:"logo_url,omitempty" gorm:"size:512"`
}

// BeforeCreate sets UUID before creating the record.
func (c *Company) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
