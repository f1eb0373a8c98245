package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project is a completed job showcased in the portfolio, linked to a
// company by its slug.
type Project struct {
	ID             uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	Name           string     `json:"name" gorm:"size:255;not null;index"`
	Slug           string     `json:"slug" gorm:"uniqueIndex;size:255;not null"`
	CompanySlug    string     `json:"company_slug" gorm:"size:255;not null;index"`
	Address        string     `json:"address,omitempty" gorm:"size:512"`
	CompletionDate *time.Time `json:"completion_date,omitempty"`
	ImageURLs      []string   `json:"image_urls" gorm:"type:json;serializer:json"`
	IsFeatured     bool       `json:"is_featured" gorm:"default:false;index"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
