package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role classifies a user account.
type Role string

const (
	RoleClient Role = "client"
	RoleAdmin  Role = "admin"
)

// Valid reports whether the role is a known value.
func (r Role) Valid() bool {
	return r == RoleClient || r == RoleAdmin
}

// User represents an authenticated user in the system.
type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role         Role      `json:"role" gorm:"type:varchar(20);not null;default:'client'"`
	FullName     string    `json:"full_name,omitempty" gorm:"size:255"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
