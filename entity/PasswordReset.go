package entity

import (
	"time"

	"gorm.io/gorm"
)

// PasswordReset is a one-time code: valid once, and only before expiry.
type PasswordReset struct {
	gorm.Model
	Code      string    `gorm:"uniqueIndex;not null" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expiresAt"`
	Used      bool      `gorm:"default:false" json:"used"`

	UserID uint `json:"userId"`
	User   User `json:"-"`
}
