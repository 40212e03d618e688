package entity

import (
	"gorm.io/gorm"
)

// Audit records an administrative mutation (who did what).
type Audit struct {
	gorm.Model
	Action  string `gorm:"not null" json:"action"`
	Details string `json:"details"`

	AdminID uint `json:"adminId"`
	Admin   User `gorm:"foreignKey:AdminID" json:"-"`
}
