package entity

import (
	"gorm.io/gorm"
)

const (
	MenuStatusPending  = "Pending"
	MenuStatusActive   = "Active"
	MenuStatusRejected = "Rejected"
)

type Menu struct {
	gorm.Model
	Name       string `json:"name"`
	Status     string `gorm:"not null;default:Pending" json:"status"`
	IsApproved bool   `gorm:"default:false" json:"isApproved"`
	IsPopular  bool   `gorm:"default:false" json:"isPopular"`

	CategoryID uint         `json:"categoryId"`
	Category   FoodCategory `json:"category"`

	CreatedByID uint `json:"createdById"`
	CreatedBy   User `json:"-"` // preload on detail only

	// null until an admin approves or rejects
	ApprovedByID *uint `json:"approvedById,omitempty"`
	ApprovedBy   *User `json:"-"`

	Items []MenuItem `gorm:"constraint:OnDelete:CASCADE" json:"items"`
}
