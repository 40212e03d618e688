package entity

import (
	"gorm.io/gorm"
)

// BillingDetail is the one-to-one monetary snapshot written in the same
// transaction as its order.
type BillingDetail struct {
	gorm.Model
	Subtotal float64 `gorm:"not null" json:"subtotal"`
	Tax      float64 `gorm:"not null" json:"tax"`
	Discount float64 `gorm:"default:0" json:"discount"`
	Total    float64 `gorm:"not null" json:"total"`

	OrderID uint  `gorm:"uniqueIndex" json:"orderId"`
	Order   Order `json:"-"`
}
