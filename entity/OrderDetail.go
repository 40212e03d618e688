package entity

import (
	"gorm.io/gorm"
)

// OrderDetail is one line item. UnitPrice is snapshotted at order time and
// never follows later MenuItem price edits.
type OrderDetail struct {
	gorm.Model
	Quantity   int     `gorm:"not null" json:"quantity"`
	UnitPrice  float64 `gorm:"not null" json:"unitPrice"`
	TotalPrice float64 `gorm:"not null" json:"totalPrice"`

	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"` // preload when the item name is needed
}
