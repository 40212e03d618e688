package entity

import (
	"gorm.io/gorm"
)

const (
	OrderStatusPreparing = "Preparing"
	OrderStatusServed    = "Served"
	OrderStatusRejected  = "Rejected"
)

type Order struct {
	gorm.Model
	OrderNumber         string  `gorm:"uniqueIndex;not null" json:"orderNumber"`
	Status              string  `gorm:"not null;default:Preparing" json:"status"`
	SpecialInstructions string  `json:"specialInstructions"`
	Discount            float64 `gorm:"default:0" json:"discount"`

	TableID uint        `json:"tableId"`
	Table   DiningTable `json:"-"` // preload for table number only

	WaiterID uint `json:"waiterId"`
	Waiter   User `json:"-"`

	Details []OrderDetail  `gorm:"constraint:OnDelete:CASCADE" json:"details"`
	Billing *BillingDetail `gorm:"constraint:OnDelete:CASCADE" json:"billing"`

	Reports []Report `gorm:"many2many:report_orders;" json:"-"`
}

// Terminal reports whether no further status transitions are allowed.
func (o *Order) Terminal() bool {
	return o.Status == OrderStatusServed || o.Status == OrderStatusRejected
}
