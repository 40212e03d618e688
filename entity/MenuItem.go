package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name        string  `gorm:"not null" json:"name"`
	Price       float64 `gorm:"not null" json:"price"`
	// no default tag: gorm drops zero-valued fields that carry one, so an
	// explicit false would be stored as true
	IsAvailable bool    `json:"isAvailable"`
	IsPopular   bool    `gorm:"default:false" json:"isPopular"`

	MenuID uint `json:"menuId"`
	Menu   Menu `json:"-"` // preload when the owning menu's status matters

	CategoryID uint         `json:"categoryId"`
	Category   FoodCategory `json:"-"`

	OrderDetails []OrderDetail `gorm:"foreignKey:MenuItemID" json:"-"`
}
