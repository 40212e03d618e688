package entity

import (
	"gorm.io/gorm"
)

type FoodCategory struct {
	gorm.Model
	Name string `gorm:"uniqueIndex;not null" json:"name"`

	Menus []Menu     `gorm:"foreignKey:CategoryID" json:"-"`
	Items []MenuItem `gorm:"foreignKey:CategoryID" json:"-"`
}
