package entity

import (
	"gorm.io/gorm"
)

type DiningTable struct {
	gorm.Model
	TableNumber int  `gorm:"uniqueIndex;not null" json:"tableNumber"`
	// callers set availability explicitly; a default tag would make gorm
	// drop an explicit false on insert
	IsAvailable bool `json:"isAvailable"`

	Orders []Order `gorm:"foreignKey:TableID" json:"-"`
}
