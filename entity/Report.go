package entity

import (
	"gorm.io/gorm"
)

const (
	ReportPeriodDaily   = "Daily"
	ReportPeriodWeekly  = "Weekly"
	ReportPeriodMonthly = "Monthly"
)

// Report is a periodic sales aggregate. Immutable once created.
type Report struct {
	gorm.Model
	Period      string  `gorm:"not null" json:"period"`
	TotalOrders int64   `json:"totalOrders"`
	TotalSales  float64 `json:"totalSales"`

	ManagerID uint `json:"managerId"`
	Manager   User `json:"-"`

	SubmittedToID uint `json:"submittedToId"`
	SubmittedTo   User `json:"-"`

	Orders []Order `gorm:"many2many:report_orders;" json:"-"`
}
