package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	DutyStatusActive   = "Active"
	DutyStatusInactive = "Inactive"
	DutyStatusOnBreak  = "OnBreak"
)

// StaffOnDuty is one duty session. EndTime stays null while the session is
// open; at most one open session per user.
type StaffOnDuty struct {
	gorm.Model
	StartTime time.Time  `gorm:"not null" json:"startTime"`
	EndTime   *time.Time `json:"endTime,omitempty"`
	Status    string     `gorm:"not null;default:Active" json:"status"`

	UserID uint `json:"userId"`
	User   User `json:"-"`
}
