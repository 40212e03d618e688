package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleAdmin   = "Admin"
	RoleManager = "Manager"
	RoleWaiter  = "Waiter"
)

type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `json:"-"`
	Role     string `gorm:"not null;default:Waiter" json:"role"`
	IsActive bool   `json:"isActive"`

	Contact string     `json:"contact"`
	Email   string     `gorm:"uniqueIndex" json:"email"`
	DOB     *time.Time `json:"dob,omitempty"`
	Gender  string     `json:"gender"`

	// Relations — preload only when needed
	MenusCreated  []Menu        `gorm:"foreignKey:CreatedByID" json:"-"`
	MenusApproved []Menu        `gorm:"foreignKey:ApprovedByID" json:"-"`
	Orders        []Order       `gorm:"foreignKey:WaiterID" json:"-"`
	DutySessions  []StaffOnDuty `gorm:"foreignKey:UserID" json:"-"`
	Reports       []Report      `gorm:"foreignKey:ManagerID" json:"-"`
}

// IsStaff reports whether the role participates in duty tracking.
func (u *User) IsStaff() bool {
	return u.Role == RoleWaiter || u.Role == RoleManager
}
