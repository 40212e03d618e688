package services

import (
	"fmt"
	"time"

	"github.com/mritunjaysukla/RMS/entity"
	"github.com/mritunjaysukla/RMS/pkg/apperr"
	"github.com/mritunjaysukla/RMS/repository"

	"gorm.io/gorm"
)

// StaffService derives duty-session views and performance metrics; metrics
// are computed, never stored.
type StaffService struct {
	DB        *gorm.DB
	UserRepo  *repository.UserRepository
	StaffRepo *repository.StaffRepository
	OrderRepo *repository.OrderRepository
}

func NewStaffService(
	db *gorm.DB,
	userRepo *repository.UserRepository,
	staffRepo *repository.StaffRepository,
	orderRepo *repository.OrderRepository,
) *StaffService {
	return &StaffService{DB: db, UserRepo: userRepo, StaffRepo: staffRepo, OrderRepo: orderRepo}
}

func timeSince(t time.Time) string {
	hours := int(time.Since(t).Hours())
	return fmt.Sprintf("%dh ago", hours)
}

type StaffOut struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	Contact    string `json:"contact"`
	Email      string `json:"email"`
	DOB        string `json:"dob,omitempty"`
	Gender     string `json:"gender"`
	Status     string `json:"status"`
	LastActive string `json:"lastActive"`
}

// List returns all Waiter/Manager users with their latest session status.
func (s *StaffService) List() ([]StaffOut, error) {
	users, err := s.UserRepo.ListStaff()
	if err != nil {
		return nil, apperr.Persistence(err)
	}

	out := make([]StaffOut, 0, len(users))
	for _, u := range users {
		row := StaffOut{
			ID:         u.ID,
			Name:       u.Username,
			Role:       u.Role,
			Contact:    u.Contact,
			Email:      u.Email,
			Gender:     u.Gender,
			Status:     entity.DutyStatusInactive,
			LastActive: "N/A",
		}
		if u.DOB != nil {
			row.DOB = u.DOB.Format("2006-01-02")
		}
		if len(u.DutySessions) > 0 {
			latest := u.DutySessions[0]
			row.Status = latest.Status
			row.LastActive = timeSince(latest.StartTime)
		}
		out = append(out, row)
	}
	return out, nil
}

type DutyPerformance struct {
	OrdersServed  int     `json:"ordersServed"`
	AverageTime   string  `json:"averageTime"`
	TotalEarnings float64 `json:"totalEarnings"`
}

type OnDutyOut struct {
	ID           uint             `json:"id"`
	Name         string           `json:"name"`
	Role         string           `json:"role"`
	Status       string           `json:"status"`
	ServiceTime  string           `json:"serviceTime"`
	WorkingHours string           `json:"workingHours"`
	Performance  *DutyPerformance `json:"performance,omitempty"`
}

// OnDuty returns open Active sessions. Waiters additionally get today's
// served-order metrics.
func (s *StaffService) OnDuty() ([]OnDutyOut, error) {
	sessions, err := s.StaffRepo.ListActive()
	if err != nil {
		return nil, apperr.Persistence(err)
	}

	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.Add(24*time.Hour - time.Nanosecond)

	out := make([]OnDutyOut, 0, len(sessions))
	for _, d := range sessions {
		row := OnDutyOut{
			ID:           d.User.ID,
			Name:         d.User.Username,
			Role:         d.User.Role,
			Status:       d.Status,
			ServiceTime:  timeSince(d.StartTime),
			WorkingHours: fmt.Sprintf("%.1f hours", now.Sub(d.StartTime).Hours()),
		}
		if d.User.Role == entity.RoleWaiter {
			orders, err := s.OrderRepo.ListServedByWaiterBetween(d.UserID, dayStart, dayEnd)
			if err != nil {
				return nil, apperr.Persistence(err)
			}
			row.Performance = waiterPerformance(orders)
		}
		out = append(out, row)
	}
	return out, nil
}

func waiterPerformance(orders []entity.Order) *DutyPerformance {
	perf := &DutyPerformance{
		OrdersServed: len(orders),
		AverageTime:  "N/A",
	}
	var totalMinutes float64
	for _, o := range orders {
		if o.Billing != nil {
			perf.TotalEarnings += o.Billing.Total
		}
		// served time is recorded by the status update bumping UpdatedAt
		totalMinutes += o.UpdatedAt.Sub(o.CreatedAt).Minutes()
	}
	if len(orders) > 0 {
		perf.AverageTime = fmt.Sprintf("%.1fmin/order", totalMinutes/float64(len(orders)))
	}
	return perf
}

// Delete removes the staff member's duty sessions, then the user row.
func (s *StaffService) Delete(userID uint) error {
	user, err := s.UserRepo.FindByID(userID)
	if err == gorm.ErrRecordNotFound {
		return apperr.NotFound("staff not found")
	}
	if err != nil {
		return apperr.Persistence(err)
	}
	if !user.IsStaff() {
		return apperr.NotFound("staff not found")
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.StaffRepo.DeleteByUser(tx, userID); err != nil {
			return err
		}
		return s.UserRepo.Delete(tx, userID)
	})
	if err != nil {
		return apperr.Persistence(err)
	}
	return nil
}
