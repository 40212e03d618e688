package services

import (
	"sort"
	"time"

	"github.com/mritunjaysukla/RMS/entity"
	"github.com/mritunjaysukla/RMS/pkg/apperr"
	"github.com/mritunjaysukla/RMS/repository"

	"gorm.io/gorm"
)

// ReportService aggregates orders over a period into an immutable sales
// report submitted by a manager to an admin.
type ReportService struct {
	Repo      *repository.ReportRepository
	UserRepo  *repository.UserRepository
	OrderRepo *repository.OrderRepository
}

func NewReportService(
	repo *repository.ReportRepository,
	userRepo *repository.UserRepository,
	orderRepo *repository.OrderRepository,
) *ReportService {
	return &ReportService{Repo: repo, UserRepo: userRepo, OrderRepo: orderRepo}
}

// periodWindow resolves a period to [start, end] around now. Weeks start on
// Sunday; months span the full calendar month.
func periodWindow(period string, now time.Time) (time.Time, time.Time, error) {
	dayStart := func(t time.Time) time.Time {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	}
	dayEnd := func(t time.Time) time.Time {
		return dayStart(t).Add(24*time.Hour - time.Nanosecond)
	}

	switch period {
	case entity.ReportPeriodDaily:
		return dayStart(now), dayEnd(now), nil
	case entity.ReportPeriodWeekly:
		weekStart := dayStart(now).AddDate(0, 0, -int(now.Weekday()))
		return weekStart, dayEnd(weekStart.AddDate(0, 0, 6)), nil
	case entity.ReportPeriodMonthly:
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return monthStart, dayEnd(monthStart.AddDate(0, 1, -1)), nil
	}
	return time.Time{}, time.Time{}, apperr.Validation("period must be Daily, Weekly or Monthly")
}

// Generate aggregates the window's orders and persists the report together
// with its contributing-order associations.
func (s *ReportService) Generate(managerID, submittedToID uint, period string) (*entity.Report, error) {
	start, end, err := periodWindow(period, time.Now())
	if err != nil {
		return nil, err
	}

	admin, err := s.UserRepo.FindByID(submittedToID)
	if err == gorm.ErrRecordNotFound {
		return nil, apperr.NotFound("admin not found")
	}
	if err != nil {
		return nil, apperr.Persistence(err)
	}
	if admin.Role != entity.RoleAdmin {
		return nil, apperr.NotFound("admin not found")
	}

	orders, err := s.OrderRepo.ListBetween(start, end)
	if err != nil {
		return nil, apperr.Persistence(err)
	}

	var totalSales float64
	for _, o := range orders {
		if o.Billing != nil {
			totalSales += o.Billing.Total
		}
	}

	report := &entity.Report{
		Period:        period,
		TotalOrders:   int64(len(orders)),
		TotalSales:    totalSales,
		ManagerID:     managerID,
		SubmittedToID: submittedToID,
		Orders:        orders,
	}
	if err := s.Repo.Create(report); err != nil {
		return nil, apperr.Persistence(err)
	}
	return report, nil
}

func (s *ReportService) List() ([]entity.Report, error) {
	reps, err := s.Repo.List()
	if err != nil {
		return nil, apperr.Persistence(err)
	}
	return reps, nil
}

// ReportSlotOut is one order's time slot at a table.
type ReportSlotOut struct {
	OrderNumber string         `json:"orderNumber"`
	StartTime   time.Time      `json:"startTime"`
	EndTime     *time.Time     `json:"endTime,omitempty"` // billing creation time
	Items       []OrderLineOut `json:"items"`
	Subtotal    float64        `json:"subtotal"`
	Tax         float64        `json:"tax"`
	Total       float64        `json:"total"`
}

type ReportTableOut struct {
	TableNumber int             `json:"tableNumber"`
	Orders      []ReportSlotOut `json:"orders"`
}

type ReportDetailOut struct {
	ID          uint             `json:"id"`
	Period      string           `json:"period"`
	TotalOrders int64            `json:"totalOrders"`
	TotalSales  float64          `json:"totalSales"`
	Manager     string           `json:"manager"`
	SubmittedTo string           `json:"submittedTo"`
	Tables      []ReportTableOut `json:"tables"`
}

// Details reconstructs the per-table breakdown: tables by number, each
// table's orders by start time ascending. Re-running it without intervening
// writes yields an identical breakdown.
func (s *ReportService) Details(reportID uint) (*ReportDetailOut, error) {
	rep, err := s.Repo.FindByID(reportID)
	if err == gorm.ErrRecordNotFound {
		return nil, apperr.NotFound("report not found")
	}
	if err != nil {
		return nil, apperr.Persistence(err)
	}

	byTable := map[int][]ReportSlotOut{}
	for _, o := range rep.Orders {
		slot := ReportSlotOut{
			OrderNumber: o.OrderNumber,
			StartTime:   o.CreatedAt,
		}
		for _, d := range o.Details {
			slot.Items = append(slot.Items, OrderLineOut{
				Name:     d.MenuItem.Name,
				Quantity: d.Quantity,
				Price:    d.UnitPrice,
				Total:    d.TotalPrice,
			})
		}
		if o.Billing != nil {
			t := o.Billing.CreatedAt
			slot.EndTime = &t
			slot.Subtotal = o.Billing.Subtotal
			slot.Tax = o.Billing.Tax
			slot.Total = o.Billing.Total
		}
		byTable[o.Table.TableNumber] = append(byTable[o.Table.TableNumber], slot)
	}

	tables := make([]ReportTableOut, 0, len(byTable))
	for num, slots := range byTable {
		sort.Slice(slots, func(i, j int) bool {
			return slots[i].StartTime.Before(slots[j].StartTime)
		})
		tables = append(tables, ReportTableOut{TableNumber: num, Orders: slots})
	}
	sort.Slice(tables, func(i, j int) bool {
		return tables[i].TableNumber < tables[j].TableNumber
	})

	return &ReportDetailOut{
		ID:          rep.ID,
		Period:      rep.Period,
		TotalOrders: rep.TotalOrders,
		TotalSales:  rep.TotalSales,
		Manager:     rep.Manager.Username,
		SubmittedTo: rep.SubmittedTo.Username,
		Tables:      tables,
	}, nil
}
