package services

import (
	"math"
	"testing"
	"time"

	"github.com/mritunjaysukla/RMS/entity"
	"github.com/mritunjaysukla/RMS/pkg/apperr"
	"github.com/mritunjaysukla/RMS/repository"

	"gorm.io/gorm"
)

func newReportService(db *gorm.DB) *ReportService {
	return NewReportService(
		repository.NewReportRepository(db),
		repository.NewUserRepository(db),
		repository.NewOrderRepository(db))
}

func TestPeriodWindow(t *testing.T) {
	// Wednesday, mid-month
	now := time.Date(2025, time.March, 12, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		period    string
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			period:    entity.ReportPeriodDaily,
			wantStart: time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, time.March, 12, 23, 59, 59, 999999999, time.UTC),
		},
		{
			// week starts on Sunday the 9th
			period:    entity.ReportPeriodWeekly,
			wantStart: time.Date(2025, time.March, 9, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, time.March, 15, 23, 59, 59, 999999999, time.UTC),
		},
		{
			period:    entity.ReportPeriodMonthly,
			wantStart: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2025, time.March, 31, 23, 59, 59, 999999999, time.UTC),
		},
	}
	for _, tt := range tests {
		t.Run(tt.period, func(t *testing.T) {
			start, end, err := periodWindow(tt.period, now)
			if err != nil {
				t.Fatalf("periodWindow: %v", err)
			}
			if !start.Equal(tt.wantStart) {
				t.Errorf("start = %v, want %v", start, tt.wantStart)
			}
			if !end.Equal(tt.wantEnd) {
				t.Errorf("end = %v, want %v", end, tt.wantEnd)
			}
		})
	}

	if _, _, err := periodWindow("Quarterly", now); !apperr.IsKind(err, apperr.KindValidation) {
		t.Errorf("err = %v, want Validation", err)
	}
}

func TestGenerateReport(t *testing.T) {
	db := newTestDB(t)
	admin := createUser(t, db, "admin1", entity.RoleAdmin)
	manager := createUser(t, db, "manager1", entity.RoleManager)
	waiter := createUser(t, db, "waiter1", entity.RoleWaiter)
	cat := createCategory(t, db, "Mains")
	menu := createActiveMenu(t, db, manager, cat, 10.00)
	orders := newOrderService(db)
	svc := newReportService(db)

	for i := 1; i <= 2; i++ {
		tab := createTable(t, db, i)
		if _, err := orders.Create(waiter.ID, CreateOrderIn{
			TableID: tab.ID,
			Items:   []OrderItemIn{{MenuItemID: menu.Items[0].ID, Quantity: i}},
		}); err != nil {
			t.Fatalf("seed order %d: %v", i, err)
		}
	}

	rep, err := svc.Generate(manager.ID, admin.ID, entity.ReportPeriodDaily)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if rep.TotalOrders != 2 {
		t.Errorf("totalOrders = %d, want 2", rep.TotalOrders)
	}
	// 11.30 + 22.60
	if math.Abs(rep.TotalSales-33.90) > 1e-9 {
		t.Errorf("totalSales = %v, want 33.90", rep.TotalSales)
	}

	detail, err := svc.Details(rep.ID)
	if err != nil {
		t.Fatalf("details: %v", err)
	}
	if len(detail.Tables) != 2 {
		t.Fatalf("tables = %d, want 2", len(detail.Tables))
	}
	if detail.Tables[0].TableNumber != 1 || detail.Tables[1].TableNumber != 2 {
		t.Errorf("tables out of order: %d, %d",
			detail.Tables[0].TableNumber, detail.Tables[1].TableNumber)
	}
	slot := detail.Tables[1].Orders[0]
	if slot.Total != 22.60 || slot.EndTime == nil {
		t.Errorf("slot = %+v, want total 22.60 with billing end time", slot)
	}
	if detail.Manager != "manager1" || detail.SubmittedTo != "admin1" {
		t.Errorf("got manager=%s submittedTo=%s", detail.Manager, detail.SubmittedTo)
	}
}

func TestGenerateReport_RecipientMustBeAdmin(t *testing.T) {
	db := newTestDB(t)
	manager := createUser(t, db, "manager1", entity.RoleManager)
	waiter := createUser(t, db, "waiter1", entity.RoleWaiter)
	svc := newReportService(db)

	if _, err := svc.Generate(manager.ID, waiter.ID, entity.ReportPeriodDaily); !apperr.IsKind(err, apperr.KindNotFound) {
		t.Errorf("waiter recipient: err = %v, want NotFound", err)
	}
	if _, err := svc.Generate(manager.ID, 999, entity.ReportPeriodDaily); !apperr.IsKind(err, apperr.KindNotFound) {
		t.Errorf("missing recipient: err = %v, want NotFound", err)
	}
	admin := createUser(t, db, "admin1", entity.RoleAdmin)
	if _, err := svc.Generate(manager.ID, admin.ID, "Hourly"); !apperr.IsKind(err, apperr.KindValidation) {
		t.Errorf("bad period: err = %v, want Validation", err)
	}
}

func TestReportDetails_NotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newReportService(db)
	if _, err := svc.Details(42); !apperr.IsKind(err, apperr.KindNotFound) {
		t.Errorf("err = %v, want NotFound", err)
	}
}
