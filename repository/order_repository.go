package repository

import (
	"time"

	"github.com/mritunjaysukla/RMS/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- writes (inside the order transaction) ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateDetail(tx *gorm.DB, d *entity.OrderDetail) error {
	return tx.Create(d).Error
}

func (r *OrderRepository) CreateBilling(tx *gorm.DB, b *entity.BillingDetail) error {
	return tx.Create(b).Error
}

// UpdateStatusGuard transitions status only from the expected current
// status. Zero rows affected means the order was not in `from`.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to string) (bool, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// ---------------- reads ----------------

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// GetOrderFull loads everything a detail view needs.
func (r *OrderRepository) GetOrderFull(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.
		Preload("Table").
		Preload("Waiter").
		Preload("Details.MenuItem").
		Preload("Billing").
		First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// GetMenuItemForOrder loads the item plus its owning menu's status, which is
// all createOrder needs to validate availability.
func (r *OrderRepository) GetMenuItemForOrder(id uint) (*entity.MenuItem, error) {
	var it entity.MenuItem
	if err := r.DB.Preload("Menu").First(&it, id).Error; err != nil {
		return nil, err
	}
	return &it, nil
}

// OrderFilters are all optional.
type OrderFilters struct {
	Status    string
	StartDate *time.Time
	EndDate   *time.Time
	WaiterID  uint
}

func (r *OrderRepository) List(f OrderFilters) ([]entity.Order, error) {
	q := r.DB.
		Preload("Table").
		Preload("Waiter").
		Preload("Billing")

	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.StartDate != nil {
		q = q.Where("orders.created_at >= ?", *f.StartDate)
	}
	if f.EndDate != nil {
		q = q.Where("orders.created_at <= ?", *f.EndDate)
	}
	if f.WaiterID != 0 {
		q = q.Where("waiter_id = ?", f.WaiterID)
	}

	var orders []entity.Order
	err := q.Order("orders.created_at DESC").Find(&orders).Error
	return orders, err
}

// ListBetween returns all orders created inside the window, with billing.
func (r *OrderRepository) ListBetween(start, end time.Time) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.
		Preload("Billing").
		Where("created_at BETWEEN ? AND ?", start, end).
		Find(&orders).Error
	return orders, err
}

// ListServedByWaiterBetween feeds the duty metrics.
func (r *OrderRepository) ListServedByWaiterBetween(waiterID uint, start, end time.Time) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.
		Preload("Billing").
		Where("waiter_id = ? AND status = ? AND created_at BETWEEN ? AND ?",
			waiterID, entity.OrderStatusServed, start, end).
		Find(&orders).Error
	return orders, err
}
