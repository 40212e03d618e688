package services

import (
	"strings"
	"time"

	"github.com/mritunjaysukla/RMS/entity"
	"github.com/mritunjaysukla/RMS/pkg/apperr"
	"github.com/mritunjaysukla/RMS/repository"
	"github.com/mritunjaysukla/RMS/utils"

	"gorm.io/gorm"
)

// TaxRate is a design constant, not configuration.
const TaxRate = 0.13

// How many order numbers to try before giving up on a unique one.
const orderNumberAttempts = 3

// OrderService owns order placement and the Preparing → Served/Rejected
// lifecycle, including the billing snapshot and table occupancy.
type OrderService struct {
	DB        *gorm.DB
	Repo      *repository.OrderRepository
	TableRepo *repository.TableRepository
	Events    *EventBus
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	tableRepo *repository.TableRepository,
	events *EventBus,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, TableRepo: tableRepo, Events: events}
}

type OrderItemIn struct {
	MenuItemID uint `json:"menuItemId" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required,gt=0"`
}

type CreateOrderIn struct {
	TableID             uint          `json:"tableId" binding:"required"`
	Items               []OrderItemIn `json:"items" binding:"required"`
	SpecialInstructions string        `json:"specialInstructions"`
	Discount            float64       `json:"discount"`
}

type priceRow struct {
	menuItemID uint
	qty        int
	unitPrice  float64
	total      float64
}

// Create places an order. The order row, its line items, the billing
// snapshot and the table flip commit together or not at all.
func (s *OrderService) Create(waiterID uint, in CreateOrderIn) (*entity.Order, error) {
	if in.TableID == 0 || len(in.Items) == 0 {
		return nil, apperr.Validation("table id and items are required")
	}
	if in.Discount < 0 {
		return nil, apperr.Validation("discount cannot be negative")
	}
	for _, it := range in.Items {
		if it.Quantity <= 0 {
			return nil, apperr.Validation("item quantity must be positive")
		}
	}

	table, err := s.TableRepo.FindByID(in.TableID)
	if err == gorm.ErrRecordNotFound {
		return nil, apperr.NotFound("table not found")
	}
	if err != nil {
		return nil, apperr.Persistence(err)
	}
	if !table.IsAvailable {
		return nil, apperr.TableUnavailable("table %d is not available", table.TableNumber)
	}

	// price snapshot: unit prices are captured now and never follow later
	// menu edits
	rows := make([]priceRow, 0, len(in.Items))
	var subtotal float64
	for _, it := range in.Items {
		item, err := s.Repo.GetMenuItemForOrder(it.MenuItemID)
		if err == gorm.ErrRecordNotFound {
			return nil, apperr.ItemUnavailable("menu item %d is unavailable", it.MenuItemID)
		}
		if err != nil {
			return nil, apperr.Persistence(err)
		}
		if !item.IsAvailable || item.Menu.Status != entity.MenuStatusActive {
			return nil, apperr.ItemUnavailable("item %s is unavailable", item.Name)
		}
		total := utils.Round2(item.Price * float64(it.Quantity))
		rows = append(rows, priceRow{
			menuItemID: item.ID,
			qty:        it.Quantity,
			unitPrice:  item.Price,
			total:      total,
		})
		subtotal += total
	}
	subtotal = utils.Round2(subtotal)
	tax := utils.Round2(subtotal * TaxRate)
	if in.Discount > subtotal+tax {
		return nil, apperr.Validation("discount exceeds order total")
	}
	total := utils.Round2(subtotal + tax - in.Discount)

	var order *entity.Order
	for attempt := 1; ; attempt++ {
		order = &entity.Order{
			OrderNumber:         utils.NewOrderNumber(),
			Status:              entity.OrderStatusPreparing,
			SpecialInstructions: in.SpecialInstructions,
			Discount:            in.Discount,
			TableID:             in.TableID,
			WaiterID:            waiterID,
		}
		err = s.DB.Transaction(func(tx *gorm.DB) error {
			// conditional flip serializes concurrent orders on one table
			ok, err := s.TableRepo.Occupy(tx, in.TableID)
			if err != nil {
				return err
			}
			if !ok {
				return apperr.TableUnavailable("table %d is not available", table.TableNumber)
			}

			if err := s.Repo.CreateOrder(tx, order); err != nil {
				return err
			}
			for _, r := range rows {
				d := entity.OrderDetail{
					OrderID:    order.ID,
					MenuItemID: r.menuItemID,
					Quantity:   r.qty,
					UnitPrice:  r.unitPrice,
					TotalPrice: r.total,
				}
				if err := s.Repo.CreateDetail(tx, &d); err != nil {
					return err
				}
			}
			billing := entity.BillingDetail{
				OrderID:  order.ID,
				Subtotal: subtotal,
				Tax:      tax,
				Discount: in.Discount,
				Total:    total,
			}
			return s.Repo.CreateBilling(tx, &billing)
		})
		if err == nil {
			break
		}
		if isOrderNumberConflict(err) && attempt < orderNumberAttempts {
			continue // regenerate and retry
		}
		if apperr.KindOf(err) != apperr.KindPersistence {
			return nil, err
		}
		return nil, apperr.Persistence(err)
	}

	created, err := s.Repo.GetOrderFull(order.ID)
	if err != nil {
		return nil, apperr.Persistence(err)
	}
	s.Events.Publish(EventOrderCreated, map[string]any{
		"orderId":     created.ID,
		"orderNumber": created.OrderNumber,
		"tableId":     created.TableID,
	})
	return created, nil
}

// isOrderNumberConflict matches sqlite's unique-violation text
// ("UNIQUE constraint failed: orders.order_number"). Switching the driver
// means updating this check.
func isOrderNumberConflict(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "orders.order_number")
}

// UpdateStatus transitions an order. Served and Rejected are terminal;
// reaching either frees the table in the same transaction, so a table is
// never left occupied by a finished order.
func (s *OrderService) UpdateStatus(orderID uint, newStatus string) (*entity.Order, error) {
	switch newStatus {
	case entity.OrderStatusServed, entity.OrderStatusRejected:
	case entity.OrderStatusPreparing:
		return nil, apperr.InvalidState("order cannot return to Preparing")
	default:
		return nil, apperr.Validation("invalid status: %s", newStatus)
	}

	order, err := s.Repo.GetOrder(orderID)
	if err == gorm.ErrRecordNotFound {
		return nil, apperr.NotFound("order not found")
	}
	if err != nil {
		return nil, apperr.Persistence(err)
	}
	if order.Terminal() {
		return nil, apperr.InvalidState("order is already %s", order.Status)
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		ok, err := s.Repo.UpdateStatusGuard(tx, orderID, entity.OrderStatusPreparing, newStatus)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.InvalidState("order is no longer preparing")
		}
		return s.TableRepo.Release(tx, order.TableID)
	})
	if err != nil {
		if apperr.KindOf(err) != apperr.KindPersistence {
			return nil, err
		}
		return nil, apperr.Persistence(err)
	}

	updated, err := s.Repo.GetOrderFull(orderID)
	if err != nil {
		return nil, apperr.Persistence(err)
	}

	evType := EventOrderRejected
	if newStatus == entity.OrderStatusServed {
		evType = EventOrderServed
	}
	s.Events.Publish(evType, map[string]any{
		"orderId":     updated.ID,
		"orderNumber": updated.OrderNumber,
		"tableId":     updated.TableID,
	})
	return updated, nil
}

// OrderSummary is the list projection.
type OrderSummary struct {
	ID          uint      `json:"id"`
	OrderNumber string    `json:"orderNumber"`
	TableNumber int       `json:"tableNumber"`
	Status      string    `json:"status"`
	Total       float64   `json:"total"`
	Waiter      string    `json:"waiter"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (s *OrderService) List(f repository.OrderFilters) ([]OrderSummary, error) {
	orders, err := s.Repo.List(f)
	if err != nil {
		return nil, apperr.Persistence(err)
	}

	out := make([]OrderSummary, 0, len(orders))
	for _, o := range orders {
		sum := OrderSummary{
			ID:          o.ID,
			OrderNumber: o.OrderNumber,
			TableNumber: o.Table.TableNumber,
			Status:      o.Status,
			Waiter:      o.Waiter.Username,
			CreatedAt:   o.CreatedAt,
		}
		if o.Billing != nil {
			sum.Total = o.Billing.Total
		}
		out = append(out, sum)
	}
	return out, nil
}

type OrderLineOut struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Total    float64 `json:"total"`
}

type OrderDetailOut struct {
	OrderNumber         string         `json:"orderNumber"`
	TableNumber         int            `json:"tableNumber"`
	Status              string         `json:"status"`
	CreatedAt           time.Time      `json:"createdAt"`
	Waiter              string         `json:"waiter"`
	SpecialInstructions string         `json:"specialInstructions"`
	Items               []OrderLineOut `json:"items"`
	Subtotal            float64        `json:"subtotal"`
	Tax                 float64        `json:"tax"`
	Discount            float64        `json:"discount"`
	Total               float64        `json:"total"`
}

func (s *OrderService) Detail(orderID uint) (*OrderDetailOut, error) {
	o, err := s.Repo.GetOrderFull(orderID)
	if err == gorm.ErrRecordNotFound {
		return nil, apperr.NotFound("order not found")
	}
	if err != nil {
		return nil, apperr.Persistence(err)
	}

	items := make([]OrderLineOut, 0, len(o.Details))
	for _, d := range o.Details {
		items = append(items, OrderLineOut{
			Name:     d.MenuItem.Name,
			Quantity: d.Quantity,
			Price:    d.UnitPrice,
			Total:    d.TotalPrice,
		})
	}

	out := &OrderDetailOut{
		OrderNumber:         o.OrderNumber,
		TableNumber:         o.Table.TableNumber,
		Status:              o.Status,
		CreatedAt:           o.CreatedAt,
		Waiter:              o.Waiter.Username,
		SpecialInstructions: o.SpecialInstructions,
		Items:               items,
	}
	if o.Billing != nil {
		out.Subtotal = o.Billing.Subtotal
		out.Tax = o.Billing.Tax
		out.Discount = o.Billing.Discount
		out.Total = o.Billing.Total
	}
	return out, nil
}
