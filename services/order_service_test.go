package services

import (
	"testing"

	"github.com/mritunjaysukla/RMS/entity"
	"github.com/mritunjaysukla/RMS/pkg/apperr"
	"github.com/mritunjaysukla/RMS/repository"
)

func TestCreateOrder_BillingArithmetic(t *testing.T) {
	db := newTestDB(t)
	waiter := createUser(t, db, "waiter1", entity.RoleWaiter)
	manager := createUser(t, db, "manager1", entity.RoleManager)
	cat := createCategory(t, db, "Mains")
	menu := createActiveMenu(t, db, manager, cat, 10.00)
	table := createTable(t, db, 1)
	svc := newOrderService(db)

	order, err := svc.Create(waiter.ID, CreateOrderIn{
		TableID: table.ID,
		Items:   []OrderItemIn{{MenuItemID: menu.Items[0].ID, Quantity: 2}},
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	if order.Billing == nil {
		t.Fatal("expected billing details")
	}
	if got := order.Billing.Subtotal; got != 20.00 {
		t.Errorf("subtotal = %v, want 20.00", got)
	}
	if got := order.Billing.Tax; got != 2.60 {
		t.Errorf("tax = %v, want 2.60", got)
	}
	if got := order.Billing.Total; got != 22.60 {
		t.Errorf("total = %v, want 22.60", got)
	}
	if order.Status != entity.OrderStatusPreparing {
		t.Errorf("status = %s, want Preparing", order.Status)
	}
	if order.OrderNumber == "" {
		t.Error("expected an order number")
	}

	var tab entity.DiningTable
	if err := db.First(&tab, table.ID).Error; err != nil {
		t.Fatal(err)
	}
	if tab.IsAvailable {
		t.Error("table should be occupied after order creation")
	}
}

func TestCreateOrder_DiscountApplied(t *testing.T) {
	db := newTestDB(t)
	waiter := createUser(t, db, "waiter1", entity.RoleWaiter)
	manager := createUser(t, db, "manager1", entity.RoleManager)
	cat := createCategory(t, db, "Mains")
	menu := createActiveMenu(t, db, manager, cat, 15.50)
	table := createTable(t, db, 1)
	svc := newOrderService(db)

	order, err := svc.Create(waiter.ID, CreateOrderIn{
		TableID:  table.ID,
		Items:    []OrderItemIn{{MenuItemID: menu.Items[0].ID, Quantity: 2}},
		Discount: 5.00,
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	// 31.00 + 4.03 - 5.00
	if got := order.Billing.Tax; got != 4.03 {
		t.Errorf("tax = %v, want 4.03", got)
	}
	if got := order.Billing.Total; got != 30.03 {
		t.Errorf("total = %v, want 30.03", got)
	}
}

func TestCreateOrder_Validation(t *testing.T) {
	db := newTestDB(t)
	waiter := createUser(t, db, "waiter1", entity.RoleWaiter)
	manager := createUser(t, db, "manager1", entity.RoleManager)
	cat := createCategory(t, db, "Mains")
	menu := createActiveMenu(t, db, manager, cat, 10.00)
	table := createTable(t, db, 1)
	svc := newOrderService(db)

	tests := []struct {
		name string
		in   CreateOrderIn
		kind apperr.Kind
	}{
		{
			name: "missing table",
			in:   CreateOrderIn{Items: []OrderItemIn{{MenuItemID: menu.Items[0].ID, Quantity: 1}}},
			kind: apperr.KindValidation,
		},
		{
			name: "empty items",
			in:   CreateOrderIn{TableID: table.ID},
			kind: apperr.KindValidation,
		},
		{
			name: "zero quantity",
			in: CreateOrderIn{
				TableID: table.ID,
				Items:   []OrderItemIn{{MenuItemID: menu.Items[0].ID, Quantity: 0}},
			},
			kind: apperr.KindValidation,
		},
		{
			name: "negative discount",
			in: CreateOrderIn{
				TableID:  table.ID,
				Items:    []OrderItemIn{{MenuItemID: menu.Items[0].ID, Quantity: 1}},
				Discount: -1,
			},
			kind: apperr.KindValidation,
		},
		{
			name: "discount exceeds total",
			in: CreateOrderIn{
				TableID:  table.ID,
				Items:    []OrderItemIn{{MenuItemID: menu.Items[0].ID, Quantity: 1}},
				Discount: 100,
			},
			kind: apperr.KindValidation,
		},
		{
			name: "unknown table",
			in: CreateOrderIn{
				TableID: 999,
				Items:   []OrderItemIn{{MenuItemID: menu.Items[0].ID, Quantity: 1}},
			},
			kind: apperr.KindNotFound,
		},
		{
			name: "unknown menu item",
			in: CreateOrderIn{
				TableID: table.ID,
				Items:   []OrderItemIn{{MenuItemID: 999, Quantity: 1}},
			},
			kind: apperr.KindItemUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(waiter.ID, tt.in)
			if err == nil {
				t.Fatal("expected error")
			}
			if got := apperr.KindOf(err); got != tt.kind {
				t.Errorf("kind = %v, want %v (err: %v)", got, tt.kind, err)
			}
		})
	}
}

func TestCreateOrder_Atomicity(t *testing.T) {
	db := newTestDB(t)
	waiter := createUser(t, db, "waiter1", entity.RoleWaiter)
	manager := createUser(t, db, "manager1", entity.RoleManager)
	cat := createCategory(t, db, "Mains")
	menu := createActiveMenu(t, db, manager, cat, 10.00)
	table := createTable(t, db, 1)
	svc := newOrderService(db)

	// one valid item plus one that is switched off
	off := entity.MenuItem{
		Name: "Off", Price: 5, IsAvailable: false,
		MenuID: menu.ID, CategoryID: cat.ID,
	}
	if err := db.Create(&off).Error; err != nil {
		t.Fatal(err)
	}

	_, err := svc.Create(waiter.ID, CreateOrderIn{
		TableID: table.ID,
		Items: []OrderItemIn{
			{MenuItemID: menu.Items[0].ID, Quantity: 1},
			{MenuItemID: off.ID, Quantity: 1},
		},
	})
	if !apperr.IsKind(err, apperr.KindItemUnavailable) {
		t.Fatalf("expected ItemUnavailable, got %v", err)
	}

	if n := countRows(t, db, &entity.Order{}); n != 0 {
		t.Errorf("orders = %d, want 0", n)
	}
	if n := countRows(t, db, &entity.OrderDetail{}); n != 0 {
		t.Errorf("order details = %d, want 0", n)
	}
	if n := countRows(t, db, &entity.BillingDetail{}); n != 0 {
		t.Errorf("billing details = %d, want 0", n)
	}

	var tab entity.DiningTable
	if err := db.First(&tab, table.ID).Error; err != nil {
		t.Fatal(err)
	}
	if !tab.IsAvailable {
		t.Error("failed order must leave the table available")
	}
}

func TestCreateOrder_InactiveMenu(t *testing.T) {
	db := newTestDB(t)
	waiter := createUser(t, db, "waiter1", entity.RoleWaiter)
	manager := createUser(t, db, "manager1", entity.RoleManager)
	cat := createCategory(t, db, "Mains")
	table := createTable(t, db, 1)
	svc := newOrderService(db)

	pending := createActiveMenu(t, db, manager, cat, 8.00)
	if err := db.Model(&entity.Menu{}).Where("id = ?", pending.ID).
		Updates(map[string]any{"status": entity.MenuStatusPending, "is_approved": false}).Error; err != nil {
		t.Fatal(err)
	}

	_, err := svc.Create(waiter.ID, CreateOrderIn{
		TableID: table.ID,
		Items:   []OrderItemIn{{MenuItemID: pending.Items[0].ID, Quantity: 1}},
	})
	if !apperr.IsKind(err, apperr.KindItemUnavailable) {
		t.Fatalf("expected ItemUnavailable for pending menu, got %v", err)
	}
}

func TestCreateOrder_TableDoubleBooking(t *testing.T) {
	db := newTestDB(t)
	waiter := createUser(t, db, "waiter1", entity.RoleWaiter)
	manager := createUser(t, db, "manager1", entity.RoleManager)
	cat := createCategory(t, db, "Mains")
	menu := createActiveMenu(t, db, manager, cat, 10.00)
	table := createTable(t, db, 1)
	svc := newOrderService(db)

	in := CreateOrderIn{
		TableID: table.ID,
		Items:   []OrderItemIn{{MenuItemID: menu.Items[0].ID, Quantity: 1}},
	}
	if _, err := svc.Create(waiter.ID, in); err != nil {
		t.Fatalf("first order: %v", err)
	}
	_, err := svc.Create(waiter.ID, in)
	if !apperr.IsKind(err, apperr.KindTableUnavailable) {
		t.Fatalf("expected TableUnavailable on occupied table, got %v", err)
	}
}

func TestPriceSnapshotImmutability(t *testing.T) {
	db := newTestDB(t)
	waiter := createUser(t, db, "waiter1", entity.RoleWaiter)
	manager := createUser(t, db, "manager1", entity.RoleManager)
	cat := createCategory(t, db, "Mains")
	menu := createActiveMenu(t, db, manager, cat, 10.00)
	table := createTable(t, db, 1)
	svc := newOrderService(db)

	order, err := svc.Create(waiter.ID, CreateOrderIn{
		TableID: table.ID,
		Items:   []OrderItemIn{{MenuItemID: menu.Items[0].ID, Quantity: 2}},
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	// raise the menu price after the fact
	if err := db.Model(&entity.MenuItem{}).
		Where("id = ?", menu.Items[0].ID).
		Update("price", 99.99).Error; err != nil {
		t.Fatal(err)
	}

	var detail entity.OrderDetail
	if err := db.Where("order_id = ?", order.ID).First(&detail).Error; err != nil {
		t.Fatal(err)
	}
	if detail.UnitPrice != 10.00 {
		t.Errorf("unit price = %v, want the 10.00 snapshot", detail.UnitPrice)
	}

	var billing entity.BillingDetail
	if err := db.Where("order_id = ?", order.ID).First(&billing).Error; err != nil {
		t.Fatal(err)
	}
	if billing.Total != 22.60 {
		t.Errorf("total = %v, want 22.60 unchanged", billing.Total)
	}
}

func TestUpdateOrderStatus(t *testing.T) {
	db := newTestDB(t)
	waiter := createUser(t, db, "waiter1", entity.RoleWaiter)
	manager := createUser(t, db, "manager1", entity.RoleManager)
	cat := createCategory(t, db, "Mains")
	menu := createActiveMenu(t, db, manager, cat, 10.00)
	table := createTable(t, db, 1)
	svc := newOrderService(db)

	order, err := svc.Create(waiter.ID, CreateOrderIn{
		TableID: table.ID,
		Items:   []OrderItemIn{{MenuItemID: menu.Items[0].ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	updated, err := svc.UpdateStatus(order.ID, entity.OrderStatusServed)
	if err != nil {
		t.Fatalf("serve order: %v", err)
	}
	if updated.Status != entity.OrderStatusServed {
		t.Errorf("status = %s, want Served", updated.Status)
	}

	var tab entity.DiningTable
	if err := db.First(&tab, table.ID).Error; err != nil {
		t.Fatal(err)
	}
	if !tab.IsAvailable {
		t.Error("serving the order must free the table")
	}

	// Served is terminal
	if _, err := svc.UpdateStatus(order.ID, entity.OrderStatusRejected); !apperr.IsKind(err, apperr.KindInvalidState) {
		t.Errorf("expected InvalidState on terminal order, got %v", err)
	}
	if _, err := svc.UpdateStatus(order.ID, entity.OrderStatusPreparing); !apperr.IsKind(err, apperr.KindInvalidState) {
		t.Errorf("expected InvalidState returning to Preparing, got %v", err)
	}
	if _, err := svc.UpdateStatus(order.ID, "Burnt"); !apperr.IsKind(err, apperr.KindValidation) {
		t.Errorf("expected Validation for unknown status, got %v", err)
	}
	if _, err := svc.UpdateStatus(999, entity.OrderStatusServed); !apperr.IsKind(err, apperr.KindNotFound) {
		t.Errorf("expected NotFound for unknown order, got %v", err)
	}
}

func TestOrderListAndDetail(t *testing.T) {
	db := newTestDB(t)
	waiter := createUser(t, db, "waiter1", entity.RoleWaiter)
	manager := createUser(t, db, "manager1", entity.RoleManager)
	cat := createCategory(t, db, "Mains")
	menu := createActiveMenu(t, db, manager, cat, 12.00)
	table := createTable(t, db, 4)
	svc := newOrderService(db)

	order, err := svc.Create(waiter.ID, CreateOrderIn{
		TableID:             table.ID,
		Items:               []OrderItemIn{{MenuItemID: menu.Items[0].ID, Quantity: 3}},
		SpecialInstructions: "no onions",
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	list, err := svc.List(repository.OrderFilters{WaiterID: waiter.ID})
	if err != nil {
		t.Fatalf("list orders: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("len(list) = %d, want 1", len(list))
	}
	if list[0].TableNumber != 4 || list[0].Waiter != "waiter1" {
		t.Errorf("summary = %+v, want table 4 / waiter1", list[0])
	}

	detail, err := svc.Detail(order.ID)
	if err != nil {
		t.Fatalf("order detail: %v", err)
	}
	if detail.SpecialInstructions != "no onions" {
		t.Errorf("instructions = %q", detail.SpecialInstructions)
	}
	if len(detail.Items) != 1 || detail.Items[0].Total != 36.00 {
		t.Errorf("items = %+v, want one line of 36.00", detail.Items)
	}
}
