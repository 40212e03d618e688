package services

import (
	"fmt"
	"testing"

	"github.com/mritunjaysukla/RMS/configs"
	"github.com/mritunjaysukla/RMS/entity"
	"github.com/mritunjaysukla/RMS/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := configs.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := configs.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	t.Cleanup(func() { _ = configs.CloseDB(db) })
	return db
}

func createUser(t *testing.T, db *gorm.DB, username, role string) *entity.User {
	t.Helper()
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	u := &entity.User{
		Username: username,
		Password: string(hash),
		Role:     role,
		IsActive: true,
		Email:    username + "@test.local",
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return u
}

func createCategory(t *testing.T, db *gorm.DB, name string) *entity.FoodCategory {
	t.Helper()
	c := &entity.FoodCategory{Name: name}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("create category %s: %v", name, err)
	}
	return c
}

func createTable(t *testing.T, db *gorm.DB, number int) *entity.DiningTable {
	t.Helper()
	tab := &entity.DiningTable{TableNumber: number, IsAvailable: true}
	if err := db.Create(tab).Error; err != nil {
		t.Fatalf("create table %d: %v", number, err)
	}
	return tab
}

// createActiveMenu seeds an approved menu with one item per price given.
func createActiveMenu(t *testing.T, db *gorm.DB, creator *entity.User, cat *entity.FoodCategory, prices ...float64) *entity.Menu {
	t.Helper()
	m := &entity.Menu{
		Name:        "Lunch",
		Status:      entity.MenuStatusActive,
		IsApproved:  true,
		CategoryID:  cat.ID,
		CreatedByID: creator.ID,
	}
	if err := db.Create(m).Error; err != nil {
		t.Fatalf("create menu: %v", err)
	}
	for i, p := range prices {
		item := &entity.MenuItem{
			Name:        fmt.Sprintf("Item %d", i+1),
			Price:       p,
			IsAvailable: true,
			MenuID:      m.ID,
			CategoryID:  cat.ID,
		}
		if err := db.Create(item).Error; err != nil {
			t.Fatalf("create menu item: %v", err)
		}
		m.Items = append(m.Items, *item)
	}
	return m
}

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(db,
		repository.NewOrderRepository(db),
		repository.NewTableRepository(db),
		nil)
}

func countRows(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}
