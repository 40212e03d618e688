package configs

import (
	"testing"

	"github.com/mritunjaysukla/RMS/entity"

	"gorm.io/gorm"
)

func openMigrated(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = CloseDB(db) })
	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestMigrateFullSchema(t *testing.T) {
	db := openMigrated(t)

	// the category back-references must resolve to CategoryID
	cat := entity.FoodCategory{Name: "Mains"}
	if err := db.Create(&cat).Error; err != nil {
		t.Fatal(err)
	}
	menu := entity.Menu{Name: "Lunch", Status: entity.MenuStatusPending, CategoryID: cat.ID}
	if err := db.Create(&menu).Error; err != nil {
		t.Fatal(err)
	}

	var got entity.FoodCategory
	if err := db.Preload("Menus").First(&got, cat.ID).Error; err != nil {
		t.Fatalf("preload menus: %v", err)
	}
	if len(got.Menus) != 1 || got.Menus[0].ID != menu.ID {
		t.Errorf("category menus = %+v, want the created menu", got.Menus)
	}
}

// Boolean columns must store an explicit false as false.
func TestExplicitFalseBooleansPersist(t *testing.T) {
	db := openMigrated(t)

	cat := entity.FoodCategory{Name: "Mains"}
	if err := db.Create(&cat).Error; err != nil {
		t.Fatal(err)
	}
	menu := entity.Menu{Status: entity.MenuStatusPending, CategoryID: cat.ID}
	if err := db.Create(&menu).Error; err != nil {
		t.Fatal(err)
	}

	item := entity.MenuItem{
		Name: "Off", Price: 5, IsAvailable: false,
		MenuID: menu.ID, CategoryID: cat.ID,
	}
	if err := db.Create(&item).Error; err != nil {
		t.Fatal(err)
	}
	var gotItem entity.MenuItem
	if err := db.First(&gotItem, item.ID).Error; err != nil {
		t.Fatal(err)
	}
	if gotItem.IsAvailable {
		t.Error("menu item stored as available despite explicit false")
	}

	table := entity.DiningTable{TableNumber: 1, IsAvailable: false}
	if err := db.Create(&table).Error; err != nil {
		t.Fatal(err)
	}
	var gotTable entity.DiningTable
	if err := db.First(&gotTable, table.ID).Error; err != nil {
		t.Fatal(err)
	}
	if gotTable.IsAvailable {
		t.Error("table stored as available despite explicit false")
	}

	user := entity.User{Username: "inactive1", Email: "i1@x.com", IsActive: false}
	if err := db.Create(&user).Error; err != nil {
		t.Fatal(err)
	}
	var gotUser entity.User
	if err := db.First(&gotUser, user.ID).Error; err != nil {
		t.Fatal(err)
	}
	if gotUser.IsActive {
		t.Error("user stored as active despite explicit false")
	}
}
