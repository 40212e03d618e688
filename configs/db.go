package configs

import (
	"fmt"

	"github.com/mritunjaysukla/RMS/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenDB opens the database handle. The handle is passed explicitly into
// repositories and closed at shutdown; there is no package-level client.
func OpenDB(source string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// serialize writers; sqlite holds a single write lock anyway
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	return db, nil
}

func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Migrate the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.FoodCategory{},
		&entity.Menu{}, &entity.MenuItem{},
		&entity.DiningTable{},
		&entity.Order{}, &entity.OrderDetail{}, &entity.BillingDetail{},
		&entity.Report{},
		&entity.StaffOnDuty{},
		&entity.PasswordReset{},
		&entity.Audit{},
	)
}
