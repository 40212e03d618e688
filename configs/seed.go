package configs

import (
	"log"

	"github.com/mritunjaysukla/RMS/entity"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdmin creates the first admin account from env, once.
func SeedAdmin(db *gorm.DB, cfg *Config) error {
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		log.Println("skip seeding admin: missing ADMIN_USERNAME/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	if err := db.Model(&entity.User{}).
		Where("username = ?", cfg.AdminUsername).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("admin already exists:", cfg.AdminUsername)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Username: cfg.AdminUsername,
		Password: string(hash),
		Email:    cfg.AdminEmail,
		Role:     entity.RoleAdmin,
		IsActive: true,
	}
	return db.Create(&admin).Error
}

// SeedTables ensures dining tables 1..n exist.
func SeedTables(db *gorm.DB, n int) error {
	for i := 1; i <= n; i++ {
		t := entity.DiningTable{TableNumber: i, IsAvailable: true}
		if err := db.Where(entity.DiningTable{TableNumber: i}).
			FirstOrCreate(&t).Error; err != nil {
			return err
		}
	}
	return nil
}
