package repository

import (
	"time"

	"github.com/mritunjaysukla/RMS/entity"

	"gorm.io/gorm"
)

type ResetRepository struct {
	DB *gorm.DB
}

func NewResetRepository(db *gorm.DB) *ResetRepository {
	return &ResetRepository{DB: db}
}

func (r *ResetRepository) Create(pr *entity.PasswordReset) error {
	return r.DB.Create(pr).Error
}

// FindValid returns the reset row for code if it is unused and unexpired.
func (r *ResetRepository) FindValid(code string, now time.Time) (*entity.PasswordReset, error) {
	var pr entity.PasswordReset
	err := r.DB.
		Where("code = ? AND used = ? AND expires_at > ?", code, false, now).
		First(&pr).Error
	if err != nil {
		return nil, err
	}
	return &pr, nil
}

func (r *ResetRepository) MarkUsed(tx *gorm.DB, id uint) error {
	return tx.Model(&entity.PasswordReset{}).
		Where("id = ?", id).
		Update("used", true).Error
}
