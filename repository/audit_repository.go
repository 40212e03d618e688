package repository

import (
	"github.com/mritunjaysukla/RMS/entity"

	"gorm.io/gorm"
)

type AuditRepository struct {
	DB *gorm.DB
}

func NewAuditRepository(db *gorm.DB) *AuditRepository {
	return &AuditRepository{DB: db}
}

func (r *AuditRepository) Log(adminID uint, action, details string) error {
	return r.DB.Create(&entity.Audit{
		AdminID: adminID,
		Action:  action,
		Details: details,
	}).Error
}

func (r *AuditRepository) List() ([]entity.Audit, error) {
	var rows []entity.Audit
	err := r.DB.Order("id DESC").Find(&rows).Error
	return rows, err
}
