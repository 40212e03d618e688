package repository

import (
	"github.com/mritunjaysukla/RMS/entity"

	"gorm.io/gorm"
)

type ReportRepository struct {
	DB *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{DB: db}
}

// Create persists the report and its order associations together. Omit
// keeps the associated order rows untouched; only report_orders joins are
// written.
func (r *ReportRepository) Create(report *entity.Report) error {
	return r.DB.Omit("Orders.*").Create(report).Error
}

func (r *ReportRepository) FindByID(id uint) (*entity.Report, error) {
	var rep entity.Report
	if err := r.DB.
		Preload("Manager").
		Preload("SubmittedTo").
		Preload("Orders.Table").
		Preload("Orders.Billing").
		Preload("Orders.Details.MenuItem").
		First(&rep, id).Error; err != nil {
		return nil, err
	}
	return &rep, nil
}

func (r *ReportRepository) List() ([]entity.Report, error) {
	var reps []entity.Report
	err := r.DB.Preload("Manager").Preload("SubmittedTo").
		Order("id DESC").Find(&reps).Error
	return reps, err
}
