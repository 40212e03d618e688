package repository

import (
	"github.com/mritunjaysukla/RMS/entity"

	"gorm.io/gorm"
)

type TableRepository struct {
	DB *gorm.DB
}

func NewTableRepository(db *gorm.DB) *TableRepository {
	return &TableRepository{DB: db}
}

func (r *TableRepository) Create(t *entity.DiningTable) error {
	return r.DB.Create(t).Error
}

func (r *TableRepository) FindByID(id uint) (*entity.DiningTable, error) {
	var t entity.DiningTable
	if err := r.DB.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TableRepository) List() ([]entity.DiningTable, error) {
	var tables []entity.DiningTable
	err := r.DB.Order("table_number").Find(&tables).Error
	return tables, err
}

// Occupy flips is_available true→false in one conditional update. Zero rows
// affected means the table was already taken; two concurrent orders can
// never both win.
func (r *TableRepository) Occupy(tx *gorm.DB, id uint) (bool, error) {
	res := tx.Model(&entity.DiningTable{}).
		Where("id = ? AND is_available = ?", id, true).
		Update("is_available", false)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// Release marks the table free again.
func (r *TableRepository) Release(tx *gorm.DB, id uint) error {
	return tx.Model(&entity.DiningTable{}).
		Where("id = ?", id).
		Update("is_available", true).Error
}

func (r *TableRepository) Exists(id uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.DiningTable{}).Where("id = ?", id).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *TableRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.DiningTable{}, id).Error
}
