package repository

import (
	"github.com/mritunjaysukla/RMS/entity"

	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func (r *MenuRepository) CreateMenu(tx *gorm.DB, m *entity.Menu) error {
	return tx.Create(m).Error
}

func (r *MenuRepository) CreateItem(tx *gorm.DB, it *entity.MenuItem) error {
	return tx.Create(it).Error
}

func (r *MenuRepository) FindByID(id uint) (*entity.Menu, error) {
	var m entity.Menu
	if err := r.DB.
		Preload("Items").
		Preload("Category").
		First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// MenuFilters are all optional; zero values mean "no filter".
type MenuFilters struct {
	Status     string
	CategoryID uint
	IsPopular  *bool
}

func (r *MenuRepository) List(f MenuFilters) ([]entity.Menu, error) {
	q := r.DB.
		Preload("Items").
		Preload("Category").
		Preload("CreatedBy").
		Preload("ApprovedBy")

	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
		// Active and approved are synonymous for filtering
		if f.Status == entity.MenuStatusActive {
			q = q.Where("is_approved = ?", true)
		}
	}
	if f.CategoryID != 0 {
		q = q.Where("category_id = ?", f.CategoryID)
	}
	if f.IsPopular != nil {
		q = q.Where("is_popular = ?", *f.IsPopular)
	}

	var menus []entity.Menu
	err := q.Order("id").Find(&menus).Error
	return menus, err
}

// UpdateStatusGuard flips the status only when the current status is one of
// from; returns rows affected so callers can detect illegal transitions.
func (r *MenuRepository) UpdateStatusGuard(id uint, from []string, updates map[string]any) (int64, error) {
	res := r.DB.Model(&entity.Menu{}).
		Where("id = ? AND status IN ?", id, from).
		Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *MenuRepository) UpdateFields(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Menu{}).Where("id = ?", id).Updates(updates).Error
}

// Delete removes the menu and its items in one transaction.
func (r *MenuRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("menu_id = ?", id).Delete(&entity.MenuItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Menu{}, id).Error
	})
}

func (r *MenuRepository) Exists(id uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.Menu{}).Where("id = ?", id).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}
