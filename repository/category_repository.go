package repository

import (
	"github.com/mritunjaysukla/RMS/entity"

	"gorm.io/gorm"
)

type CategoryRepository struct {
	DB *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

func (r *CategoryRepository) Create(cat *entity.FoodCategory) error {
	return r.DB.Create(cat).Error
}

func (r *CategoryRepository) FindByID(id uint) (*entity.FoodCategory, error) {
	var cat entity.FoodCategory
	if err := r.DB.First(&cat, id).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *CategoryRepository) List() ([]entity.FoodCategory, error) {
	var cats []entity.FoodCategory
	err := r.DB.Order("name").Find(&cats).Error
	return cats, err
}

func (r *CategoryRepository) Exists(id uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.FoodCategory{}).Where("id = ?", id).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// CountByIDs counts how many of the given ids reference existing categories.
func (r *CategoryRepository) CountByIDs(ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var cnt int64
	err := r.DB.Model(&entity.FoodCategory{}).Where("id IN ?", ids).Count(&cnt).Error
	return cnt, err
}

func (r *CategoryRepository) CountByName(name string) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.FoodCategory{}).Where("name = ?", name).Count(&cnt).Error
	return cnt, err
}

func (r *CategoryRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.FoodCategory{}).Where("id = ?", id).Updates(updates).Error
}

func (r *CategoryRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.FoodCategory{}, id).Error
}
