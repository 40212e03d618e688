package services

import (
	"strings"

	"github.com/mritunjaysukla/RMS/entity"
	"github.com/mritunjaysukla/RMS/pkg/apperr"
	"github.com/mritunjaysukla/RMS/repository"

	"gorm.io/gorm"
)

type CategoryService struct {
	repo *repository.CategoryRepository
}

func NewCategoryService(repo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) Create(name string) (*entity.FoodCategory, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.Validation("category name is required")
	}

	count, err := s.repo.CountByName(name)
	if err != nil {
		return nil, apperr.Persistence(err)
	}
	if count > 0 {
		return nil, apperr.Validation("category already exists")
	}

	cat := &entity.FoodCategory{Name: name}
	if err := s.repo.Create(cat); err != nil {
		return nil, apperr.Persistence(err)
	}
	return cat, nil
}

func (s *CategoryService) List() ([]entity.FoodCategory, error) {
	cats, err := s.repo.List()
	if err != nil {
		return nil, apperr.Persistence(err)
	}
	return cats, nil
}

func (s *CategoryService) Update(id uint, name string) (*entity.FoodCategory, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.Validation("category name is required")
	}

	if _, err := s.repo.FindByID(id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperr.NotFound("category not found")
		}
		return nil, apperr.Persistence(err)
	}

	if err := s.repo.Update(id, map[string]any{"name": name}); err != nil {
		return nil, apperr.Persistence(err)
	}
	cat, err := s.repo.FindByID(id)
	if err != nil {
		return nil, apperr.Persistence(err)
	}
	return cat, nil
}

func (s *CategoryService) Delete(id uint) error {
	if _, err := s.repo.FindByID(id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperr.NotFound("category not found")
		}
		return apperr.Persistence(err)
	}
	if err := s.repo.Delete(id); err != nil {
		return apperr.Persistence(err)
	}
	return nil
}
