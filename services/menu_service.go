package services

import (
	"github.com/mritunjaysukla/RMS/entity"
	"github.com/mritunjaysukla/RMS/pkg/apperr"
	"github.com/mritunjaysukla/RMS/repository"

	"gorm.io/gorm"
)

// MenuService owns menu creation and the Pending → Active/Rejected
// approval state machine.
type MenuService struct {
	DB      *gorm.DB
	Repo    *repository.MenuRepository
	CatRepo *repository.CategoryRepository
	Events  *EventBus
}

func NewMenuService(
	db *gorm.DB,
	repo *repository.MenuRepository,
	catRepo *repository.CategoryRepository,
	events *EventBus,
) *MenuService {
	return &MenuService{DB: db, Repo: repo, CatRepo: catRepo, Events: events}
}

type MenuItemIn struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	CategoryID  uint    `json:"categoryId" binding:"required"`
	IsAvailable *bool   `json:"isAvailable"`
	IsPopular   bool    `json:"isPopular"`
}

type CreateMenuIn struct {
	Name       string       `json:"name"`
	CategoryID uint         `json:"categoryId" binding:"required"`
	Items      []MenuItemIn `json:"items" binding:"required"`
}

// CreateWithItems creates the menu in Pending plus all its items as one
// all-or-nothing unit; a menu is never visible without its item set.
func (s *MenuService) CreateWithItems(actorID uint, in CreateMenuIn) (*entity.Menu, error) {
	if in.CategoryID == 0 {
		return nil, apperr.Validation("category id is required")
	}
	if len(in.Items) == 0 {
		return nil, apperr.Validation("at least one menu item is required")
	}

	// every referenced category must exist before anything is written
	ids := map[uint]struct{}{in.CategoryID: {}}
	for _, it := range in.Items {
		if it.CategoryID == 0 {
			return nil, apperr.Validation("item %q is missing a category id", it.Name)
		}
		ids[it.CategoryID] = struct{}{}
	}
	distinct := make([]uint, 0, len(ids))
	for id := range ids {
		distinct = append(distinct, id)
	}
	count, err := s.CatRepo.CountByIDs(distinct)
	if err != nil {
		return nil, apperr.Persistence(err)
	}
	if count != int64(len(distinct)) {
		return nil, apperr.Validation("referenced category does not exist")
	}

	menu := &entity.Menu{
		Name:        in.Name,
		Status:      entity.MenuStatusPending,
		IsApproved:  false,
		CategoryID:  in.CategoryID,
		CreatedByID: actorID,
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateMenu(tx, menu); err != nil {
			return err
		}
		for _, it := range in.Items {
			available := true
			if it.IsAvailable != nil {
				available = *it.IsAvailable
			}
			item := entity.MenuItem{
				Name:        it.Name,
				Price:       it.Price,
				IsAvailable: available,
				IsPopular:   it.IsPopular,
				MenuID:      menu.ID,
				CategoryID:  it.CategoryID,
			}
			if err := s.Repo.CreateItem(tx, &item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, apperr.Persistence(err)
	}

	created, err := s.Repo.FindByID(menu.ID)
	if err != nil {
		return nil, apperr.Persistence(err)
	}
	return created, nil
}

func (s *MenuService) List(f repository.MenuFilters) ([]entity.Menu, error) {
	if f.Status != "" {
		switch f.Status {
		case entity.MenuStatusPending, entity.MenuStatusActive, entity.MenuStatusRejected:
		default:
			return nil, apperr.Validation("invalid status filter: %s", f.Status)
		}
	}
	menus, err := s.Repo.List(f)
	if err != nil {
		return nil, apperr.Persistence(err)
	}
	return menus, nil
}

func (s *MenuService) Get(id uint) (*entity.Menu, error) {
	menu, err := s.Repo.FindByID(id)
	if err == gorm.ErrRecordNotFound {
		return nil, apperr.NotFound("menu not found")
	}
	if err != nil {
		return nil, apperr.Persistence(err)
	}
	return menu, nil
}

// UpdateStatus runs the approval transition. Targets are Active or Rejected
// only, and only menus currently Pending or Rejected may move; an Active
// menu cannot be re-approved through this path.
func (s *MenuService) UpdateStatus(menuID uint, newStatus string, actingAdminID uint) (*entity.Menu, error) {
	if newStatus != entity.MenuStatusActive && newStatus != entity.MenuStatusRejected {
		return nil, apperr.Validation("status must be Active or Rejected")
	}
	if _, err := s.Get(menuID); err != nil {
		return nil, err
	}

	updates := map[string]any{
		"status":         newStatus,
		"is_approved":    newStatus == entity.MenuStatusActive,
		"approved_by_id": actingAdminID,
	}
	affected, err := s.Repo.UpdateStatusGuard(menuID,
		[]string{entity.MenuStatusPending, entity.MenuStatusRejected}, updates)
	if err != nil {
		return nil, apperr.Persistence(err)
	}
	if affected == 0 {
		return nil, apperr.InvalidState("menu is already active")
	}

	menu, err := s.Get(menuID)
	if err != nil {
		return nil, err
	}

	evType := EventMenuRejected
	if newStatus == entity.MenuStatusActive {
		evType = EventMenuApproved
	}
	s.Events.Publish(evType, map[string]any{
		"menuId": menu.ID,
		"name":   menu.Name,
		"status": menu.Status,
	})
	return menu, nil
}

type MenuUpdateIn struct {
	Name       *string `json:"name"`
	CategoryID *uint   `json:"categoryId"`
	IsPopular  *bool   `json:"isPopular"`
}

// Update patches non-status fields; approval state is untouched.
func (s *MenuService) Update(menuID uint, in MenuUpdateIn) (*entity.Menu, error) {
	if _, err := s.Get(menuID); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if in.Name != nil {
		updates["name"] = *in.Name
	}
	if in.CategoryID != nil {
		ok, err := s.CatRepo.Exists(*in.CategoryID)
		if err != nil {
			return nil, apperr.Persistence(err)
		}
		if !ok {
			return nil, apperr.Validation("referenced category does not exist")
		}
		updates["category_id"] = *in.CategoryID
	}
	if in.IsPopular != nil {
		updates["is_popular"] = *in.IsPopular
	}
	if len(updates) == 0 {
		return nil, apperr.Validation("nothing to update")
	}

	if err := s.Repo.UpdateFields(menuID, updates); err != nil {
		return nil, apperr.Persistence(err)
	}
	return s.Get(menuID)
}

func (s *MenuService) Delete(menuID uint) error {
	if _, err := s.Get(menuID); err != nil {
		return err
	}
	if err := s.Repo.Delete(menuID); err != nil {
		return apperr.Persistence(err)
	}
	return nil
}
