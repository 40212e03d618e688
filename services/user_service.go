package services

import (
	"fmt"
	"log"

	"github.com/mritunjaysukla/RMS/entity"
	"github.com/mritunjaysukla/RMS/pkg/apperr"
	"github.com/mritunjaysukla/RMS/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService is the admin-facing user CRUD. Mutations are audited.
type UserService struct {
	userRepo  *repository.UserRepository
	staffRepo *repository.StaffRepository
	auditRepo *repository.AuditRepository
	DB        *gorm.DB
}

func NewUserService(
	db *gorm.DB,
	userRepo *repository.UserRepository,
	staffRepo *repository.StaffRepository,
	auditRepo *repository.AuditRepository,
) *UserService {
	return &UserService{DB: db, userRepo: userRepo, staffRepo: staffRepo, auditRepo: auditRepo}
}

// audit failures are logged, never fatal to the main operation
func (s *UserService) audit(adminID uint, action, details string) {
	if err := s.auditRepo.Log(adminID, action, details); err != nil {
		log.Printf("audit log failed: %v", err)
	}
}

func (s *UserService) List() ([]entity.User, error) {
	users, err := s.userRepo.List()
	if err != nil {
		return nil, apperr.Persistence(err)
	}
	return users, nil
}

func (s *UserService) Get(id uint) (*entity.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err == gorm.ErrRecordNotFound {
		return nil, apperr.NotFound("user not found")
	}
	if err != nil {
		return nil, apperr.Persistence(err)
	}
	return user, nil
}

type UserUpdateIn struct {
	Username *string
	Password *string
	Role     *string
	IsActive *bool
	Contact  *string
	Email    *string
	Gender   *string
}

func (s *UserService) Update(actingAdminID, id uint, in UserUpdateIn) (*entity.User, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if in.Username != nil {
		updates["username"] = *in.Username
	}
	if in.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, apperr.Persistence(err)
		}
		updates["password"] = string(hashed)
	}
	if in.Role != nil {
		if !validRole(*in.Role) {
			return nil, apperr.Validation("invalid role: %s", *in.Role)
		}
		updates["role"] = *in.Role
	}
	if in.IsActive != nil {
		updates["is_active"] = *in.IsActive
	}
	if in.Contact != nil {
		updates["contact"] = *in.Contact
	}
	if in.Email != nil {
		updates["email"] = *in.Email
	}
	if in.Gender != nil {
		updates["gender"] = *in.Gender
	}
	if len(updates) == 0 {
		return nil, apperr.Validation("nothing to update")
	}

	if err := s.userRepo.Update(id, updates); err != nil {
		return nil, apperr.Persistence(err)
	}
	s.audit(actingAdminID, "UPDATE_USER", fmt.Sprintf("updated user %d", id))
	return s.Get(id)
}

// Delete hard-deletes the user and their duty sessions.
func (s *UserService) Delete(actingAdminID, id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.staffRepo.DeleteByUser(tx, id); err != nil {
			return err
		}
		return s.userRepo.Delete(tx, id)
	})
	if err != nil {
		return apperr.Persistence(err)
	}
	s.audit(actingAdminID, "DELETE_USER", fmt.Sprintf("deleted user %d", id))
	return nil
}
