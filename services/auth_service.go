package services

import (
	"strings"
	"time"

	"github.com/mritunjaysukla/RMS/entity"
	"github.com/mritunjaysukla/RMS/pkg/apperr"
	"github.com/mritunjaysukla/RMS/repository"
	"github.com/mritunjaysukla/RMS/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService handles registration, login/logout and password resets.
// Logging in as Waiter or Manager opens a duty session; logging out closes
// it.
type AuthService struct {
	userRepo  *repository.UserRepository
	staffRepo *repository.StaffRepository
	resetRepo *repository.ResetRepository
	mailer    Mailer

	jwtSecret string
	jwtTTL    time.Duration
	resetTTL  time.Duration
}

func NewAuthService(
	userRepo *repository.UserRepository,
	staffRepo *repository.StaffRepository,
	resetRepo *repository.ResetRepository,
	mailer Mailer,
	secret string,
	jwtTTL, resetTTL time.Duration,
) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		staffRepo: staffRepo,
		resetRepo: resetRepo,
		mailer:    mailer,
		jwtSecret: secret,
		jwtTTL:    jwtTTL,
		resetTTL:  resetTTL,
	}
}

func validRole(role string) bool {
	switch role {
	case entity.RoleAdmin, entity.RoleManager, entity.RoleWaiter:
		return true
	}
	return false
}

type RegisterIn struct {
	Username string
	Password string
	Role     string
	Contact  string
	Email    string
	DOB      *time.Time
	Gender   string
}

func (s *AuthService) Register(in RegisterIn) (*entity.User, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if in.Username == "" || in.Password == "" {
		return nil, apperr.Validation("username and password are required")
	}
	if in.Role == "" {
		in.Role = entity.RoleWaiter
	}
	if !validRole(in.Role) {
		return nil, apperr.Validation("invalid role: %s", in.Role)
	}

	count, err := s.userRepo.CountByUsername(in.Username)
	if err != nil {
		return nil, apperr.Persistence(err)
	}
	if count > 0 {
		return nil, apperr.Validation("username already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Persistence(err)
	}

	user := &entity.User{
		Username: in.Username,
		Password: string(hashed),
		Role:     in.Role,
		IsActive: true,
		Contact:  in.Contact,
		Email:    in.Email,
		DOB:      in.DOB,
		Gender:   in.Gender,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, apperr.Persistence(err)
	}
	return user, nil
}

// Login verifies credentials, issues a token and, for staff roles, opens a
// duty session.
func (s *AuthService) Login(username, password string) (string, *entity.User, error) {
	if username == "" || password == "" {
		return "", nil, apperr.Validation("username and password are required")
	}

	user, err := s.userRepo.FindByUsername(strings.TrimSpace(username))
	if err != nil {
		return "", nil, apperr.Unauthenticated("invalid credentials")
	}
	if !user.IsActive {
		return "", nil, apperr.Unauthenticated("invalid credentials or inactive account")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, apperr.Unauthenticated("invalid credentials")
	}

	token, err := utils.GenerateToken(user.ID, user.Username, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, apperr.Persistence(err)
	}

	if user.IsStaff() {
		if _, err := s.staffRepo.OpenSession(user.ID, time.Now()); err != nil {
			return "", nil, apperr.Persistence(err)
		}
	}
	return token, user, nil
}

// Logout closes the open duty session.
func (s *AuthService) Logout(userID uint) error {
	err := s.staffRepo.CloseSession(userID, time.Now())
	if err == gorm.ErrRecordNotFound {
		return apperr.NotFound("no active duty session")
	}
	if err != nil {
		return apperr.Persistence(err)
	}
	return nil
}

// ForgotPassword issues a one-time reset code and hands it to the mailer.
func (s *AuthService) ForgotPassword(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return apperr.NotFound("no account for that email")
	}

	pr := &entity.PasswordReset{
		UserID:    user.ID,
		Code:      utils.NewResetCode(),
		ExpiresAt: time.Now().Add(s.resetTTL),
	}
	if err := s.resetRepo.Create(pr); err != nil {
		return apperr.Persistence(err)
	}
	if err := s.mailer.SendResetCode(user.Email, pr.Code); err != nil {
		return apperr.Persistence(err)
	}
	return nil
}

// ResetPassword consumes a valid code and replaces the password; the
// mark-used and password write are one transaction.
func (s *AuthService) ResetPassword(code, newPassword string) error {
	if code == "" || newPassword == "" {
		return apperr.Validation("code and new password are required")
	}

	pr, err := s.resetRepo.FindValid(code, time.Now())
	if err == gorm.ErrRecordNotFound {
		return apperr.NotFound("invalid or expired reset code")
	}
	if err != nil {
		return apperr.Persistence(err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return apperr.Persistence(err)
	}

	err = s.resetRepo.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.resetRepo.MarkUsed(tx, pr.ID); err != nil {
			return err
		}
		return tx.Model(&entity.User{}).
			Where("id = ?", pr.UserID).
			Update("password", string(hashed)).Error
	})
	if err != nil {
		return apperr.Persistence(err)
	}
	return nil
}
