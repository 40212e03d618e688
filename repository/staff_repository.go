package repository

import (
	"time"

	"github.com/mritunjaysukla/RMS/entity"

	"gorm.io/gorm"
)

// StaffRepository manages duty sessions.
type StaffRepository struct {
	DB *gorm.DB
}

func NewStaffRepository(db *gorm.DB) *StaffRepository {
	return &StaffRepository{DB: db}
}

// OpenSession finds the user's open session or creates one. The
// find-or-create keeps concurrent logins from leaving two open rows.
func (r *StaffRepository) OpenSession(userID uint, startAt time.Time) (*entity.StaffOnDuty, error) {
	var session entity.StaffOnDuty
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND end_time IS NULL", userID).First(&session)
		if res.Error == nil {
			return nil // already on duty
		}
		if res.Error != gorm.ErrRecordNotFound {
			return res.Error
		}
		session = entity.StaffOnDuty{
			UserID:    userID,
			StartTime: startAt,
			Status:    entity.DutyStatusActive,
		}
		return tx.Create(&session).Error
	})
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// CloseSession sets end time on the open session; gorm.ErrRecordNotFound if
// none is open.
func (r *StaffRepository) CloseSession(userID uint, endAt time.Time) error {
	res := r.DB.Model(&entity.StaffOnDuty{}).
		Where("user_id = ? AND end_time IS NULL", userID).
		Updates(map[string]any{
			"end_time": &endAt,
			"status":   entity.DutyStatusInactive,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListActive returns open Active sessions with their users.
func (r *StaffRepository) ListActive() ([]entity.StaffOnDuty, error) {
	var sessions []entity.StaffOnDuty
	err := r.DB.
		Preload("User").
		Where("end_time IS NULL AND status = ?", entity.DutyStatusActive).
		Find(&sessions).Error
	return sessions, err
}

func (r *StaffRepository) DeleteByUser(tx *gorm.DB, userID uint) error {
	return tx.Where("user_id = ?", userID).Delete(&entity.StaffOnDuty{}).Error
}
