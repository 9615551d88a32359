package repository

import (
	"geofence-attendance-backend/internal/model"

	"gorm.io/gorm"
)

type AttendanceRepository interface {
	Create(event *model.AttendanceEvent) error
	// GetLastEvent returns the most recent event for a user, or nil when the
	// user has no attendance history yet. The state machine transitions on
	// exactly this single row.
	GetLastEvent(userID uint) (*model.AttendanceEvent, error)
	GetByUser(userID uint, limit, offset int) ([]model.AttendanceEvent, error)
	GetByCompany(companyID uint, limit, offset int) ([]model.AttendanceEvent, error)
}

type attendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db}
}

func (r *attendanceRepository) Create(event *model.AttendanceEvent) error {
	return r.db.Create(event).Error
}

func (r *attendanceRepository) GetLastEvent(userID uint) (*model.AttendanceEvent, error) {
	var event model.AttendanceEvent
	// Find + Limit(1) instead of First so GORM does not log "record not found"
	err := r.db.Where("user_id = ?", userID).Order("id desc").Limit(1).Find(&event).Error
	if err != nil {
		return nil, err
	}
	if event.ID == 0 {
		return nil, nil
	}
	return &event, nil
}

func (r *attendanceRepository) GetByUser(userID uint, limit, offset int) ([]model.AttendanceEvent, error) {
	var events []model.AttendanceEvent
	err := r.db.Preload("Geofence").
		Where("user_id = ?", userID).
		Order("occurred_at desc").
		Limit(limit).Offset(offset).
		Find(&events).Error
	return events, err
}

func (r *attendanceRepository) GetByCompany(companyID uint, limit, offset int) ([]model.AttendanceEvent, error) {
	var events []model.AttendanceEvent
	err := r.db.Preload("Geofence").
		Joins("JOIN users ON users.id = attendance_events.user_id").
		Where("users.company_id = ?", companyID).
		Order("attendance_events.occurred_at desc").
		Limit(limit).Offset(offset).
		Find(&events).Error
	return events, err
}
