package repository

import (
	"geofence-attendance-backend/internal/model"

	"gorm.io/gorm"
)

type LocationRepository interface {
	Create(sample *model.LocationSample) error
	GetByUser(userID uint, limit int) ([]model.LocationSample, error)
}

type locationRepository struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) LocationRepository {
	return &locationRepository{db}
}

func (r *locationRepository) Create(sample *model.LocationSample) error {
	return r.db.Create(sample).Error
}

func (r *locationRepository) GetByUser(userID uint, limit int) ([]model.LocationSample, error) {
	var samples []model.LocationSample
	err := r.db.Where("user_id = ?", userID).
		Order("captured_at desc").
		Limit(limit).
		Find(&samples).Error
	return samples, err
}
