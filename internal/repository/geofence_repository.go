package repository

import (
	"geofence-attendance-backend/internal/model"

	"gorm.io/gorm"
)

type GeofenceRepository interface {
	Create(fence *model.Geofence) error
	GetByID(id uint) (*model.Geofence, error)
	// ListActive returns active geofences of a company in a stable order
	// (oldest first). Membership resolution relies on this ordering for its
	// tie-break, so it must stay deterministic.
	ListActive(companyID uint) ([]model.Geofence, error)
	Deactivate(id uint) error
}

type geofenceRepository struct {
	db *gorm.DB
}

func NewGeofenceRepository(db *gorm.DB) GeofenceRepository {
	return &geofenceRepository{db}
}

func (r *geofenceRepository) Create(fence *model.Geofence) error {
	return r.db.Create(fence).Error
}

func (r *geofenceRepository) GetByID(id uint) (*model.Geofence, error) {
	var fence model.Geofence
	err := r.db.First(&fence, id).Error
	if err != nil {
		return nil, err
	}
	return &fence, nil
}

func (r *geofenceRepository) ListActive(companyID uint) ([]model.Geofence, error) {
	var fences []model.Geofence
	err := r.db.Where("company_id = ? AND is_active = ?", companyID, true).
		Order("id asc").
		Find(&fences).Error
	return fences, err
}

func (r *geofenceRepository) Deactivate(id uint) error {
	return r.db.Model(&model.Geofence{}).Where("id = ?", id).Update("is_active", false).Error
}
