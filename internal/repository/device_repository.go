package repository

import (
	"geofence-attendance-backend/internal/model"

	"gorm.io/gorm"
)

type DeviceRepository interface {
	Create(device *model.Device) error
	GetByUUID(uuid string) (*model.Device, error)
	GetByUser(userID uint) ([]model.Device, error)
}

type deviceRepository struct {
	db *gorm.DB
}

func NewDeviceRepository(db *gorm.DB) DeviceRepository {
	return &deviceRepository{db}
}

func (r *deviceRepository) Create(device *model.Device) error {
	return r.db.Create(device).Error
}

func (r *deviceRepository) GetByUUID(uuid string) (*model.Device, error) {
	var device model.Device
	err := r.db.Where("uuid = ?", uuid).First(&device).Error
	if err != nil {
		return nil, err
	}
	return &device, nil
}

func (r *deviceRepository) GetByUser(userID uint) ([]model.Device, error) {
	var devices []model.Device
	err := r.db.Where("user_id = ?", userID).Find(&devices).Error
	return devices, err
}
