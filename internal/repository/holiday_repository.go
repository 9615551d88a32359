package repository

import (
	"geofence-attendance-backend/internal/model"

	"gorm.io/gorm"
)

type HolidayRepository interface {
	Create(holiday *model.Holiday) error
	GetAll(companyID uint) ([]model.Holiday, error)
	IsHoliday(companyID uint, date string) (bool, error)
	Delete(id uint) error
}

type holidayRepository struct {
	db *gorm.DB
}

func NewHolidayRepository(db *gorm.DB) HolidayRepository {
	return &holidayRepository{db}
}

func (r *holidayRepository) Create(holiday *model.Holiday) error {
	return r.db.Create(holiday).Error
}

func (r *holidayRepository) GetAll(companyID uint) ([]model.Holiday, error) {
	var holidays []model.Holiday
	err := r.db.Where("company_id = ?", companyID).Order("date desc").Find(&holidays).Error
	return holidays, err
}

func (r *holidayRepository) IsHoliday(companyID uint, date string) (bool, error) {
	var count int64
	err := r.db.Model(&model.Holiday{}).
		Where("company_id = ? AND date = ?", companyID, date).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *holidayRepository) Delete(id uint) error {
	return r.db.Delete(&model.Holiday{}, id).Error
}
