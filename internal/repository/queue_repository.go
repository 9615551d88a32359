package repository

import (
	"geofence-attendance-backend/internal/model"

	"gorm.io/gorm"
)

type QueueRepository interface {
	Enqueue(item *model.QueueItem) error
	// Oldest returns up to limit items for a device in enqueue order. The
	// queue never reorders: draining walks this order and stops at the first
	// failure.
	Oldest(deviceUUID string, limit int) ([]model.QueueItem, error)
	Remove(id uint) error
	IncrementRetry(id uint) error
	Count(deviceUUID string) (int64, error)
}

type queueRepository struct {
	db *gorm.DB
}

func NewQueueRepository(db *gorm.DB) QueueRepository {
	return &queueRepository{db}
}

func (r *queueRepository) Enqueue(item *model.QueueItem) error {
	return r.db.Create(item).Error
}

func (r *queueRepository) Oldest(deviceUUID string, limit int) ([]model.QueueItem, error) {
	var items []model.QueueItem
	err := r.db.Where("device_uuid = ?", deviceUUID).
		Order("id asc").
		Limit(limit).
		Find(&items).Error
	return items, err
}

func (r *queueRepository) Remove(id uint) error {
	// Hard delete: a drained item must not linger as a soft-deleted row
	return r.db.Unscoped().Delete(&model.QueueItem{}, id).Error
}

func (r *queueRepository) IncrementRetry(id uint) error {
	return r.db.Model(&model.QueueItem{}).Where("id = ?", id).
		UpdateColumn("retry_count", gorm.Expr("retry_count + 1")).Error
}

func (r *queueRepository) Count(deviceUUID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.QueueItem{}).Where("device_uuid = ?", deviceUUID).Count(&count).Error
	return count, err
}
