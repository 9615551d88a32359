package model

import (
	"time"

	"gorm.io/gorm"
)

// QueueItem is a location sample waiting to be submitted. Items are only
// deleted after the pipeline has durably recorded an outcome for the sample;
// losing a queued item is a correctness bug, not an acceptable failure.
type QueueItem struct {
	gorm.Model
	DeviceUUID    string    `json:"device_uuid" gorm:"index"`
	UserID        uint      `json:"user_id"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	AccuracyMeter float64   `json:"accuracy_meter"`
	CapturedAt    time.Time `json:"captured_at"`
	EnqueuedAt    time.Time `json:"enqueued_at"`
	RetryCount    int       `json:"retry_count"`
}

// Sample rebuilds the location sample this item was created from.
func (q *QueueItem) Sample() LocationSample {
	return LocationSample{
		UserID:        q.UserID,
		Latitude:      q.Latitude,
		Longitude:     q.Longitude,
		AccuracyMeter: q.AccuracyMeter,
		CapturedAt:    q.CapturedAt,
	}
}
