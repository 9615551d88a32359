package model

import (
	"time"

	"gorm.io/gorm"
)

// LocationSample is one raw GPS reading from a device. Every submitted sample
// is stored, even when it produces no attendance event.
type LocationSample struct {
	gorm.Model
	UserID        uint      `json:"user_id" gorm:"index:idx_user_captured,priority:1"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	AccuracyMeter float64   `json:"accuracy_meter"`
	CapturedAt    time.Time `json:"captured_at" gorm:"index:idx_user_captured,priority:2"`
}
