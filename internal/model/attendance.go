package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	EventEnter = "ENTER"
	EventExit  = "EXIT"
)

// AttendanceEvent is append-only: rows are created by the tracking pipeline
// and never updated or deleted.
type AttendanceEvent struct {
	gorm.Model
	UserID         uint      `json:"user_id" gorm:"index"`
	GeofenceID     uint      `json:"geofence_id"`
	EventType      string    `json:"event_type"` // ENTER / EXIT
	OccurredAt     time.Time `json:"occurred_at"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	AccuracyMeter  float64   `json:"accuracy_meter"`
	IsWorkingHours bool      `json:"is_working_hours"`
	IsWorkingDay   bool      `json:"is_working_day"`

	// Relations
	Geofence Geofence `json:"geofence,omitempty" gorm:"foreignKey:GeofenceID"`
}
