package model

import (
	"encoding/json"
	"strings"
	"time"

	"gorm.io/gorm"
)

const (
	GeofenceTypeCircle  = "circle"
	GeofenceTypePolygon = "polygon"
)

type Geofence struct {
	gorm.Model
	CompanyID   uint   `json:"company_id"`
	CreatedBy   uint   `json:"created_by"`
	Name        string `json:"name" gorm:"not null"`
	Description string `json:"description"`
	Address     string `json:"address"`
	Type        string `json:"geofence_type" gorm:"default:circle"` // circle / polygon

	// Circle shape
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	RadiusMeter float64 `json:"radius_meter"`

	// Polygon shape: JSON array of [lat, lon] pairs, ring implicitly closed
	Polygon string `json:"polygon"`

	// Working window. Nil start/end or empty days means "never", not "always".
	WorkingStart *int   `json:"working_start"` // minutes since midnight
	WorkingEnd   *int   `json:"working_end"`   // minutes since midnight, inclusive
	WorkingDays  string `json:"working_days"`  // comma separated weekday names, e.g. "Monday,Tuesday"
	Timezone     string `json:"timezone"`      // IANA name; empty means server local time

	IsActive bool `json:"is_active" gorm:"default:true"`
}

// PolygonRing decodes the stored polygon into [lat, lon] pairs.
// Returns nil for circle geofences or an empty polygon column.
func (g *Geofence) PolygonRing() ([][2]float64, error) {
	if g.Polygon == "" {
		return nil, nil
	}
	var ring [][2]float64
	if err := json.Unmarshal([]byte(g.Polygon), &ring); err != nil {
		return nil, err
	}
	return ring, nil
}

// WorkingDayList splits the stored weekday CSV, dropping empty entries.
func (g *Geofence) WorkingDayList() []string {
	if g.WorkingDays == "" {
		return nil
	}
	parts := strings.Split(g.WorkingDays, ",")
	days := make([]string, 0, len(parts))
	for _, p := range parts {
		if d := strings.TrimSpace(p); d != "" {
			days = append(days, d)
		}
	}
	return days
}

// TimeLocation resolves the geofence timezone, falling back to server local time.
func (g *Geofence) TimeLocation() *time.Location {
	if g.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(g.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}
