package service

import (
	"fmt"
	"time"

	"geofence-attendance-backend/internal/model"
)

// Working-window policy: pure checks of an instant against a geofence's
// configured hours and days. Absent configuration means "never", not
// "always" — a geofence without working hours or days can never open an
// ENTER.

// IsWithinWorkingHours converts the instant to minutes since midnight in the
// geofence's timezone and tests the configured interval, inclusive on both
// ends (so 00:00–23:59 behaves as always-on).
func IsWithinWorkingHours(instant time.Time, fence *model.Geofence) bool {
	if fence.WorkingStart == nil || fence.WorkingEnd == nil {
		return false
	}
	local := instant.In(fence.TimeLocation())
	minutes := local.Hour()*60 + local.Minute()
	return minutes >= *fence.WorkingStart && minutes <= *fence.WorkingEnd
}

// IsWorkingDay tests whether the instant's weekday (in the geofence's
// timezone) is one of the configured working days.
func IsWorkingDay(instant time.Time, fence *model.Geofence) bool {
	days := fence.WorkingDayList()
	if len(days) == 0 {
		return false
	}
	weekday := instant.In(fence.TimeLocation()).Weekday().String()
	for _, d := range days {
		if d == weekday {
			return true
		}
	}
	return false
}

// FormatWindow renders the configured hours for suppression messages,
// e.g. "09:00 - 18:00".
func FormatWindow(fence *model.Geofence) string {
	if fence.WorkingStart == nil || fence.WorkingEnd == nil {
		return "not configured"
	}
	return fmt.Sprintf("%02d:%02d - %02d:%02d",
		*fence.WorkingStart/60, *fence.WorkingStart%60,
		*fence.WorkingEnd/60, *fence.WorkingEnd%60)
}
