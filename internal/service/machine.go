package service

import (
	"fmt"
	"time"

	"geofence-attendance-backend/internal/model"
)

// Suppression reasons returned when a sample produces no event.
const (
	ReasonAlreadyInside   = "already inside this geofence"
	ReasonOutsideAll      = "outside all geofences"
	ReasonStaleSample     = "sample older than last recorded event"
	ReasonPublicHoliday   = "public holiday"
	reasonOutsideHoursFmt = "outside working hours (%s)"
	reasonNotWorkingDay   = "not a working day (%s)"
)

// NextEvent is the attendance state machine: a pure function of the current
// membership and the user's last recorded event. It returns the event to
// persist, or nil plus the reason nothing was emitted.
//
// ENTER only opens inside the working window. EXIT is emitted
// unconditionally — suppressing it would leave the user checked in forever,
// so the asymmetry is intentional.
func NextEvent(sample model.LocationSample, membership Membership, lastEvent *model.AttendanceEvent, workingHours, workingDay, holiday bool) (*model.AttendanceEvent, string) {
	if membership.Member == nil {
		if lastEvent != nil && lastEvent.EventType == model.EventEnter {
			// Close the open ENTER even outside working hours
			return buildEvent(sample, lastEvent.GeofenceID, model.EventExit, workingHours, workingDay), ""
		}
		return nil, ReasonOutsideAll
	}

	fence := membership.Member

	alreadyInside := lastEvent != nil &&
		lastEvent.EventType == model.EventEnter &&
		lastEvent.GeofenceID == fence.ID
	if alreadyInside {
		// Repeated samples inside the same geofence never duplicate ENTER
		return nil, ReasonAlreadyInside
	}

	if holiday {
		return nil, ReasonPublicHoliday
	}
	if !workingHours {
		return nil, fmt.Sprintf(reasonOutsideHoursFmt, FormatWindow(fence))
	}
	if !workingDay {
		day := sample.CapturedAt.In(fence.TimeLocation()).Weekday().String()
		return nil, fmt.Sprintf(reasonNotWorkingDay, day)
	}

	return buildEvent(sample, fence.ID, model.EventEnter, workingHours, workingDay), ""
}

func buildEvent(sample model.LocationSample, fenceID uint, eventType string, workingHours, workingDay bool) *model.AttendanceEvent {
	occurredAt := sample.CapturedAt
	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}
	return &model.AttendanceEvent{
		UserID:         sample.UserID,
		GeofenceID:     fenceID,
		EventType:      eventType,
		OccurredAt:     occurredAt,
		Latitude:       sample.Latitude,
		Longitude:      sample.Longitude,
		AccuracyMeter:  sample.AccuracyMeter,
		IsWorkingHours: workingHours,
		IsWorkingDay:   workingDay,
	}
}
