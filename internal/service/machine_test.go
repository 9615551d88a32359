package service_test

import (
	"testing"
	"time"

	"geofence-attendance-backend/internal/model"
	"geofence-attendance-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleAt(userID uint, lat, lon float64, at time.Time) model.LocationSample {
	return model.LocationSample{
		UserID:     userID,
		Latitude:   lat,
		Longitude:  lon,
		CapturedAt: at,
	}
}

func insideMembership(fence *model.Geofence) service.Membership {
	return service.Membership{Member: fence, WithinIDs: []uint{fence.ID}}
}

func TestNextEventFirstEnter(t *testing.T) {
	t.Parallel()

	fence := officeFence()
	fence.ID = 1
	sample := sampleAt(7, 12.9716, 77.5946, mondayAt(9, 5))

	event, reason := service.NextEvent(sample, insideMembership(fence), nil, true, true, false)

	require.NotNil(t, event)
	assert.Empty(t, reason)
	assert.Equal(t, model.EventEnter, event.EventType)
	assert.Equal(t, uint(1), event.GeofenceID)
	assert.Equal(t, uint(7), event.UserID)
	assert.Equal(t, mondayAt(9, 5), event.OccurredAt)
	assert.True(t, event.IsWorkingHours)
	assert.True(t, event.IsWorkingDay)
}

func TestNextEventIdempotentInsideSameFence(t *testing.T) {
	t.Parallel()

	fence := officeFence()
	fence.ID = 1

	last := &model.AttendanceEvent{UserID: 7, GeofenceID: 1, EventType: model.EventEnter}

	// Feeding the same in-boundary sample N times never duplicates the ENTER
	for i := 0; i < 5; i++ {
		sample := sampleAt(7, 12.9716, 77.5946, mondayAt(9, 10+i))
		event, reason := service.NextEvent(sample, insideMembership(fence), last, true, true, false)
		assert.Nil(t, event)
		assert.Equal(t, service.ReasonAlreadyInside, reason)
	}
}

func TestNextEventEnterAfterExit(t *testing.T) {
	t.Parallel()

	fence := officeFence()
	fence.ID = 1
	last := &model.AttendanceEvent{UserID: 7, GeofenceID: 1, EventType: model.EventExit}

	event, _ := service.NextEvent(sampleAt(7, 12.9716, 77.5946, mondayAt(14, 0)), insideMembership(fence), last, true, true, false)

	require.NotNil(t, event)
	assert.Equal(t, model.EventEnter, event.EventType)
}

func TestNextEventEnterDifferentFence(t *testing.T) {
	t.Parallel()

	warehouse := officeFence()
	warehouse.ID = 2
	warehouse.Name = "Warehouse"

	// Open ENTER in fence 1, now inside fence 2: a new ENTER opens for 2.
	// Last-event state is global per user, so no synthetic EXIT for fence 1.
	last := &model.AttendanceEvent{UserID: 7, GeofenceID: 1, EventType: model.EventEnter}

	event, _ := service.NextEvent(sampleAt(7, 12.9750, 77.5970, mondayAt(11, 0)), insideMembership(warehouse), last, true, true, false)

	require.NotNil(t, event)
	assert.Equal(t, model.EventEnter, event.EventType)
	assert.Equal(t, uint(2), event.GeofenceID)
}

func TestNextEventEnterGatedByWorkingWindow(t *testing.T) {
	t.Parallel()

	fence := officeFence()
	fence.ID = 1
	sample := sampleAt(7, 12.9716, 77.5946, mondayAt(8, 0))

	event, reason := service.NextEvent(sample, insideMembership(fence), nil, false, true, false)
	assert.Nil(t, event, "no ENTER outside working hours")
	assert.Equal(t, "outside working hours (09:00 - 18:00)", reason)

	event, reason = service.NextEvent(sample, insideMembership(fence), nil, true, false, false)
	assert.Nil(t, event, "no ENTER outside working days")
	assert.Contains(t, reason, "not a working day")

	event, reason = service.NextEvent(sample, insideMembership(fence), nil, true, true, true)
	assert.Nil(t, event, "no ENTER on a public holiday")
	assert.Equal(t, service.ReasonPublicHoliday, reason)
}

func TestNextEventExitIsUnconditional(t *testing.T) {
	t.Parallel()

	last := &model.AttendanceEvent{UserID: 7, GeofenceID: 1, EventType: model.EventEnter}

	// Outside all geofences at 18:30 — beyond working hours, EXIT still fires
	sample := sampleAt(7, 12.9800, 77.6100, mondayAt(18, 30))
	event, reason := service.NextEvent(sample, service.Membership{}, last, false, true, false)

	require.NotNil(t, event, "an EXIT must never be suppressed")
	assert.Empty(t, reason)
	assert.Equal(t, model.EventExit, event.EventType)
	assert.Equal(t, uint(1), event.GeofenceID)
	assert.False(t, event.IsWorkingHours)
}

func TestNextEventNothingOpenOutside(t *testing.T) {
	t.Parallel()

	event, reason := service.NextEvent(sampleAt(7, 12.9800, 77.6100, mondayAt(12, 0)), service.Membership{}, nil, true, true, false)
	assert.Nil(t, event)
	assert.Equal(t, service.ReasonOutsideAll, reason)

	// Same when the last event already is an EXIT
	last := &model.AttendanceEvent{UserID: 7, GeofenceID: 1, EventType: model.EventExit}
	event, reason = service.NextEvent(sampleAt(7, 12.9800, 77.6100, mondayAt(12, 5)), service.Membership{}, last, true, true, false)
	assert.Nil(t, event)
	assert.Equal(t, service.ReasonOutsideAll, reason)
}

func TestEnterExitSequenceAlternates(t *testing.T) {
	t.Parallel()

	fence := officeFence()
	fence.ID = 1
	membership := insideMembership(fence)

	// inside at t1 → inside at t2 → outside at t3: exactly one ENTER and one EXIT
	var last *model.AttendanceEvent
	var events []*model.AttendanceEvent

	step := func(m service.Membership, s model.LocationSample, wh bool) {
		event, _ := service.NextEvent(s, m, last, wh, true, false)
		if event != nil {
			events = append(events, event)
			last = event
		}
	}

	step(membership, sampleAt(7, 12.9716, 77.5946, mondayAt(9, 5)), true)
	step(membership, sampleAt(7, 12.9716, 77.5946, mondayAt(12, 0)), true)
	step(service.Membership{}, sampleAt(7, 12.9800, 77.6100, mondayAt(18, 30)), false)

	require.Len(t, events, 2)
	assert.Equal(t, model.EventEnter, events[0].EventType)
	assert.Equal(t, model.EventExit, events[1].EventType)
	assert.True(t, events[0].OccurredAt.Before(events[1].OccurredAt))
}
