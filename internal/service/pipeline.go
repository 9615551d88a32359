package service

import (
	"errors"
	"fmt"
	"sync"

	"geofence-attendance-backend/internal/geo"
	"geofence-attendance-backend/internal/model"
	"geofence-attendance-backend/internal/notify"
	"geofence-attendance-backend/internal/repository"
)

var (
	// ErrInvalidCoordinates marks a malformed sample. It is rejected before
	// anything else happens: never stored, never queued, never decided on.
	ErrInvalidCoordinates = errors.New("latitude/longitude out of valid range")

	// ErrUnknownUser marks a sample whose user does not exist or is inactive.
	ErrUnknownUser = errors.New("unknown or inactive user")
)

// TrackResult is the submission boundary response: the emitted event (nil
// when nothing was emitted), every geofence containing the point, the
// working-window evaluation and, when no event was emitted, the reason why.
type TrackResult struct {
	Event            *model.AttendanceEvent `json:"attendance_event"`
	WithinGeofences  []uint                 `json:"inside_geofences"`
	IsWorkingHours   bool                   `json:"is_working_hours"`
	IsWorkingDay     bool                   `json:"is_working_day"`
	SuppressedReason string                 `json:"suppressed_reason,omitempty"`
}

// Pipeline is the single authoritative path every location sample goes
// through, live or drained from the offline queue: validate → resolve
// membership → evaluate working window → state machine → persist.
type Pipeline struct {
	users      repository.UserRepository
	geofences  repository.GeofenceRepository
	attendance repository.AttendanceRepository
	locations  repository.LocationRepository
	holidays   repository.HolidayRepository
	notifier   notify.Notifier

	// Per-user serialization. Two samples for the same user must never
	// interleave (the state machine is order sensitive), but unrelated users
	// must not block each other, so a global lock won't do.
	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

func NewPipeline(
	users repository.UserRepository,
	geofences repository.GeofenceRepository,
	attendance repository.AttendanceRepository,
	locations repository.LocationRepository,
	holidays repository.HolidayRepository,
	notifier notify.Notifier,
) *Pipeline {
	if notifier == nil {
		notifier = notify.Noop{}
	}
	return &Pipeline{
		users:      users,
		geofences:  geofences,
		attendance: attendance,
		locations:  locations,
		holidays:   holidays,
		notifier:   notifier,
		locks:      make(map[uint]*sync.Mutex),
	}
}

func (p *Pipeline) userLock(userID uint) *sync.Mutex {
	p.mu.Lock()
	defer p.mu.Unlock()
	lock, ok := p.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		p.locks[userID] = lock
	}
	return lock
}

// Submit runs one sample through the pipeline. A non-nil error means the
// sample was not durably processed and the caller must retry it (or keep it
// queued); the user's state has not advanced.
func (p *Pipeline) Submit(sample model.LocationSample) (*TrackResult, error) {
	// 1. Reject malformed samples before touching storage
	if !geo.ValidCoordinates(sample.Latitude, sample.Longitude) {
		return nil, ErrInvalidCoordinates
	}

	user, err := p.users.GetByID(sample.UserID)
	if err != nil || user == nil || !user.IsActive {
		return nil, ErrUnknownUser
	}

	// 2. Serialize per user: samples for one user process in capture order
	lock := p.userLock(sample.UserID)
	lock.Lock()
	defer lock.Unlock()

	// 3. Resolve membership against the company's active geofences
	fences, err := p.geofences.ListActive(user.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("loading geofences: %w", err)
	}
	point := geo.Point{Latitude: sample.Latitude, Longitude: sample.Longitude}
	membership := ResolveMembership(point, fences)

	// 4. Last event decides the transition; it only ever comes from storage,
	// so a previously failed write can never leave phantom state behind
	lastEvent, err := p.attendance.GetLastEvent(sample.UserID)
	if err != nil {
		return nil, fmt.Errorf("loading last event: %w", err)
	}

	// 5. A sample captured before the last recorded event would corrupt the
	// ENTER/EXIT alternation; suppress it instead of processing out of order
	if lastEvent != nil && !sample.CapturedAt.IsZero() && sample.CapturedAt.Before(lastEvent.OccurredAt) {
		if err := p.locations.Create(&sample); err != nil {
			return nil, fmt.Errorf("saving sample: %w", err)
		}
		return &TrackResult{SuppressedReason: ReasonStaleSample}, nil
	}

	// 6. Working window + holiday calendar, evaluated at capture time
	workingHours := true
	workingDay := true
	holiday := false
	if membership.Member != nil {
		workingHours = IsWithinWorkingHours(sample.CapturedAt, membership.Member)
		workingDay = IsWorkingDay(sample.CapturedAt, membership.Member)

		date := sample.CapturedAt.In(membership.Member.TimeLocation()).Format("2006-01-02")
		holiday, err = p.holidays.IsHoliday(user.CompanyID, date)
		if err != nil {
			return nil, fmt.Errorf("checking holiday calendar: %w", err)
		}
		if holiday {
			workingDay = false
		}
	}

	// 7. State machine
	event, reason := NextEvent(sample, membership, lastEvent, workingHours, workingDay, holiday)

	// 8. Persist. The event write comes first: if it fails, nothing advanced
	// and the caller retries the very same sample.
	if event != nil {
		if err := p.attendance.Create(event); err != nil {
			return nil, fmt.Errorf("saving attendance event: %w", err)
		}
	}
	if err := p.locations.Create(&sample); err != nil && event == nil {
		// The raw-sample row is diagnostics; once the event is durable the
		// submission as a whole has succeeded.
		return nil, fmt.Errorf("saving sample: %w", err)
	}

	if event != nil {
		if err := p.notifier.AttendanceRecorded(user, event, membership.Member); err != nil {
			fmt.Println("Warning: attendance notification failed:", err)
		}
	}

	return &TrackResult{
		Event:            event,
		WithinGeofences:  membership.WithinIDs,
		IsWorkingHours:   workingHours,
		IsWorkingDay:     workingDay,
		SuppressedReason: reason,
	}, nil
}
