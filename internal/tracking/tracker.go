package tracking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"geofence-attendance-backend/internal/geo"
	"geofence-attendance-backend/internal/model"
	"geofence-attendance-backend/internal/queue"
	"geofence-attendance-backend/internal/repository"
	"geofence-attendance-backend/internal/service"
)

// ErrPermissionDenied is returned by a LocationProvider when the user has
// not granted location access. It is fatal for the tracking run: the user
// must be told, never silently retried.
var ErrPermissionDenied = errors.New("location permission denied")

// LocationProvider yields timestamped coordinate samples. The OS location
// API sits behind this interface; the tracker only consumes its output and
// never decides sampling cadence beyond the configured interval.
type LocationProvider interface {
	CurrentLocation() (model.LocationSample, error)
}

// Tracker runs the periodic sampling loop for one device: every interval it
// asks the provider for a sample and pushes it through the pipeline. When
// submission fails the sample goes to the offline queue. Any queued backlog
// is drained before a fresh sample is submitted, so capture order is
// preserved across offline/online transitions.
type Tracker struct {
	provider    LocationProvider
	submit      queue.Submitter
	queueRepo   repository.QueueRepository
	coordinator *queue.SyncCoordinator
	deviceUUID  string
	interval    time.Duration
}

func NewTracker(
	provider LocationProvider,
	submit queue.Submitter,
	queueRepo repository.QueueRepository,
	coordinator *queue.SyncCoordinator,
	deviceUUID string,
	interval time.Duration,
) *Tracker {
	return &Tracker{
		provider:    provider,
		submit:      submit,
		queueRepo:   queueRepo,
		coordinator: coordinator,
		deviceUUID:  deviceUUID,
		interval:    interval,
	}
}

// Run blocks until ctx is cancelled or the provider reports a permission
// failure. Cancelling stops future ticks and any in-between drain cleanly;
// enqueued samples stay in the queue for the next run.
func (t *Tracker) Run(ctx context.Context) error {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := t.tick(ctx); err != nil {
				if errors.Is(err, ErrPermissionDenied) {
					return err
				}
				fmt.Println("Warning: tracking cycle failed:", err)
			}
		}
	}
}

func (t *Tracker) tick(ctx context.Context) error {
	sample, err := t.provider.CurrentLocation()
	if err != nil {
		return err
	}

	// Malformed samples are rejected here: never queued, never submitted
	if !geo.ValidCoordinates(sample.Latitude, sample.Longitude) {
		return service.ErrInvalidCoordinates
	}
	if sample.CapturedAt.IsZero() {
		sample.CapturedAt = time.Now()
	}

	// Backlog first: queued samples are older than this one, and the
	// pipeline processes per user in capture order
	pending, err := t.queueRepo.Count(t.deviceUUID)
	if err == nil && pending > 0 {
		if _, err := t.coordinator.Drain(ctx, t.deviceUUID); err != nil {
			// Still offline (or cancelled): the fresh sample joins the queue
			// behind the backlog instead of skipping ahead of it
			return t.enqueue(sample)
		}
	}

	if _, err := t.submit.Submit(sample); err != nil {
		if errors.Is(err, service.ErrInvalidCoordinates) {
			return err // definitive, do not queue
		}
		return t.enqueue(sample)
	}
	return nil
}

func (t *Tracker) enqueue(sample model.LocationSample) error {
	item := &model.QueueItem{
		DeviceUUID:    t.deviceUUID,
		UserID:        sample.UserID,
		Latitude:      sample.Latitude,
		Longitude:     sample.Longitude,
		AccuracyMeter: sample.AccuracyMeter,
		CapturedAt:    sample.CapturedAt,
		EnqueuedAt:    time.Now(),
	}
	if err := t.queueRepo.Enqueue(item); err != nil {
		return fmt.Errorf("queueing sample: %w", err)
	}
	return nil
}
