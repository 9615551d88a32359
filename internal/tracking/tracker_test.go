package tracking_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"geofence-attendance-backend/internal/model"
	"geofence-attendance-backend/internal/queue"
	"geofence-attendance-backend/internal/service"
	"geofence-attendance-backend/internal/tracking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memQueue mirrors the GORM queue repository in memory (FIFO by id).
type memQueue struct {
	mu     sync.Mutex
	nextID uint
	items  []model.QueueItem
}

func (q *memQueue) Enqueue(item *model.QueueItem) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.nextID++
	item.ID = q.nextID
	q.items = append(q.items, *item)
	return nil
}

func (q *memQueue) Oldest(deviceUUID string, limit int) ([]model.QueueItem, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	var out []model.QueueItem
	for _, item := range q.items {
		if item.DeviceUUID == deviceUUID {
			out = append(out, item)
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

func (q *memQueue) Remove(id uint) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	for i, item := range q.items {
		if item.ID == id {
			q.items = append(q.items[:i], q.items[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}

func (q *memQueue) IncrementRetry(id uint) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	for i := range q.items {
		if q.items[i].ID == id {
			q.items[i].RetryCount++
			return nil
		}
	}
	return errors.New("not found")
}

func (q *memQueue) Count(deviceUUID string) (int64, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	var n int64
	for _, item := range q.items {
		if item.DeviceUUID == deviceUUID {
			n++
		}
	}
	return n, nil
}

// toggleSubmitter simulates connectivity: while offline every submission
// fails. It signals each Submit call so tests can wait instead of sleeping.
type toggleSubmitter struct {
	mu        sync.Mutex
	offline   bool
	submitted []model.LocationSample
	calls     chan struct{}
}

func newToggleSubmitter() *toggleSubmitter {
	return &toggleSubmitter{calls: make(chan struct{}, 64)}
}

func (s *toggleSubmitter) setOffline(offline bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.offline = offline
}

func (s *toggleSubmitter) Submit(sample model.LocationSample) (*service.TrackResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() { s.calls <- struct{}{} }()
	if s.offline {
		return nil, errors.New("network unavailable")
	}
	s.submitted = append(s.submitted, sample)
	return &service.TrackResult{}, nil
}

func (s *toggleSubmitter) submittedSamples() []model.LocationSample {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.LocationSample, len(s.submitted))
	copy(out, s.submitted)
	return out
}

// sequenceProvider yields samples with increasing capture times.
type sequenceProvider struct {
	mu   sync.Mutex
	n    int
	err  error
	base time.Time
}

func (p *sequenceProvider) CurrentLocation() (model.LocationSample, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return model.LocationSample{}, p.err
	}
	p.n++
	return model.LocationSample{
		UserID:     7,
		Latitude:   float64(p.n), // sequence marker
		Longitude:  77.5946,
		CapturedAt: p.base.Add(time.Duration(p.n) * time.Minute),
	}, nil
}

func waitCalls(t *testing.T, ch chan struct{}, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-ch:
		case <-time.After(5 * time.Second):
			t.Fatalf("timed out waiting for submission %d of %d", i+1, n)
		}
	}
}

func newTracker(submitter *toggleSubmitter, provider tracking.LocationProvider, q *memQueue) *tracking.Tracker {
	coordinator := queue.NewSyncCoordinator(q, submitter)
	return tracking.NewTracker(provider, submitter, q, coordinator, "device-1", 5*time.Millisecond)
}

func TestTrackerSubmitsLiveSamples(t *testing.T) {
	t.Parallel()

	q := &memQueue{}
	submitter := newToggleSubmitter()
	provider := &sequenceProvider{base: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)}
	tracker := newTracker(submitter, provider, q)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- tracker.Run(ctx) }()

	waitCalls(t, submitter.calls, 3)
	cancel()
	require.ErrorIs(t, <-done, context.Canceled)

	samples := submitter.submittedSamples()
	require.GreaterOrEqual(t, len(samples), 3)
	for i := 1; i < len(samples); i++ {
		assert.True(t, samples[i-1].CapturedAt.Before(samples[i].CapturedAt), "capture order preserved")
	}
	count, _ := q.Count("device-1")
	assert.Zero(t, count)
}

func TestTrackerQueuesWhileOfflineThenDrains(t *testing.T) {
	t.Parallel()

	q := &memQueue{}
	submitter := newToggleSubmitter()
	submitter.setOffline(true)
	provider := &sequenceProvider{base: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)}
	tracker := newTracker(submitter, provider, q)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- tracker.Run(ctx) }()

	// Let a few offline cycles queue their samples
	waitCalls(t, submitter.calls, 5)
	queued, _ := q.Count("device-1")
	require.GreaterOrEqual(t, queued, int64(4))

	// Connectivity returns: the backlog drains in capture order before any
	// fresh live sample goes through
	submitter.setOffline(false)
	waitCalls(t, submitter.calls, int(queued)+2)
	cancel()
	require.ErrorIs(t, <-done, context.Canceled)

	samples := submitter.submittedSamples()
	require.NotEmpty(t, samples)
	for i := 1; i < len(samples); i++ {
		assert.True(t, samples[i-1].CapturedAt.Before(samples[i].CapturedAt),
			"queued backlog must not be reordered around live samples")
	}
}

func TestTrackerCancellationKeepsQueuedSamples(t *testing.T) {
	t.Parallel()

	q := &memQueue{}
	submitter := newToggleSubmitter()
	submitter.setOffline(true)
	provider := &sequenceProvider{base: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)}
	tracker := newTracker(submitter, provider, q)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- tracker.Run(ctx) }()

	waitCalls(t, submitter.calls, 3)
	cancel()
	require.ErrorIs(t, <-done, context.Canceled)

	count, _ := q.Count("device-1")
	assert.GreaterOrEqual(t, count, int64(2), "stopping tracking must not lose unsynced samples")
}

func TestTrackerPermissionFailureIsFatal(t *testing.T) {
	t.Parallel()

	q := &memQueue{}
	submitter := newToggleSubmitter()
	provider := &sequenceProvider{err: tracking.ErrPermissionDenied}
	tracker := newTracker(submitter, provider, q)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := tracker.Run(ctx)
	require.ErrorIs(t, err, tracking.ErrPermissionDenied,
		"permission problems surface immediately instead of being retried silently")

	count, _ := q.Count("device-1")
	assert.Zero(t, count, "nothing is queued for a permission failure")
}
