package queue_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"geofence-attendance-backend/internal/model"
	"geofence-attendance-backend/internal/queue"
	"geofence-attendance-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memQueue is an in-memory QueueRepository: FIFO by insertion order, exactly
// like the GORM implementation orders by id.
type memQueue struct {
	nextID uint
	items  []model.QueueItem
}

func newMemQueue() *memQueue {
	return &memQueue{nextID: 1}
}

func (q *memQueue) Enqueue(item *model.QueueItem) error {
	item.ID = q.nextID
	q.nextID++
	q.items = append(q.items, *item)
	return nil
}

func (q *memQueue) Oldest(deviceUUID string, limit int) ([]model.QueueItem, error) {
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
	for i, item := range q.items {
		if item.ID == id {
			q.items = append(q.items[:i], q.items[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}

func (q *memQueue) IncrementRetry(id uint) error {
	for i := range q.items {
		if q.items[i].ID == id {
			q.items[i].RetryCount++
			return nil
		}
	}
	return errors.New("not found")
}

func (q *memQueue) Count(deviceUUID string) (int64, error) {
	var n int64
	for _, item := range q.items {
		if item.DeviceUUID == deviceUUID {
			n++
		}
	}
	return n, nil
}

// scriptedSubmitter records submission order and fails on chosen latitudes.
type scriptedSubmitter struct {
	submitted []model.LocationSample
	failLat   map[float64]error
}

func (s *scriptedSubmitter) Submit(sample model.LocationSample) (*service.TrackResult, error) {
	if err, ok := s.failLat[sample.Latitude]; ok {
		return nil, err
	}
	s.submitted = append(s.submitted, sample)
	return &service.TrackResult{}, nil
}

func enqueueN(t *testing.T, q *memQueue, device string, n int) {
	t.Helper()
	base := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		err := q.Enqueue(&model.QueueItem{
			DeviceUUID: device,
			UserID:     7,
			Latitude:   float64(i + 1), // lat doubles as a sequence marker
			Longitude:  77.5946,
			CapturedAt: base.Add(time.Duration(i) * time.Minute),
			EnqueuedAt: base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}
}

func TestDrainSubmitsAllInOrder(t *testing.T) {
	t.Parallel()

	q := newMemQueue()
	enqueueN(t, q, "device-1", 5)
	submitter := &scriptedSubmitter{}

	stats, err := queue.NewSyncCoordinator(q, submitter).Drain(context.Background(), "device-1")
	require.NoError(t, err)

	assert.Equal(t, 5, stats.Synced)
	assert.Equal(t, 0, stats.Remaining)

	require.Len(t, submitter.submitted, 5)
	for i, sample := range submitter.submitted {
		assert.Equal(t, float64(i+1), sample.Latitude, "samples drain oldest first")
	}

	count, _ := q.Count("device-1")
	assert.Zero(t, count, "queue empty only after every item succeeded")
}

func TestDrainStopsAtFirstFailure(t *testing.T) {
	t.Parallel()

	q := newMemQueue()
	enqueueN(t, q, "device-1", 5)
	submitter := &scriptedSubmitter{failLat: map[float64]error{3: errors.New("network down")}}

	stats, err := queue.NewSyncCoordinator(q, submitter).Drain(context.Background(), "device-1")
	require.Error(t, err)

	assert.Equal(t, 2, stats.Synced)
	assert.Equal(t, 3, stats.Remaining, "the failed item and everything behind it stays queued")

	remaining, _ := q.Oldest("device-1", 10)
	require.Len(t, remaining, 3)
	assert.Equal(t, float64(3), remaining[0].Latitude, "no skipping ahead of the failed item")
	assert.Equal(t, 1, remaining[0].RetryCount)
	assert.Equal(t, 0, remaining[1].RetryCount)
}

func TestDrainRetrySucceedsLater(t *testing.T) {
	t.Parallel()

	q := newMemQueue()
	enqueueN(t, q, "device-1", 3)
	submitter := &scriptedSubmitter{failLat: map[float64]error{2: errors.New("network down")}}
	coordinator := queue.NewSyncCoordinator(q, submitter)

	_, err := coordinator.Drain(context.Background(), "device-1")
	require.Error(t, err)

	// Connectivity returns
	delete(submitter.failLat, 2)

	stats, err := coordinator.Drain(context.Background(), "device-1")
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Synced)

	require.Len(t, submitter.submitted, 3)
	assert.Equal(t, []float64{1, 2, 3}, []float64{
		submitter.submitted[0].Latitude,
		submitter.submitted[1].Latitude,
		submitter.submitted[2].Latitude,
	}, "original capture order holds across drain passes")
}

func TestDrainDropsDefinitivelyInvalidItems(t *testing.T) {
	t.Parallel()

	q := newMemQueue()
	enqueueN(t, q, "device-1", 3)
	// Item 2 will always be rejected as malformed; keeping it would wedge
	// the queue forever
	submitter := &scriptedSubmitter{failLat: map[float64]error{2: service.ErrInvalidCoordinates}}

	stats, err := queue.NewSyncCoordinator(q, submitter).Drain(context.Background(), "device-1")
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Synced)
	count, _ := q.Count("device-1")
	assert.Zero(t, count)
}

func TestDrainHonorsCancellation(t *testing.T) {
	t.Parallel()

	q := newMemQueue()
	enqueueN(t, q, "device-1", 5)
	submitter := &scriptedSubmitter{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stats, err := queue.NewSyncCoordinator(q, submitter).Drain(ctx, "device-1")
	require.ErrorIs(t, err, context.Canceled)

	assert.Zero(t, stats.Synced)
	count, _ := q.Count("device-1")
	assert.Equal(t, int64(5), count, "cancellation loses nothing")
}

func TestDrainEmptyQueue(t *testing.T) {
	t.Parallel()

	stats, err := queue.NewSyncCoordinator(newMemQueue(), &scriptedSubmitter{}).Drain(context.Background(), "device-1")
	require.NoError(t, err)
	assert.Zero(t, stats.Synced)
}
