package queue

import (
	"context"
	"errors"
	"fmt"

	"geofence-attendance-backend/internal/model"
	"geofence-attendance-backend/internal/repository"
	"geofence-attendance-backend/internal/service"
)

const drainBatchSize = 50

// Submitter is the single pipeline both live samples and drained queue items
// go through.
type Submitter interface {
	Submit(sample model.LocationSample) (*service.TrackResult, error)
}

// DrainStats reports what one drain pass did.
type DrainStats struct {
	Synced    int `json:"synced"`
	Remaining int `json:"remaining"`
}

// SyncCoordinator drains the offline queue strictly in enqueue order. An item
// is removed only after the pipeline durably recorded its outcome; the first
// failure stops the pass so later items can never skip ahead of an unsynced
// one.
type SyncCoordinator struct {
	queue  repository.QueueRepository
	submit Submitter
}

func NewSyncCoordinator(queue repository.QueueRepository, submit Submitter) *SyncCoordinator {
	return &SyncCoordinator{queue: queue, submit: submit}
}

// Drain submits every queued item for the device, oldest first. It returns
// the error that stopped the pass, if any; already-synced items stay removed
// either way.
func (c *SyncCoordinator) Drain(ctx context.Context, deviceUUID string) (DrainStats, error) {
	stats := DrainStats{}
	for {
		items, err := c.queue.Oldest(deviceUUID, drainBatchSize)
		if err != nil {
			return c.withRemaining(deviceUUID, stats), fmt.Errorf("reading queue: %w", err)
		}
		if len(items) == 0 {
			return stats, nil
		}

		for i := range items {
			item := &items[i]

			if err := ctx.Err(); err != nil {
				// Cancelled mid-drain: everything unsynced stays queued
				return c.withRemaining(deviceUUID, stats), err
			}

			if _, err := c.submit.Submit(item.Sample()); err != nil {
				if errors.Is(err, service.ErrInvalidCoordinates) {
					// Definitive outcome: this sample can never succeed, so
					// keeping it would wedge the queue forever
					if err := c.queue.Remove(item.ID); err != nil {
						return c.withRemaining(deviceUUID, stats), fmt.Errorf("removing invalid queue item: %w", err)
					}
					continue
				}
				// Leave the item (and everything behind it) for the next pass
				if retryErr := c.queue.IncrementRetry(item.ID); retryErr != nil {
					fmt.Println("Warning: could not record retry:", retryErr)
				}
				return c.withRemaining(deviceUUID, stats), err
			}

			if err := c.queue.Remove(item.ID); err != nil {
				// The sample was processed; failing to remove means it may be
				// submitted again. The pipeline is idempotent for repeats, so
				// stop here rather than risk reordering.
				return c.withRemaining(deviceUUID, stats), fmt.Errorf("removing queue item: %w", err)
			}
			stats.Synced++
		}

		if len(items) < drainBatchSize {
			return stats, nil
		}
	}
}

func (c *SyncCoordinator) withRemaining(deviceUUID string, stats DrainStats) DrainStats {
	if count, err := c.queue.Count(deviceUUID); err == nil {
		stats.Remaining = int(count)
	}
	return stats
}
