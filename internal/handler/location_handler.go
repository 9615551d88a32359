package handler

import (
	"errors"
	"fmt"
	"time"

	"geofence-attendance-backend/internal/geo"
	"geofence-attendance-backend/internal/model"
	"geofence-attendance-backend/internal/queue"
	"geofence-attendance-backend/internal/repository"
	"geofence-attendance-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type LocationHandler struct {
	pipeline    queue.Submitter
	locations   repository.LocationRepository
	queueRepo   repository.QueueRepository
	devices     repository.DeviceRepository
	coordinator *queue.SyncCoordinator
}

func NewLocationHandler(pipeline queue.Submitter, locations repository.LocationRepository, queueRepo repository.QueueRepository, devices repository.DeviceRepository, coordinator *queue.SyncCoordinator) *LocationHandler {
	return &LocationHandler{
		pipeline:    pipeline,
		locations:   locations,
		queueRepo:   queueRepo,
		devices:     devices,
		coordinator: coordinator,
	}
}

type TrackRequest struct {
	Latitude      float64    `json:"latitude"`
	Longitude     float64    `json:"longitude"`
	AccuracyMeter float64    `json:"accuracy_meter"`
	CapturedAt    *time.Time `json:"captured_at"` // defaults to now for live samples
}

// Track is the submission boundary: one sample in, one pipeline decision out.
func (h *LocationHandler) Track(c *fiber.Ctx) error {
	userID := uint(c.Locals("user_id").(float64))

	var req TrackRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	capturedAt := time.Now()
	if req.CapturedAt != nil {
		capturedAt = *req.CapturedAt
	}

	sample := model.LocationSample{
		UserID:        userID,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		AccuracyMeter: req.AccuracyMeter,
		CapturedAt:    capturedAt,
	}

	result, err := h.pipeline.Submit(sample)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCoordinates) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Latitude/longitude out of valid range"})
		}
		if errors.Is(err, service.ErrUnknownUser) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unknown or inactive user"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error tracking location"})
	}

	return c.JSON(result)
}

type SyncRequest struct {
	DeviceUUID string         `json:"device_uuid"`
	Samples    []TrackRequest `json:"samples"` // in capture order, oldest first
}

// Sync accepts a device's offline backlog, queues it durably, then drains
// the queue through the same pipeline as live samples. Items that fail stay
// queued (with everything behind them) for the next sync.
func (h *LocationHandler) Sync(c *fiber.Ctx) error {
	userID := uint(c.Locals("user_id").(float64))

	var req SyncRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.DeviceUUID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "device_uuid is required"})
	}

	// 1. The device must exist and belong to the authenticated user; the UUID
	// keys the queue, so a foreign UUID would read/write another user's backlog
	device, err := h.devices.GetByUUID(req.DeviceUUID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Unknown device"})
	}
	if device.UserID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Device belongs to another user"})
	}

	// 2. Malformed samples are rejected up front: they must never reach the
	// queue, and rejecting the batch keeps its capture order intact
	for i, s := range req.Samples {
		if !geo.ValidCoordinates(s.Latitude, s.Longitude) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Sample %d has latitude/longitude out of valid range", i),
			})
		}
	}

	// 3. Queue everything first so nothing is lost if draining is cut short
	now := time.Now()
	for _, s := range req.Samples {
		capturedAt := now
		if s.CapturedAt != nil {
			capturedAt = *s.CapturedAt
		}
		item := model.QueueItem{
			DeviceUUID:    req.DeviceUUID,
			UserID:        userID,
			Latitude:      s.Latitude,
			Longitude:     s.Longitude,
			AccuracyMeter: s.AccuracyMeter,
			CapturedAt:    capturedAt,
			EnqueuedAt:    now,
		}
		if err := h.queueRepo.Enqueue(&item); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error queueing samples"})
		}
	}

	// 4. Drain in enqueue order; a failed item stops the pass
	stats, err := h.coordinator.Drain(c.Context(), req.DeviceUUID)
	if err != nil {
		return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
			"message":   "Partially synced, remainder stays queued",
			"synced":    stats.Synced,
			"remaining": stats.Remaining,
		})
	}

	return c.JSON(fiber.Map{
		"message":   "Sync complete",
		"synced":    stats.Synced,
		"remaining": stats.Remaining,
	})
}

func (h *LocationHandler) GetHistory(c *fiber.Ctx) error {
	userID := uint(c.Locals("user_id").(float64))

	samples, err := h.locations.GetByUser(userID, 100)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error fetching location history"})
	}

	return c.JSON(fiber.Map{"locations": samples})
}
