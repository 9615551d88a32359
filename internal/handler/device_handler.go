package handler

import (
	"geofence-attendance-backend/internal/model"
	"geofence-attendance-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type DeviceHandler struct {
	devices repository.DeviceRepository
}

func NewDeviceHandler(devices repository.DeviceRepository) *DeviceHandler {
	return &DeviceHandler{devices: devices}
}

type RegisterDeviceRequest struct {
	Brand     string `json:"brand"`
	Series    string `json:"series"`
	PushToken string `json:"push_token"`
}

// Register creates a device record with a generated UUID. The UUID keys the
// device's offline queue and must be sent back on sync requests.
func (h *DeviceHandler) Register(c *fiber.Ctx) error {
	userID := uint(c.Locals("user_id").(float64))

	var req RegisterDeviceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	device := model.Device{
		UserID:    userID,
		UUID:      uuid.NewString(),
		Brand:     req.Brand,
		Series:    req.Series,
		PushToken: req.PushToken,
	}

	if err := h.devices.Create(&device); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error registering device"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"device": device})
}

func (h *DeviceHandler) ListMine(c *fiber.Ctx) error {
	userID := uint(c.Locals("user_id").(float64))

	devices, err := h.devices.GetByUser(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error fetching devices"})
	}

	return c.JSON(fiber.Map{"devices": devices})
}
