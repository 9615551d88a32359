package handler

import (
	"encoding/json"

	"geofence-attendance-backend/internal/geo"
	"geofence-attendance-backend/internal/model"
	"geofence-attendance-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type GeofenceHandler struct {
	geofences repository.GeofenceRepository
}

func NewGeofenceHandler(geofences repository.GeofenceRepository) *GeofenceHandler {
	return &GeofenceHandler{geofences: geofences}
}

type CreateGeofenceRequest struct {
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	Address      string       `json:"address"`
	GeofenceType string       `json:"geofence_type"` // circle (default) / polygon
	Latitude     float64      `json:"latitude"`
	Longitude    float64      `json:"longitude"`
	RadiusMeter  float64      `json:"radius_meter"`
	Polygon      [][2]float64 `json:"polygon"` // [lat, lon] pairs
	WorkingStart *int         `json:"working_start"`
	WorkingEnd   *int         `json:"working_end"`
	WorkingDays  string       `json:"working_days"`
	Timezone     string       `json:"timezone"`
}

func (h *GeofenceHandler) Create(c *fiber.Ctx) error {
	userID := uint(c.Locals("user_id").(float64))
	companyID := uint(c.Locals("company_id").(float64))

	var req CreateGeofenceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Name is required"})
	}

	fence := model.Geofence{
		CompanyID:    companyID,
		CreatedBy:    userID,
		Name:         req.Name,
		Description:  req.Description,
		Address:      req.Address,
		Type:         model.GeofenceTypeCircle,
		WorkingStart: req.WorkingStart,
		WorkingEnd:   req.WorkingEnd,
		WorkingDays:  req.WorkingDays,
		Timezone:     req.Timezone,
		IsActive:     true,
	}

	if req.GeofenceType == model.GeofenceTypePolygon {
		if len(req.Polygon) < 3 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Polygon requires at least 3 points"})
		}
		for _, p := range req.Polygon {
			if !geo.ValidCoordinates(p[0], p[1]) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Polygon contains invalid coordinates"})
			}
		}
		encoded, err := json.Marshal(req.Polygon)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid polygon"})
		}
		fence.Type = model.GeofenceTypePolygon
		fence.Polygon = string(encoded)
	} else {
		if !geo.ValidCoordinates(req.Latitude, req.Longitude) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid center coordinates"})
		}
		if req.RadiusMeter < 10 || req.RadiusMeter > 5000 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Radius must be between 10 and 5000 meters"})
		}
		fence.Latitude = req.Latitude
		fence.Longitude = req.Longitude
		fence.RadiusMeter = req.RadiusMeter
	}

	if err := h.geofences.Create(&fence); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error creating geofence"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"geofence": fence})
}

func (h *GeofenceHandler) List(c *fiber.Ctx) error {
	companyID := uint(c.Locals("company_id").(float64))

	fences, err := h.geofences.ListActive(companyID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error fetching geofences"})
	}

	return c.JSON(fiber.Map{"geofences": fences})
}

func (h *GeofenceHandler) Delete(c *fiber.Ctx) error {
	companyID := uint(c.Locals("company_id").(float64))

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid geofence id"})
	}

	fence, err := h.geofences.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Geofence not found"})
	}
	if fence.CompanyID != companyID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Cannot delete geofence from another company"})
	}

	// Soft delete: deactivate so existing attendance rows keep their reference
	if err := h.geofences.Deactivate(fence.ID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error deleting geofence"})
	}

	return c.JSON(fiber.Map{"message": "Geofence deactivated"})
}
