package handler

import (
	"time"

	"geofence-attendance-backend/internal/model"
	"geofence-attendance-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type HolidayHandler struct {
	holidays repository.HolidayRepository
}

func NewHolidayHandler(holidays repository.HolidayRepository) *HolidayHandler {
	return &HolidayHandler{holidays: holidays}
}

type CreateHolidayRequest struct {
	Date        string `json:"date"` // format YYYY-MM-DD
	Description string `json:"description"`
}

func (h *HolidayHandler) Create(c *fiber.Ctx) error {
	companyID := uint(c.Locals("company_id").(float64))

	var req CreateHolidayRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Date must be YYYY-MM-DD"})
	}

	holiday := model.Holiday{
		CompanyID:   companyID,
		Date:        req.Date,
		Description: req.Description,
	}
	if err := h.holidays.Create(&holiday); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error creating holiday"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"holiday": holiday})
}

func (h *HolidayHandler) List(c *fiber.Ctx) error {
	companyID := uint(c.Locals("company_id").(float64))

	holidays, err := h.holidays.GetAll(companyID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error fetching holidays"})
	}

	return c.JSON(fiber.Map{"holidays": holidays})
}

func (h *HolidayHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid holiday id"})
	}

	if err := h.holidays.Delete(uint(id)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error deleting holiday"})
	}

	return c.JSON(fiber.Map{"message": "Holiday deleted"})
}
