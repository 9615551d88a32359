package handler

import (
	"geofence-attendance-backend/internal/model"
	"geofence-attendance-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type AttendanceHandler struct {
	attendance repository.AttendanceRepository
}

func NewAttendanceHandler(attendance repository.AttendanceRepository) *AttendanceHandler {
	return &AttendanceHandler{attendance: attendance}
}

func paging(c *fiber.Ctx) (limit, offset int) {
	limit = c.QueryInt("limit", 100)
	if limit < 1 || limit > 500 {
		limit = 100
	}
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	return limit, (page - 1) * limit
}

func (h *AttendanceHandler) GetMyAttendance(c *fiber.Ctx) error {
	userID := uint(c.Locals("user_id").(float64))
	limit, offset := paging(c)

	events, err := h.attendance.GetByUser(userID, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error fetching attendance"})
	}

	return c.JSON(fiber.Map{"attendance": events})
}

// GetStatus reports whether the user currently holds an open ENTER.
func (h *AttendanceHandler) GetStatus(c *fiber.Ctx) error {
	userID := uint(c.Locals("user_id").(float64))

	last, err := h.attendance.GetLastEvent(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error fetching status"})
	}

	if last == nil || last.EventType != model.EventEnter {
		return c.JSON(fiber.Map{
			"checked_in": false,
			"last_event": last,
		})
	}

	return c.JSON(fiber.Map{
		"checked_in":  true,
		"geofence_id": last.GeofenceID,
		"last_event":  last,
	})
}

func (h *AttendanceHandler) GetCompanyAttendance(c *fiber.Ctx) error {
	companyID := uint(c.Locals("company_id").(float64))
	limit, offset := paging(c)

	events, err := h.attendance.GetByCompany(companyID, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error fetching company attendance"})
	}

	return c.JSON(fiber.Map{"attendance": events})
}
