package handler

import (
	"geofence-attendance-backend/internal/model"
	"geofence-attendance-backend/internal/repository"
	"geofence-attendance-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	users repository.UserRepository
	auth  *usecase.AuthUsecase
}

func NewUserHandler(users repository.UserRepository, auth *usecase.AuthUsecase) *UserHandler {
	return &UserHandler{users: users, auth: auth}
}

type CreateEmployeeRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	EmployeeID  string `json:"employee_id"`
	Department  string `json:"department"`
	PhoneNumber string `json:"phone_number"`
}

func (h *UserHandler) CreateEmployee(c *fiber.Ctx) error {
	companyID := uint(c.Locals("company_id").(float64))

	var req CreateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Email == "" || len(req.Password) < 6 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Email and a password of at least 6 characters are required"})
	}

	if existing, _ := h.users.GetByEmail(req.Email); existing != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Email already exists"})
	}

	employee, err := h.auth.CreateEmployee(companyID, req.Email, req.Password, model.User{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		EmployeeID:  req.EmployeeID,
		Department:  req.Department,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error creating employee"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"user": employee})
}

func (h *UserHandler) ListCompanyUsers(c *fiber.Ctx) error {
	companyID := uint(c.Locals("company_id").(float64))

	users, err := h.users.GetByCompany(companyID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error fetching users"})
	}

	return c.JSON(fiber.Map{"users": users})
}

func (h *UserHandler) DeleteEmployee(c *fiber.Ctx) error {
	companyID := uint(c.Locals("company_id").(float64))

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user id"})
	}

	employee, err := h.users.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Employee not found"})
	}
	if employee.CompanyID != companyID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Cannot delete employee from another company"})
	}
	if employee.Role == model.RoleAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Cannot delete admin users"})
	}

	if err := h.users.Delete(employee.ID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error deleting employee"})
	}

	return c.JSON(fiber.Map{"message": "Employee deleted"})
}

func (h *UserHandler) GetMyProfile(c *fiber.Ctx) error {
	userID := uint(c.Locals("user_id").(float64))

	user, err := h.users.GetByID(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	return c.JSON(fiber.Map{"user": user})
}

type UpdateProfileRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
}

func (h *UserHandler) UpdateMyProfile(c *fiber.Ctx) error {
	userID := uint(c.Locals("user_id").(float64))

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	user, err := h.users.GetByID(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.PhoneNumber = req.PhoneNumber

	if err := h.users.Update(user); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error updating profile"})
	}

	return c.JSON(fiber.Map{"message": "Profile updated", "user": user})
}
