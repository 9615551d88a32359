package usecase

import (
	"errors"
	"time"

	"geofence-attendance-backend/config"
	"geofence-attendance-backend/internal/model"
	"geofence-attendance-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type AuthUsecase struct {
	users     repository.UserRepository
	companies repository.CompanyRepository
}

func NewAuthUsecase(users repository.UserRepository, companies repository.CompanyRepository) *AuthUsecase {
	return &AuthUsecase{users: users, companies: companies}
}

// RegisterCompany bootstraps a new company with its admin account.
func (u *AuthUsecase) RegisterCompany(companyName, email, password, firstName, lastName string) (*model.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	company := &model.Company{Name: companyName}
	if err := u.companies.Create(company); err != nil {
		return nil, err
	}

	admin := &model.User{
		CompanyID: company.ID,
		Email:     email,
		Password:  string(hashed),
		Role:      model.RoleAdmin,
		FirstName: firstName,
		LastName:  lastName,
		IsActive:  true,
	}
	if err := u.users.Create(admin); err != nil {
		return nil, err
	}
	return admin, nil
}

// CreateEmployee adds an employee account under an existing company.
func (u *AuthUsecase) CreateEmployee(companyID uint, email, password string, profile model.User) (*model.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	employee := &model.User{
		CompanyID:   companyID,
		Email:       email,
		Password:    string(hashed),
		Role:        model.RoleEmployee,
		FirstName:   profile.FirstName,
		LastName:    profile.LastName,
		EmployeeID:  profile.EmployeeID,
		Department:  profile.Department,
		PhoneNumber: profile.PhoneNumber,
		IsActive:    true,
	}
	if err := u.users.Create(employee); err != nil {
		return nil, err
	}
	return employee, nil
}

// Login checks the password and issues a 24h JWT.
func (u *AuthUsecase) Login(email, password string) (string, *model.User, error) {
	user, err := u.users.GetByEmail(email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"user_id":    user.ID,
		"company_id": user.CompanyID,
		"role":       user.Role,
		"exp":        time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(config.JWTSecret())
	if err != nil {
		return "", nil, err
	}
	return signed, user, nil
}
