package model

import "gorm.io/gorm"

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

type User struct {
	gorm.Model
	CompanyID   uint   `json:"company_id"`
	Email       string `json:"email" gorm:"unique;not null"`
	Password    string `json:"-"`
	Role        string `json:"role" gorm:"default:employee"` // admin / employee
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	EmployeeID  string `json:"employee_id"`
	Department  string `json:"department"`
	PhoneNumber string `json:"phone_number"`
	IsActive    bool   `json:"is_active" gorm:"default:true"`

	// Relations
	Company Company  `json:"-" gorm:"foreignKey:CompanyID"`
	Devices []Device `json:"devices,omitempty"`
}

type Company struct {
	gorm.Model
	Name string `json:"name" gorm:"not null"`

	// Relations
	Users     []User     `json:"users,omitempty"`
	Geofences []Geofence `json:"geofences,omitempty"`
}
