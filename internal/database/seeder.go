package database

import (
	"encoding/json"
	"fmt"

	"geofence-attendance-backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func intPtr(v int) *int { return &v }

// Seed fills an empty database with a demo company, accounts and geofences.
// Safe to rerun: it bails out when the demo company already exists.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Company{}).Where("name = ?", "Acme Corp").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		fmt.Println("Seed data already present, skipping")
		return nil
	}

	company := model.Company{Name: "Acme Corp"}
	if err := db.Create(&company).Error; err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	users := []model.User{
		{
			CompanyID: company.ID,
			Email:     "admin@acme.test",
			Password:  string(hashed),
			Role:      model.RoleAdmin,
			FirstName: "Asha",
			LastName:  "Rao",
			IsActive:  true,
		},
		{
			CompanyID:  company.ID,
			Email:      "employee@acme.test",
			Password:   string(hashed),
			Role:       model.RoleEmployee,
			FirstName:  "Ravi",
			LastName:   "Kumar",
			EmployeeID: "EMP-001",
			Department: "Engineering",
			IsActive:   true,
		},
	}
	if err := db.Create(&users).Error; err != nil {
		return err
	}

	// Main office: 100m circle around the Bangalore city center,
	// working 09:00-18:00, Monday to Friday
	office := model.Geofence{
		CompanyID:    company.ID,
		CreatedBy:    users[0].ID,
		Name:         "Head Office",
		Address:      "MG Road, Bangalore",
		Type:         model.GeofenceTypeCircle,
		Latitude:     12.9716,
		Longitude:    77.5946,
		RadiusMeter:  100,
		WorkingStart: intPtr(9 * 60),
		WorkingEnd:   intPtr(18 * 60),
		WorkingDays:  "Monday,Tuesday,Wednesday,Thursday,Friday",
		Timezone:     "Asia/Kolkata",
		IsActive:     true,
	}
	if err := db.Create(&office).Error; err != nil {
		return err
	}

	// Polygonal warehouse zone next to the office
	ring, err := json.Marshal([][2]float64{
		{12.9740, 77.5960},
		{12.9740, 77.5980},
		{12.9760, 77.5980},
		{12.9760, 77.5960},
	})
	if err != nil {
		return err
	}
	warehouse := model.Geofence{
		CompanyID:    company.ID,
		CreatedBy:    users[0].ID,
		Name:         "Warehouse",
		Type:         model.GeofenceTypePolygon,
		Polygon:      string(ring),
		WorkingStart: intPtr(8 * 60),
		WorkingEnd:   intPtr(20 * 60),
		WorkingDays:  "Monday,Tuesday,Wednesday,Thursday,Friday,Saturday",
		Timezone:     "Asia/Kolkata",
		IsActive:     true,
	}
	if err := db.Create(&warehouse).Error; err != nil {
		return err
	}

	holidays := []model.Holiday{
		{CompanyID: company.ID, Date: "2026-01-26", Description: "Republic Day"},
		{CompanyID: company.ID, Date: "2026-08-15", Description: "Independence Day"},
	}
	if err := db.Create(&holidays).Error; err != nil {
		return err
	}

	fmt.Println("Seed complete: company", company.ID, "with", len(users), "users and 2 geofences")
	return nil
}
