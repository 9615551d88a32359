package model

import "gorm.io/gorm"

// Holiday marks a date as non-working for every geofence of the company.
type Holiday struct {
	gorm.Model
	CompanyID   uint   `json:"company_id" gorm:"index"`
	Date        string `json:"date" gorm:"not null"` // format YYYY-MM-DD
	Description string `json:"description"`
}
