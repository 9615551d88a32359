package config

import (
	"fmt"

	"geofence-attendance-backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	// Format: user:password@tcp(host:port)/dbname?charset=utf8mb4&parseTime=True&loc=Local
	dsn := GetEnv("DB_DSN", "root:@tcp(127.0.0.1:3306)/geofence_attendance?charset=utf8mb4&parseTime=True&loc=Local")

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("failed to connect to database: " + err.Error())
	}

	fmt.Println("Database connection established")

	// Auto Migration: create tables from the structs in internal/model
	err = db.AutoMigrate(
		&model.Company{},
		&model.User{},
		&model.Device{},
		&model.Geofence{},
		&model.LocationSample{},
		&model.AttendanceEvent{},
		&model.QueueItem{},
		&model.Holiday{},
	)
	if err != nil {
		panic("auto migration failed: " + err.Error())
	}

	DB = db
}
