package model

import "gorm.io/gorm"

type Device struct {
	gorm.Model
	UserID    uint   `json:"user_id"`
	UUID      string `json:"uuid" gorm:"unique;not null"` // generated token, identifies the offline queue owner
	Brand     string `json:"brand"`                       // e.g. Samsung, Xiaomi
	Series    string `json:"series"`                      // e.g. Galaxy S21, Redmi Note 10
	PushToken string `json:"push_token"`                  // for push notifications
}
