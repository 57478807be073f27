package models

import "gorm.io/gorm"

// Consultation is a request for a consultation session.
// CreatedAt/UpdatedAt come from gorm.Model: set on insert,
// refreshed on every update.
type Consultation struct {
	gorm.Model
	Name    string `json:"name" gorm:"not null"`
	Email   string `json:"email" gorm:"not null"`
	Phone   string `json:"phone"`
	Topic   string `json:"topic" gorm:"not null"`
	Message string `json:"message" gorm:"type:text"`
	Status  string `json:"status" gorm:"default:'pending'"` // pending, scheduled, closed
}
