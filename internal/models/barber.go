package models

import "time"

// Barber is the bookable resource. The active flag only gates new
// bookings; appointments already on the books stay valid when a barber
// is deactivated.
type Barber struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name   string `gorm:"size:100;not null" json:"name"`
	Active bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
