package models

import "time"

// Appointment holds a booked slot. Date and Time carry the calendar date
// ("2006-01-02") and grid value ("15:04") exactly as selected; the core
// never converts them across timezones. Rows are never deleted —
// cancellation is a status change so history is preserved.
//
// A partial unique index on (barber_id, date, time) where status is not
// 'canceled' (created in internal/db) is the authoritative double-booking
// guard.
type Appointment struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Code string `gorm:"size:8;index" json:"code"`

	CustomerID uint `gorm:"index" json:"customer_id"`
	Customer   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	BarberID uint   `gorm:"index" json:"barber_id"`
	Barber   Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Date string `gorm:"size:10;not null" json:"date"`
	Time string `gorm:"size:5;not null" json:"time"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	CanceledAt  *time.Time `json:"canceled_at"`
	ConfirmedAt *time.Time `json:"confirmed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
