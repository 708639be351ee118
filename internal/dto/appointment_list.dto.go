package dto

import "time"

// AppointmentListDTO is the listing shape shared by the customer and admin
// views. State is the derived display state ("completed" included); Status
// is the stored lifecycle status.
type AppointmentListDTO struct {
	ID     uint   `json:"id"`
	Code   string `json:"code"`
	Date   string `json:"date"`
	Time   string `json:"time"`
	Status string `json:"status"`
	State  string `json:"state"`

	BarberName string `json:"barber_name"`

	ClientName  string `json:"client_name,omitempty"`
	ClientEmail string `json:"client_email,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
