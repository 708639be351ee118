package appointment

import "github.com/barbearia-app/booking-api/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCanceled  Status = "canceled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCanceled:
		return true
	}
	return false
}

// ===============================
// Transition guards
// ===============================

// CanCancel allows cancellation from pending or confirmed. Confirmed and
// canceled are otherwise terminal, so canceling twice is rejected rather
// than re-applied.
func CanCancel(current Status) error {
	if current != StatusPending && current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanConfirm allows confirmation only from pending.
func CanConfirm(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}
