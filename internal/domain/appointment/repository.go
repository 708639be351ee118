package appointment

import (
	"context"
	"errors"

	"github.com/barbearia-app/booking-api/internal/models"
)

// ErrNotFound is returned by lookups when the row does not exist, keeping
// "missing" distinct from transient backend failures. Only the former maps
// to a not-found business error.
var ErrNotFound = errors.New("record not found")

// ListFilter narrows admin appointment listings. Nil fields are ignored.
type ListFilter struct {
	BarberID *uint
	Date     *string
	Status   *Status
}

type Repository interface {
	// -------- Barber --------
	GetBarberByID(
		ctx context.Context,
		id uint,
	) (*models.Barber, error)

	ListBarbers(
		ctx context.Context,
		activeOnly bool,
	) ([]models.Barber, error)

	// -------- Availability --------

	// ListOccupiedTimes returns the grid times blocked for the barber on
	// the given date: every appointment that is not canceled. An error
	// means occupancy is unknown — callers must not treat it as "free".
	ListOccupiedTimes(
		ctx context.Context,
		barberID uint,
		date string,
	) ([]string, error)

	// -------- Appointment (create / conflict) --------

	// CreateAppointment persists a new row. A violation of the partial
	// unique slot index surfaces as the "slot_taken" business error.
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (state change) --------
	GetAppointmentForCustomer(
		ctx context.Context,
		appointmentID uint,
		customerID uint,
	) (*models.Appointment, error)

	GetAppointmentByID(
		ctx context.Context,
		appointmentID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Listings --------
	ListAppointmentsByCustomer(
		ctx context.Context,
		customerID uint,
	) ([]models.Appointment, error)

	ListAppointments(
		ctx context.Context,
		filter ListFilter,
	) ([]models.Appointment, error)
}
