package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/barbearia-app/booking-api/internal/audit"
	domain "github.com/barbearia-app/booking-api/internal/domain/appointment"
	"github.com/barbearia-app/booking-api/internal/httperr"
	"github.com/barbearia-app/booking-api/internal/models"
)

// fakeRepo is an in-memory domain.Repository that mirrors the database's
// partial unique slot constraint: at most one non-canceled appointment per
// (barber, date, time).
type fakeRepo struct {
	barbers      map[uint]models.Barber
	appointments []*models.Appointment
	nextID       uint

	barberErr   error
	lookupErr   error
	occupiedErr error
	createErr   error
}

func newFakeRepo(barbers ...models.Barber) *fakeRepo {
	r := &fakeRepo{barbers: make(map[uint]models.Barber)}
	for _, b := range barbers {
		r.barbers[b.ID] = b
	}
	return r
}

func (r *fakeRepo) GetBarberByID(_ context.Context, id uint) (*models.Barber, error) {
	if r.barberErr != nil {
		return nil, r.barberErr
	}

	b, ok := r.barbers[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &b, nil
}

func (r *fakeRepo) ListBarbers(_ context.Context, activeOnly bool) ([]models.Barber, error) {
	var out []models.Barber
	for _, b := range r.barbers {
		if !activeOnly || b.Active {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListOccupiedTimes(_ context.Context, barberID uint, date string) ([]string, error) {
	if r.occupiedErr != nil {
		return nil, r.occupiedErr
	}

	var times []string
	for _, ap := range r.appointments {
		if ap.BarberID == barberID && ap.Date == date && domain.Occupies(ap) {
			times = append(times, ap.Time)
		}
	}
	return times, nil
}

func (r *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	if r.createErr != nil {
		return r.createErr
	}

	for _, existing := range r.appointments {
		if existing.BarberID == ap.BarberID &&
			existing.Date == ap.Date &&
			existing.Time == ap.Time &&
			domain.Occupies(existing) {
			return httperr.ErrBusiness("slot_taken")
		}
	}

	r.nextID++
	ap.ID = r.nextID
	ap.CreatedAt = time.Now()

	stored := *ap
	r.appointments = append(r.appointments, &stored)
	return nil
}

func (r *fakeRepo) GetAppointmentForCustomer(_ context.Context, appointmentID, customerID uint) (*models.Appointment, error) {
	if r.lookupErr != nil {
		return nil, r.lookupErr
	}

	for _, ap := range r.appointments {
		if ap.ID == appointmentID && ap.CustomerID == customerID {
			cp := *ap
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeRepo) GetAppointmentByID(_ context.Context, appointmentID uint) (*models.Appointment, error) {
	if r.lookupErr != nil {
		return nil, r.lookupErr
	}

	for _, ap := range r.appointments {
		if ap.ID == appointmentID {
			cp := *ap
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	for i, existing := range r.appointments {
		if existing.ID == ap.ID {
			cp := *ap
			r.appointments[i] = &cp
			return nil
		}
	}
	return errors.New("record not found")
}

func (r *fakeRepo) ListAppointmentsByCustomer(_ context.Context, customerID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.CustomerID == customerID {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListAppointments(_ context.Context, filter domain.ListFilter) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if filter.BarberID != nil && ap.BarberID != *filter.BarberID {
			continue
		}
		if filter.Date != nil && ap.Date != *filter.Date {
			continue
		}
		if filter.Status != nil && ap.Status != string(*filter.Status) {
			continue
		}
		out = append(out, *ap)
	}
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

// fixedClock pins "now" for deterministic eligibility checks.
type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time {
	return c.t
}

// recordingAuditor captures dispatched events synchronously.
type recordingAuditor struct {
	events []audit.Event
}

func (a *recordingAuditor) Dispatch(ev audit.Event) {
	a.events = append(a.events, ev)
}
