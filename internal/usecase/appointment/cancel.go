package appointment

import (
	"context"
	"errors"

	"github.com/barbearia-app/booking-api/internal/audit"
	domain "github.com/barbearia-app/booking-api/internal/domain/appointment"
	"github.com/barbearia-app/booking-api/internal/httperr"
	"github.com/barbearia-app/booking-api/internal/metrics"
	"github.com/barbearia-app/booking-api/internal/models"
)

// CancelAppointment is the customer-initiated cancel. Looking the row up by
// (id, customer) doubles as the ownership check: another customer's
// appointment is simply not found.
type CancelAppointment struct {
	repo  domain.Repository
	audit Auditor
	m     *metrics.Metrics
	clock TimeProvider
}

func NewCancelAppointment(
	repo domain.Repository,
	auditor Auditor,
	m *metrics.Metrics,
	tz string,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: auditor,
		m:     m,
		clock: shopClock{tz: tz},
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	customerID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentForCustomer(ctx, appointmentID, customerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrBusiness("appointment_not_found")
		}
		return nil, err
	}

	now := uc.clock.Now()
	if err := domain.Cancel(ap, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.m.AppointmentsCanceled.Inc()
	uc.audit.Dispatch(audit.Event{
		UserID:   &customerID,
		Action:   "appointment_canceled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
