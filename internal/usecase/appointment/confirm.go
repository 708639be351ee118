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

// ConfirmAppointment is the admin-initiated confirm, recording that the
// service was rendered. The domain guard rejects it before the scheduled
// instant.
type ConfirmAppointment struct {
	repo  domain.Repository
	audit Auditor
	m     *metrics.Metrics
	clock TimeProvider
}

func NewConfirmAppointment(
	repo domain.Repository,
	auditor Auditor,
	m *metrics.Metrics,
	tz string,
) *ConfirmAppointment {
	return &ConfirmAppointment{
		repo:  repo,
		audit: auditor,
		m:     m,
		clock: shopClock{tz: tz},
	}
}

func (uc *ConfirmAppointment) Execute(
	ctx context.Context,
	adminID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrBusiness("appointment_not_found")
		}
		return nil, err
	}

	now := uc.clock.Now()
	if err := domain.Confirm(ap, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.m.AppointmentsConfirmed.Inc()
	uc.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "appointment_confirmed",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
