package appointment

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/barbearia-app/booking-api/internal/audit"
	domain "github.com/barbearia-app/booking-api/internal/domain/appointment"
	"github.com/barbearia-app/booking-api/internal/domain/schedule"
	"github.com/barbearia-app/booking-api/internal/httperr"
	"github.com/barbearia-app/booking-api/internal/metrics"
	"github.com/barbearia-app/booking-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	CustomerID uint
	BarberID   uint

	Date string // YYYY-MM-DD
	Time string // HH:mm, a slot grid value
}

// ======================================================
// USE CASE
// ======================================================

// CreateAppointment commits a booking. Eligibility is re-checked here, but
// slot occupancy is deliberately not: selection and commit are not atomic
// across the network, so the database's partial unique index is the
// authoritative conflict guard and a lost race surfaces as "slot_taken".
type CreateAppointment struct {
	repo  domain.Repository
	sched schedule.Config
	audit Auditor
	m     *metrics.Metrics
	clock TimeProvider
}

func NewCreateAppointment(
	repo domain.Repository,
	sched schedule.Config,
	auditor Auditor,
	m *metrics.Metrics,
	tz string,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		sched: sched,
		audit: auditor,
		m:     m,
		clock: shopClock{tz: tz},
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	if err := validateInput(in); err != nil {
		return nil, err
	}

	now := uc.clock.Now()

	date, err := time.ParseInLocation("2006-01-02", in.Date, now.Location())
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	barber, err := uc.repo.GetBarberByID(ctx, in.BarberID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrBusiness("barber_not_found")
		}
		return nil, err
	}
	if !barber.Active {
		return nil, httperr.ErrBusiness("barber_unavailable")
	}

	if !uc.sched.DayEligible(date, now) {
		return nil, httperr.ErrBusiness("day_not_bookable")
	}
	if !contains(uc.sched.GridTimes(date), in.Time) {
		return nil, httperr.ErrBusiness("invalid_time")
	}
	if !contains(uc.sched.CandidateTimes(date, now), in.Time) {
		return nil, httperr.ErrBusiness("time_not_bookable")
	}

	ap := &models.Appointment{
		Code:       newBookingCode(),
		CustomerID: in.CustomerID,
		BarberID:   in.BarberID,
		Date:       in.Date,
		Time:       in.Time,
		Status:     string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		if httperr.IsBusiness(err, "slot_taken") {
			uc.m.BookingConflicts.Inc()
			uc.audit.Dispatch(audit.Event{
				UserID: &in.CustomerID,
				Action: "appointment_conflict",
				Entity: "appointment",
				Metadata: map[string]any{
					"barber_id": in.BarberID,
					"date":      in.Date,
					"time":      in.Time,
				},
			})
		}
		return nil, err
	}

	uc.m.BookingsCreated.Inc()
	uc.audit.Dispatch(audit.Event{
		UserID:   &in.CustomerID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

func validateInput(in CreateAppointmentInput) error {
	switch {
	case in.BarberID == 0:
		return httperr.ErrBusiness("missing_barber")
	case in.Date == "":
		return httperr.ErrBusiness("missing_date")
	case in.Time == "":
		return httperr.ErrBusiness("missing_time")
	}
	return nil
}

// newBookingCode derives the short human-readable code shown to the
// customer from a fresh UUID.
func newBookingCode() string {
	return strings.ToUpper(uuid.NewString()[:8])
}

func contains(times []string, hm string) bool {
	for _, t := range times {
		if t == hm {
			return true
		}
	}
	return false
}
