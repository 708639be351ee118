package appointment

import (
	"context"

	domain "github.com/barbearia-app/booking-api/internal/domain/appointment"
	"github.com/barbearia-app/booking-api/internal/dto"
	"github.com/barbearia-app/booking-api/internal/httperr"
)

// ListAppointments is the admin view over every appointment, optionally
// narrowed by barber, date, and status.
type ListAppointments struct {
	repo  domain.Repository
	clock TimeProvider
}

func NewListAppointments(repo domain.Repository, tz string) *ListAppointments {
	return &ListAppointments{
		repo:  repo,
		clock: shopClock{tz: tz},
	}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	filter domain.ListFilter,
) ([]dto.AppointmentListDTO, error) {

	if filter.Status != nil && !filter.Status.Valid() {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	appointments, err := uc.repo.ListAppointments(ctx, filter)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for i := range appointments {
		ap := &appointments[i]
		out = append(out, dto.AppointmentListDTO{
			ID:          ap.ID,
			Code:        ap.Code,
			Date:        ap.Date,
			Time:        ap.Time,
			Status:      ap.Status,
			State:       domain.DisplayState(ap, now),
			BarberName:  ap.Barber.Name,
			ClientName:  ap.Customer.Name,
			ClientEmail: ap.Customer.Email,
			CreatedAt:   ap.CreatedAt,
		})
	}

	return out, nil
}
