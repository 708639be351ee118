package appointment

import (
	"context"

	domain "github.com/barbearia-app/booking-api/internal/domain/appointment"
	"github.com/barbearia-app/booking-api/internal/dto"
)

// ListMyAppointments returns the caller's appointments, date ascending,
// with the derived display state computed on read.
type ListMyAppointments struct {
	repo  domain.Repository
	clock TimeProvider
}

func NewListMyAppointments(repo domain.Repository, tz string) *ListMyAppointments {
	return &ListMyAppointments{
		repo:  repo,
		clock: shopClock{tz: tz},
	}
}

func (uc *ListMyAppointments) Execute(
	ctx context.Context,
	customerID uint,
) ([]dto.AppointmentListDTO, error) {

	appointments, err := uc.repo.ListAppointmentsByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for i := range appointments {
		ap := &appointments[i]
		out = append(out, dto.AppointmentListDTO{
			ID:         ap.ID,
			Code:       ap.Code,
			Date:       ap.Date,
			Time:       ap.Time,
			Status:     ap.Status,
			State:      domain.DisplayState(ap, now),
			BarberName: ap.Barber.Name,
			CreatedAt:  ap.CreatedAt,
		})
	}

	return out, nil
}
