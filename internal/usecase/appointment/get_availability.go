package appointment

import (
	"context"
	"errors"
	"time"

	domain "github.com/barbearia-app/booking-api/internal/domain/appointment"
	"github.com/barbearia-app/booking-api/internal/domain/schedule"
	"github.com/barbearia-app/booking-api/internal/httperr"
	"github.com/barbearia-app/booking-api/internal/metrics"
)

// GetAvailability computes the bookable times for a (barber, date) pair:
// the slot grid minus day rules, minus occupied slots, minus elapsed
// same-day times. An empty result is a valid answer, not an error.
type GetAvailability struct {
	repo  domain.Repository
	sched schedule.Config
	m     *metrics.Metrics
	clock TimeProvider
}

func NewGetAvailability(
	repo domain.Repository,
	sched schedule.Config,
	m *metrics.Metrics,
	tz string,
) *GetAvailability {
	return &GetAvailability{
		repo:  repo,
		sched: sched,
		m:     m,
		clock: shopClock{tz: tz},
	}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	barberID uint,
	dateStr string,
) ([]string, error) {

	uc.m.AvailabilityRequests.Inc()

	now := uc.clock.Now()

	date, err := time.ParseInLocation("2006-01-02", dateStr, now.Location())
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	if _, err := uc.repo.GetBarberByID(ctx, barberID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrBusiness("barber_not_found")
		}
		return nil, err
	}

	candidates := uc.sched.CandidateTimes(date, now)
	if len(candidates) == 0 {
		return []string{}, nil
	}

	// Occupancy failures propagate: treating a fetch error as "all free"
	// would offer slots that may already be booked.
	occupied, err := uc.repo.ListOccupiedTimes(ctx, barberID, dateStr)
	if err != nil {
		return nil, err
	}

	taken := make(map[string]struct{}, len(occupied))
	for _, t := range occupied {
		taken[t] = struct{}{}
	}

	free := make([]string, 0, len(candidates))
	for _, t := range candidates {
		if _, ok := taken[t]; !ok {
			free = append(free, t)
		}
	}

	return free, nil
}
