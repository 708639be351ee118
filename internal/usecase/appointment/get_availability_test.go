package appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/barbearia-app/booking-api/internal/domain/appointment"
	"github.com/barbearia-app/booking-api/internal/domain/schedule"
	"github.com/barbearia-app/booking-api/internal/httperr"
	"github.com/barbearia-app/booking-api/internal/metrics"
	"github.com/barbearia-app/booking-api/internal/models"
)

var (
	activeBarber = models.Barber{ID: 1, Name: "Barbeiro 1", Active: true}

	// 2026-09-01 is a Tuesday, 2026-09-05 a Saturday, 2026-09-06 a Sunday.
	tuesday  = "2026-09-01"
	saturday = "2026-09-05"
	sunday   = "2026-09-06"
)

func newAvailabilityUC(repo domain.Repository, now time.Time) *GetAvailability {
	uc := NewGetAvailability(repo, schedule.DefaultConfig(), metrics.New(prometheus.NewRegistry()), "UTC")
	uc.clock = fixedClock{t: now}
	return uc
}

func friday10h() time.Time {
	return time.Date(2026, time.August, 28, 10, 0, 0, 0, time.UTC)
}

func TestGetAvailability_CleanWeekdayOffersFullGrid(t *testing.T) {
	repo := newFakeRepo(activeBarber)
	uc := newAvailabilityUC(repo, friday10h())

	times, err := uc.Execute(context.Background(), 1, tuesday)
	require.NoError(t, err)
	assert.Len(t, times, 16)
	assert.Equal(t, "08:00", times[0])
	assert.Equal(t, "17:30", times[15])
}

func TestGetAvailability_PendingBookingBlocksSlot(t *testing.T) {
	repo := newFakeRepo(activeBarber)
	repo.appointments = append(repo.appointments, &models.Appointment{
		ID: 1, BarberID: 1, Date: tuesday, Time: "10:00",
		Status: string(domain.StatusPending),
	})
	uc := newAvailabilityUC(repo, friday10h())

	times, err := uc.Execute(context.Background(), 1, tuesday)
	require.NoError(t, err)
	assert.Len(t, times, 15)
	assert.NotContains(t, times, "10:00")
}

func TestGetAvailability_CanceledBookingFreesSlot(t *testing.T) {
	repo := newFakeRepo(activeBarber)
	repo.appointments = append(repo.appointments, &models.Appointment{
		ID: 1, BarberID: 1, Date: tuesday, Time: "10:00",
		Status: string(domain.StatusCanceled),
	})
	uc := newAvailabilityUC(repo, friday10h())

	times, err := uc.Execute(context.Background(), 1, tuesday)
	require.NoError(t, err)
	assert.Len(t, times, 16)
	assert.Contains(t, times, "10:00")
}

func TestGetAvailability_SaturdayMorningOnly(t *testing.T) {
	repo := newFakeRepo(activeBarber)
	uc := newAvailabilityUC(repo, friday10h())

	times, err := uc.Execute(context.Background(), 1, saturday)
	require.NoError(t, err)
	require.Len(t, times, 8)
	assert.Equal(t, "08:00", times[0])
	assert.Equal(t, "11:30", times[7])
}

func TestGetAvailability_SundayEmptyRegardlessOfOccupancy(t *testing.T) {
	repo := newFakeRepo(activeBarber)
	uc := newAvailabilityUC(repo, friday10h())

	times, err := uc.Execute(context.Background(), 1, sunday)
	require.NoError(t, err)
	assert.Empty(t, times)
}

func TestGetAvailability_TodayAfterCutoffIsEmpty(t *testing.T) {
	repo := newFakeRepo(activeBarber)
	now := time.Date(2026, time.September, 1, 19, 0, 0, 0, time.UTC)
	uc := newAvailabilityUC(repo, now)

	times, err := uc.Execute(context.Background(), 1, tuesday)
	require.NoError(t, err)
	assert.Empty(t, times)
}

func TestGetAvailability_OccupancyFetchFailurePropagates(t *testing.T) {
	repo := newFakeRepo(activeBarber)
	repo.occupiedErr = errors.New("backend down")
	uc := newAvailabilityUC(repo, friday10h())

	times, err := uc.Execute(context.Background(), 1, tuesday)
	require.Error(t, err, "fetch failure must never read as all-free")
	assert.Nil(t, times)
}

func TestGetAvailability_BarberLookupFailureIsNotNotFound(t *testing.T) {
	repo := newFakeRepo(activeBarber)
	repo.barberErr = errors.New("connection refused")
	uc := newAvailabilityUC(repo, friday10h())

	_, err := uc.Execute(context.Background(), 1, tuesday)
	require.Error(t, err)
	assert.Empty(t, httperr.BusinessCode(err), "a backend failure must not read as a missing barber")
}

func TestGetAvailability_UnknownBarber(t *testing.T) {
	repo := newFakeRepo(activeBarber)
	uc := newAvailabilityUC(repo, friday10h())

	_, err := uc.Execute(context.Background(), 99, tuesday)
	assert.True(t, httperr.IsBusiness(err, "barber_not_found"))
}

func TestGetAvailability_InvalidDate(t *testing.T) {
	repo := newFakeRepo(activeBarber)
	uc := newAvailabilityUC(repo, friday10h())

	_, err := uc.Execute(context.Background(), 1, "01/09/2026")
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))
}
