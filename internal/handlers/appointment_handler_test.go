package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/barbearia-app/booking-api/internal/domain/appointment"
	"github.com/barbearia-app/booking-api/internal/domain/schedule"
	"github.com/barbearia-app/booking-api/internal/metrics"
	"github.com/barbearia-app/booking-api/internal/models"
	ucAppointment "github.com/barbearia-app/booking-api/internal/usecase/appointment"
)

// stubRepo serves the availability endpoint tests. Only the lookups the
// endpoint touches are implemented.
type stubRepo struct {
	occupied    []string
	occupiedErr error
}

func (s *stubRepo) GetBarberByID(_ context.Context, id uint) (*models.Barber, error) {
	if id != 1 {
		return nil, domain.ErrNotFound
	}
	return &models.Barber{ID: 1, Name: "Barbeiro 1", Active: true}, nil
}

func (s *stubRepo) ListBarbers(context.Context, bool) ([]models.Barber, error) {
	return []models.Barber{{ID: 1, Name: "Barbeiro 1", Active: true}}, nil
}

func (s *stubRepo) ListOccupiedTimes(context.Context, uint, string) ([]string, error) {
	return s.occupied, s.occupiedErr
}

func (s *stubRepo) CreateAppointment(context.Context, *models.Appointment) error {
	return errors.New("not implemented")
}

func (s *stubRepo) GetAppointmentForCustomer(context.Context, uint, uint) (*models.Appointment, error) {
	return nil, errors.New("not implemented")
}

func (s *stubRepo) GetAppointmentByID(context.Context, uint) (*models.Appointment, error) {
	return nil, errors.New("not implemented")
}

func (s *stubRepo) UpdateAppointment(context.Context, *models.Appointment) error {
	return errors.New("not implemented")
}

func (s *stubRepo) ListAppointmentsByCustomer(context.Context, uint) ([]models.Appointment, error) {
	return nil, errors.New("not implemented")
}

func (s *stubRepo) ListAppointments(context.Context, domain.ListFilter) ([]models.Appointment, error) {
	return nil, errors.New("not implemented")
}

var _ domain.Repository = (*stubRepo)(nil)

func availabilityRouter(repo domain.Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)

	uc := ucAppointment.NewGetAvailability(
		repo,
		schedule.DefaultConfig(),
		metrics.New(prometheus.NewRegistry()),
		"UTC",
	)
	h := NewAppointmentHandler(uc, nil, nil, nil)

	r := gin.New()
	r.GET("/api/availability", h.Availability)
	return r
}

func getAvailability(r *gin.Engine, query string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/availability"+query, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// nextWeekday returns the next date after today falling on the given
// weekday, formatted for the query string.
func nextWeekday(day time.Weekday) string {
	d := time.Now().UTC().AddDate(0, 0, 1)
	for d.Weekday() != day {
		d = d.AddDate(0, 0, 1)
	}
	return d.Format("2006-01-02")
}

func decodeTimes(t *testing.T, w *httptest.ResponseRecorder) []string {
	t.Helper()

	var body struct {
		Times []string `json:"times"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Times
}

func TestAvailability_MissingSelectionIsBadRequest(t *testing.T) {
	r := availabilityRouter(&stubRepo{})

	w := getAvailability(r, "?date="+nextWeekday(time.Tuesday))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "missing_barber")

	w = getAvailability(r, "?barber_id=1")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "missing_date")
}

func TestAvailability_OpenWeekdayReturnsGrid(t *testing.T) {
	r := availabilityRouter(&stubRepo{occupied: []string{"10:00"}})

	w := getAvailability(r, fmt.Sprintf("?barber_id=1&date=%s", nextWeekday(time.Tuesday)))
	require.Equal(t, http.StatusOK, w.Code)

	times := decodeTimes(t, w)
	assert.Len(t, times, 15)
	assert.NotContains(t, times, "10:00")
}

// A closed day is still a successful answer with zero slots, not an error.
// Only a missing selection is a 400.
func TestAvailability_ClosedDayIsEmptyOK(t *testing.T) {
	r := availabilityRouter(&stubRepo{})

	w := getAvailability(r, fmt.Sprintf("?barber_id=1&date=%s", nextWeekday(time.Sunday)))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeTimes(t, w))
}

func TestAvailability_UnknownBarberIsNotFound(t *testing.T) {
	r := availabilityRouter(&stubRepo{})

	w := getAvailability(r, fmt.Sprintf("?barber_id=9&date=%s", nextWeekday(time.Tuesday)))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAvailability_OccupancyFailureIsServerError(t *testing.T) {
	r := availabilityRouter(&stubRepo{occupiedErr: errors.New("backend down")})

	w := getAvailability(r, fmt.Sprintf("?barber_id=1&date=%s", nextWeekday(time.Tuesday)))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "availability_unknown")
}
