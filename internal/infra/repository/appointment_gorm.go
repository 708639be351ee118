package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domain "github.com/barbearia-app/booking-api/internal/domain/appointment"
	"github.com/barbearia-app/booking-api/internal/httperr"
	"github.com/barbearia-app/booking-api/internal/models"
)

const pgUniqueViolation = "23505"

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Barber
// --------------------------------------------------

func (r *AppointmentGormRepository) GetBarberByID(
	ctx context.Context,
	id uint,
) (*models.Barber, error) {

	var barber models.Barber
	if err := r.db.WithContext(ctx).First(&barber, id).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &barber, nil
}

func (r *AppointmentGormRepository) ListBarbers(
	ctx context.Context,
	activeOnly bool,
) ([]models.Barber, error) {

	q := r.db.WithContext(ctx).Order("id ASC")
	if activeOnly {
		q = q.Where("active = true")
	}

	var barbers []models.Barber
	if err := q.Find(&barbers).Error; err != nil {
		return nil, err
	}
	return barbers, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *AppointmentGormRepository) ListOccupiedTimes(
	ctx context.Context,
	barberID uint,
	date string,
) ([]string, error) {

	var times []string
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"barber_id = ? AND date = ? AND status <> ?",
			barberID, date, string(domain.StatusCanceled),
		).
		Order("time ASC").
		Pluck("time", &times).Error; err != nil {
		return nil, err
	}

	return times, nil
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

// CreateAppointment inserts the row and lets the partial unique slot index
// arbitrate races: a unique violation becomes the "slot_taken" business
// error so callers can re-resolve availability instead of retrying blindly.
func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	if err := r.db.WithContext(ctx).Create(ap).Error; err != nil {
		if isUniqueViolation(err) {
			return httperr.ErrBusiness("slot_taken")
		}
		return err
	}
	return nil
}

// notFoundOr normalizes gorm's missing-row sentinel to the domain's, so
// usecases never depend on the ORM. Other errors pass through untouched.
func notFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointmentForCustomer(
	ctx context.Context,
	appointmentID uint,
	customerID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND customer_id = ?", appointmentID, customerID).
		First(&ap).Error; err != nil {
		return nil, notFoundOr(err)
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) GetAppointmentByID(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, appointmentID).Error; err != nil {
		return nil, notFoundOr(err)
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

// --------------------------------------------------
// Listings
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointmentsByCustomer(
	ctx context.Context,
	customerID uint,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Barber").
		Where("customer_id = ?", customerID).
		Order("date ASC, time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Barber").
		Preload("Customer").
		Order("date ASC, time ASC")

	if filter.BarberID != nil {
		q = q.Where("barber_id = ?", *filter.BarberID)
	}
	if filter.Date != nil {
		q = q.Where("date = ?", *filter.Date)
	}
	if filter.Status != nil {
		q = q.Where("status = ?", string(*filter.Status))
	}

	var apps []models.Appointment
	if err := q.Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
