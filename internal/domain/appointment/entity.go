package appointment

import (
	"time"

	"github.com/barbearia-app/booking-api/internal/domain/schedule"
	"github.com/barbearia-app/booking-api/internal/httperr"
	"github.com/barbearia-app/booking-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// ScheduledAt resolves the appointment's date and time to the instant it
// occurs, in the given location.
func ScheduledAt(ap *models.Appointment, loc *time.Location) (time.Time, error) {
	date, err := time.ParseInLocation("2006-01-02", ap.Date, loc)
	if err != nil {
		return time.Time{}, err
	}
	return schedule.SlotInstant(date, ap.Time)
}

// Cancel transitions a pending or confirmed appointment to canceled.
// Only future appointments can be canceled; once the scheduled instant has
// passed the slot was held, canceled or not.
func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	at, err := ScheduledAt(ap, now.Location())
	if err != nil {
		return httperr.ErrBusiness("invalid_date_or_time")
	}
	if !at.After(now) {
		return httperr.ErrBusiness("too_late_to_cancel")
	}

	ap.Status = string(StatusCanceled)
	ap.CanceledAt = &now
	return nil
}

// Confirm transitions a pending appointment to confirmed. Confirmation
// records that the service was rendered, so it is only allowed at or after
// the scheduled instant.
func Confirm(ap *models.Appointment, now time.Time) error {
	if err := CanConfirm(Status(ap.Status)); err != nil {
		return err
	}

	at, err := ScheduledAt(ap, now.Location())
	if err != nil {
		return httperr.ErrBusiness("invalid_date_or_time")
	}
	if now.Before(at) {
		return httperr.ErrBusiness("not_yet_confirmable")
	}

	ap.Status = string(StatusConfirmed)
	ap.ConfirmedAt = &now
	return nil
}

// DisplayState derives the presentation state from the stored status and
// the clock. "completed" is never persisted: a pending appointment whose
// scheduled instant has passed reads as completed without any background
// sweep, and must not be confused with the stored confirmed status.
func DisplayState(ap *models.Appointment, now time.Time) string {
	switch Status(ap.Status) {
	case StatusCanceled:
		return "canceled"
	case StatusConfirmed:
		return "confirmed"
	}

	at, err := ScheduledAt(ap, now.Location())
	if err == nil && !at.After(now) {
		return "completed"
	}
	return "pending"
}

// Occupies reports whether the appointment blocks its (barber, date, time)
// slot. Canceled appointments never occupy a slot.
func Occupies(ap *models.Appointment) bool {
	return Status(ap.Status) != StatusCanceled
}
