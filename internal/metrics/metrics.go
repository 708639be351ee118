package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the booking-domain counters. HTTP-level metrics come from
// the request middleware; these track business outcomes.
type Metrics struct {
	AvailabilityRequests  prometheus.Counter
	BookingsCreated       prometheus.Counter
	BookingConflicts      prometheus.Counter
	AppointmentsCanceled  prometheus.Counter
	AppointmentsConfirmed prometheus.Counter
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		AvailabilityRequests: factory.NewCounter(prometheus.CounterOpts{
			Name: "booking_availability_requests_total",
			Help: "Availability resolutions performed.",
		}),
		BookingsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "booking_appointments_created_total",
			Help: "Appointments committed successfully.",
		}),
		BookingConflicts: factory.NewCounter(prometheus.CounterOpts{
			Name: "booking_slot_conflicts_total",
			Help: "Commits rejected because the slot was already taken.",
		}),
		AppointmentsCanceled: factory.NewCounter(prometheus.CounterOpts{
			Name: "booking_appointments_canceled_total",
			Help: "Appointments canceled by customers.",
		}),
		AppointmentsConfirmed: factory.NewCounter(prometheus.CounterOpts{
			Name: "booking_appointments_confirmed_total",
			Help: "Appointments confirmed by the admin.",
		}),
	}
}
