package domain

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusCompleted AppointmentStatus = "completed"
)

// IsValid returns true for a known status
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// Appointment represents a customer appointment on the shared calendar.
// StartsAt is a naive local value; it is stored and compared without any timezone.
type Appointment struct {
	ID              int64
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   *string
	StartsAt        types.WallClock
	DurationMinutes int
	Status          AppointmentStatus
	Notes           *string
	AppointmentType *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment occupies calendar time
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled
}

// CanBeCancelled returns true if the appointment can be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// CanTransitionTo reports whether the status may change to next.
// Cancelled and completed are terminal; setting the same status is a no-op and allowed.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	if s == next {
		return true
	}
	switch s {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled || next == StatusCompleted
	case StatusConfirmed:
		return next == StatusCancelled || next == StatusCompleted
	default:
		return false
	}
}

// EndsAt returns the exclusive end of the appointment
func (a *Appointment) EndsAt() types.WallClock {
	return a.StartsAt.AddMinutes(a.DurationMinutes)
}

// AppointmentsFilter filter for listing appointments
type AppointmentsFilter struct {
	StartDate        *types.Date        // Inclusive, nil = unbounded
	EndDate          *types.Date        // Inclusive, nil = unbounded
	Status           *AppointmentStatus // Exact status, overrides IncludeCancelled
	IncludeCancelled bool
}

// IsSingleDay returns true if the filter selects exactly one calendar day
func (f AppointmentsFilter) IsSingleDay() bool {
	return f.StartDate != nil && f.EndDate != nil && f.StartDate.Equal(*f.EndDate)
}
