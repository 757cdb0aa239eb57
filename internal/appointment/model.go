package appointment

import (
	"net/http"
	"time"

	"github.com/pazurkowo/pet-salon-backend/internal/pkg/apperror"
	"github.com/pazurkowo/pet-salon-backend/internal/schedule"
)

var (
	ErrNotFound           = apperror.New(http.StatusNotFound, "appointment not found")
	ErrForbidden          = apperror.New(http.StatusForbidden, "you do not own this appointment")
	ErrPastTime           = apperror.New(http.StatusBadRequest, "appointments cannot be booked for past dates or times")
	ErrInvalidServices    = apperror.New(http.StatusBadRequest, "invalid or missing services")
	ErrSlotUnavailable    = apperror.New(http.StatusConflict, "the selected time slot is no longer available")
	ErrCancellationWindow = apperror.New(http.StatusBadRequest, "appointments can only be cancelled at least 24 hours before their start")
	ErrStorageUnavailable = apperror.New(http.StatusServiceUnavailable, "appointment storage is temporarily unavailable")
)

// NewValidationError reports a malformed or missing request field.
func NewValidationError(field string) *apperror.AppError {
	return apperror.Newf(http.StatusBadRequest, "invalid value for field %q", field)
}

// Appointment is one grooming visit, owned by exactly one user.
// DurationMin is always the catalog sum of Services at write time; a
// client-supplied duration is never trusted.
type Appointment struct {
	ID          string // UUID
	OwnerID     string // UUID of the booking user
	PetName     string
	Date        time.Time // calendar date; its clock part is ignored
	Start       schedule.TimeOfDay
	Services    []string
	DurationMin int
	Phone       string
	Note        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// StartsAt returns the appointment's start instant in local wall-clock time.
func (a *Appointment) StartsAt() time.Time {
	return a.Start.At(a.Date)
}

// Interval returns the time span the appointment occupies on its date.
func (a *Appointment) Interval() schedule.Interval {
	return schedule.Interval{Start: a.Start, Duration: a.DurationMin}
}
