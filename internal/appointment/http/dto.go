package http

import (
	"time"

	"github.com/pazurkowo/pet-salon-backend/internal/appointment"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// BookingBody is the JSON payload for creating or updating an appointment.
// Duration is not accepted from the client; it is always derived from the
// service catalog server-side.
type BookingBody struct {
	PetName   string   `json:"pet_name" binding:"required"`
	Date      string   `json:"date" binding:"required,datetime=2006-01-02"`
	StartTime string   `json:"start_time" binding:"required"`
	Phone     string   `json:"phone" binding:"required,min=7,max=20"`
	Note      string   `json:"note"`
	Services  []string `json:"services" binding:"required,min=1"`
}

type AppointmentResponse struct {
	ID              string    `json:"id"`
	PetName         string    `json:"pet_name"`
	Date            string    `json:"date"`
	StartTime       string    `json:"start_time"`
	EndTime         string    `json:"end_time"`
	Services        []string  `json:"services"`
	DurationMinutes int       `json:"duration_minutes"`
	Phone           string    `json:"phone"`
	Note            string    `json:"note,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func NewAppointmentResponse(a *appointment.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:              a.ID,
		PetName:         a.PetName,
		Date:            a.Date.Format(DateLayout),
		StartTime:       a.Start.String(),
		EndTime:         a.Interval().End().String(),
		Services:        a.Services,
		DurationMinutes: a.DurationMin,
		Phone:           a.Phone,
		Note:            a.Note,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

// SlotsResponse lists bookable start times for one date.
type SlotsResponse struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}

func NewSlotsResponse(day appointment.DaySchedule) SlotsResponse {
	slots := make([]string, len(day.Slots))
	for i, s := range day.Slots {
		slots[i] = s.String()
	}
	return SlotsResponse{
		Date:  day.Date.Format(DateLayout),
		Slots: slots,
	}
}
