package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pazurkowo/pet-salon-backend/internal/appointment"
	"github.com/pazurkowo/pet-salon-backend/internal/auth"
	"github.com/pazurkowo/pet-salon-backend/internal/pkg/request"
	"github.com/pazurkowo/pet-salon-backend/internal/pkg/response"
	"github.com/pazurkowo/pet-salon-backend/internal/schedule"
)

type Handler struct {
	service appointment.Service
}

func NewHandler(service appointment.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var body BookingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	callerID := auth.GetUserID(c)
	if callerID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	req, err := h.bookingRequest(body, callerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	a, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewAppointmentResponse(a))
}

func (h *Handler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid appointment id"})
		return
	}

	var body BookingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	callerID := auth.GetUserID(c)
	req, err := h.bookingRequest(body, callerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	a, err := h.service.Update(c.Request.Context(), uri.ID, req, callerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewAppointmentResponse(a))
}

func (h *Handler) Cancel(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid appointment id"})
		return
	}

	if err := h.service.Cancel(c.Request.Context(), uri.ID, auth.GetUserID(c)); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) AvailableSlots(c *gin.Context) {
	date, err := time.Parse(DateLayout, c.Param("date"))
	if err != nil {
		response.Error(c, appointment.NewValidationError("date"))
		return
	}

	services := c.QueryArray("services")

	slots, err := h.service.AvailableSlots(c.Request.Context(), date, services)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewSlotsResponse(appointment.DaySchedule{Date: date, Slots: slots}))
}

func (h *Handler) WeeklySchedule(c *gin.Context) {
	startDate, err := time.Parse(DateLayout, c.Param("start_date"))
	if err != nil {
		response.Error(c, appointment.NewValidationError("start_date"))
		return
	}

	services := c.QueryArray("services")

	week, err := h.service.WeeklySchedule(c.Request.Context(), startDate, services)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]SlotsResponse, len(week))
	for i, day := range week {
		items[i] = NewSlotsResponse(day)
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) History(c *gin.Context) {
	callerID := auth.GetUserID(c)
	if callerID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	list, err := h.service.History(c.Request.Context(), callerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]AppointmentResponse, len(list))
	for i, a := range list {
		items[i] = NewAppointmentResponse(a)
	}
	c.JSON(http.StatusOK, response.NewListResponse(items))
}

// bookingRequest converts the wire payload into a service request,
// rejecting malformed date or time values with field-level errors.
func (h *Handler) bookingRequest(body BookingBody, callerID string) (appointment.BookingRequest, error) {
	date, err := time.Parse(DateLayout, body.Date)
	if err != nil {
		return appointment.BookingRequest{}, appointment.NewValidationError("date")
	}

	start, err := schedule.ParseTimeOfDay(body.StartTime)
	if err != nil {
		return appointment.BookingRequest{}, appointment.NewValidationError("start_time")
	}

	return appointment.BookingRequest{
		OwnerID:  callerID,
		PetName:  body.PetName,
		Date:     date,
		Start:    start,
		Services: body.Services,
		Phone:    body.Phone,
		Note:     body.Note,
	}, nil
}
