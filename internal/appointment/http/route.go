package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	// Availability is public: clients browse free slots before logging in.
	availability := g.Group("/availability")
	{
		availability.GET("/slots/:date", h.AvailableSlots)
		availability.GET("/week/:start_date", h.WeeklySchedule)
	}

	appointments := g.Group("/appointments")
	appointments.Use(authMiddleware)
	{
		appointments.POST("", h.Create)
		appointments.GET("/history", h.History)
		appointments.PUT("/:id", h.Update)
		appointments.DELETE("/:id", h.Cancel)
	}
}
