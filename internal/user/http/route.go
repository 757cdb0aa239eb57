package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, rateLimit gin.HandlerFunc) {
	authGroup := g.Group("/auth")
	authGroup.Use(rateLimit)
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
	}

	me := g.Group("/me")
	me.Use(authMiddleware)
	{
		me.GET("", h.Me)
	}
}
