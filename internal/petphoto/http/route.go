package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	upload := g.Group("/appointments/:id/photos")
	upload.Use(authMiddleware)
	{
		upload.POST("", h.Upload)
	}

	photos := g.Group("/photos")
	photos.Use(authMiddleware)
	{
		photos.GET("", h.List)
		photos.GET("/:id", h.Download)
		photos.GET("/:id/thumbnail", h.Thumbnail)
		photos.DELETE("/:id", h.Delete)
	}
}
