package http

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pazurkowo/pet-salon-backend/internal/auth"
	"github.com/pazurkowo/pet-salon-backend/internal/petphoto"
	"github.com/pazurkowo/pet-salon-backend/internal/pkg/request"
	"github.com/pazurkowo/pet-salon-backend/internal/pkg/response"
)

type Handler struct {
	service petphoto.Service
}

func NewHandler(service petphoto.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Upload(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid appointment id"})
		return
	}

	header, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo is required"})
		return
	}

	p, err := h.service.Upload(c.Request.Context(), uri.ID, auth.GetUserID(c), header)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewPhotoResponse(p))
}

func (h *Handler) List(c *gin.Context) {
	appointmentID := c.Query("appointment_id")
	if appointmentID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "appointment_id is required"})
		return
	}

	photos, err := h.service.ListByAppointment(c.Request.Context(), appointmentID, auth.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]PhotoResponse, len(photos))
	for i, p := range photos {
		items[i] = NewPhotoResponse(p)
	}
	c.JSON(http.StatusOK, response.NewListResponse(items))
}

func (h *Handler) Download(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid photo id"})
		return
	}

	rc, p, err := h.service.Download(c.Request.Context(), uri.ID, auth.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	defer rc.Close()

	c.DataFromReader(http.StatusOK, p.Size, p.ContentType, rc, nil)
}

func (h *Handler) Thumbnail(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid photo id"})
		return
	}

	rc, _, err := h.service.DownloadThumbnail(c.Request.Context(), uri.ID, auth.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	defer rc.Close()

	// Thumbnails are re-encoded as JPEG regardless of the source format.
	c.Header("Content-Type", "image/jpeg")
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, rc)
}

func (h *Handler) Delete(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid photo id"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), uri.ID, auth.GetUserID(c)); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
