package petphoto

import (
	"net/http"
	"time"

	"github.com/pazurkowo/pet-salon-backend/internal/pkg/apperror"
)

var (
	ErrNotFound = apperror.New(http.StatusNotFound, "photo not found")
	ErrNotImage = apperror.New(http.StatusBadRequest, "uploaded file is not an image")
	ErrTooLarge = apperror.New(http.StatusBadRequest, "uploaded file is too large")
)

// Photo is a pet picture attached to an appointment, so groomers can see
// the animal before the visit.
type Photo struct {
	ID            string // UUID
	AppointmentID string
	OwnerID       string
	Filename      string
	StoragePath   string
	ThumbnailPath *string
	ContentType   string
	Size          int64
	CreatedAt     time.Time
}
