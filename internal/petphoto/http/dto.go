package http

import (
	"time"

	"github.com/pazurkowo/pet-salon-backend/internal/petphoto"
)

type PhotoResponse struct {
	ID            string    `json:"id"`
	AppointmentID string    `json:"appointment_id"`
	Filename      string    `json:"filename"`
	ContentType   string    `json:"content_type"`
	Size          int64     `json:"size"`
	URL           string    `json:"url"`
	ThumbnailURL  *string   `json:"thumbnail_url,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func NewPhotoResponse(p *petphoto.Photo) PhotoResponse {
	resp := PhotoResponse{
		ID:            p.ID,
		AppointmentID: p.AppointmentID,
		Filename:      p.Filename,
		ContentType:   p.ContentType,
		Size:          p.Size,
		URL:           "/v1/photos/" + p.ID,
		CreatedAt:     p.CreatedAt,
	}
	if p.ThumbnailPath != nil {
		t := "/v1/photos/" + p.ID + "/thumbnail"
		resp.ThumbnailURL = &t
	}
	return resp
}
