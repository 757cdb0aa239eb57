package petphoto

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/pazurkowo/pet-salon-backend/internal/appointment"
	"github.com/pazurkowo/pet-salon-backend/internal/pkg/storage"
)

const maxUploadBytes = 10 << 20 // 10 MiB

type Service interface {
	// Upload attaches a pet photo to the caller's appointment.
	Upload(ctx context.Context, appointmentID, callerID string, header *multipart.FileHeader) (*Photo, error)

	ListByAppointment(ctx context.Context, appointmentID, callerID string) ([]*Photo, error)

	// Download streams the original photo; DownloadThumbnail streams the
	// derived thumbnail (falling back to the original if none exists).
	Download(ctx context.Context, id, callerID string) (io.ReadCloser, *Photo, error)
	DownloadThumbnail(ctx context.Context, id, callerID string) (io.ReadCloser, *Photo, error)

	Delete(ctx context.Context, id, callerID string) error
}

type service struct {
	repo         Repository
	appointments appointment.Service
	store        storage.Storage
	images       *storage.ImageProcessor
}

func NewService(repo Repository, appointments appointment.Service, store storage.Storage) Service {
	return &service{
		repo:         repo,
		appointments: appointments,
		store:        store,
		images:       storage.NewImageProcessor(),
	}
}

func (s *service) Upload(ctx context.Context, appointmentID, callerID string, header *multipart.FileHeader) (*Photo, error) {
	// Only the appointment's owner may attach photos to it.
	a, err := s.appointments.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if a.OwnerID != callerID {
		return nil, appointment.ErrForbidden
	}

	if header.Size > maxUploadBytes {
		return nil, ErrTooLarge
	}
	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return nil, ErrNotImage
	}

	src, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	// Buffer the whole upload; pet photos are small enough for that and the
	// content is read twice (original save + thumbnail).
	content, err := io.ReadAll(io.LimitReader(src, maxUploadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}
	if len(content) > maxUploadBytes {
		return nil, ErrTooLarge
	}

	photoID := uuid.New().String()
	shard := photoID[:2]
	ext := strings.ToLower(filepath.Ext(header.Filename))
	storagePath := fmt.Sprintf("photos/%s/%s%s", shard, photoID, ext)

	if err := s.store.Save(ctx, storagePath, bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("failed to save photo: %w", err)
	}

	var thumbnailPath *string
	if thumb, err := s.images.Thumbnail(bytes.NewReader(content), 200, 200); err == nil {
		tPath := fmt.Sprintf("photos/%s/%s_thumb.jpg", shard, photoID)
		if err := s.store.Save(ctx, tPath, thumb); err == nil {
			thumbnailPath = &tPath
		}
	}

	p := &Photo{
		ID:            photoID,
		AppointmentID: appointmentID,
		OwnerID:       callerID,
		Filename:      header.Filename,
		StoragePath:   storagePath,
		ThumbnailPath: thumbnailPath,
		ContentType:   contentType,
		Size:          int64(len(content)),
	}

	if err := s.repo.Create(ctx, p); err != nil {
		// The DB row is the source of truth; orphaned files are cleaned up.
		_ = s.store.Delete(ctx, storagePath)
		if thumbnailPath != nil {
			_ = s.store.Delete(ctx, *thumbnailPath)
		}
		return nil, err
	}
	return p, nil
}

func (s *service) ListByAppointment(ctx context.Context, appointmentID, callerID string) ([]*Photo, error) {
	a, err := s.appointments.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if a.OwnerID != callerID {
		return nil, appointment.ErrForbidden
	}
	return s.repo.ListByAppointment(ctx, appointmentID)
}

func (s *service) Download(ctx context.Context, id, callerID string) (io.ReadCloser, *Photo, error) {
	p, err := s.authorized(ctx, id, callerID)
	if err != nil {
		return nil, nil, err
	}

	rc, err := s.store.Get(ctx, p.StoragePath)
	if err != nil {
		return nil, nil, ErrNotFound
	}
	return rc, p, nil
}

func (s *service) DownloadThumbnail(ctx context.Context, id, callerID string) (io.ReadCloser, *Photo, error) {
	p, err := s.authorized(ctx, id, callerID)
	if err != nil {
		return nil, nil, err
	}

	path := p.StoragePath
	if p.ThumbnailPath != nil {
		path = *p.ThumbnailPath
	}

	rc, err := s.store.Get(ctx, path)
	if err != nil {
		return nil, nil, ErrNotFound
	}
	return rc, p, nil
}

func (s *service) Delete(ctx context.Context, id, callerID string) error {
	p, err := s.authorized(ctx, id, callerID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	// Best effort; a leftover file on disk is harmless.
	_ = s.store.Delete(ctx, p.StoragePath)
	if p.ThumbnailPath != nil {
		_ = s.store.Delete(ctx, *p.ThumbnailPath)
	}
	return nil
}

func (s *service) authorized(ctx context.Context, id, callerID string) (*Photo, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.OwnerID != callerID {
		return nil, appointment.ErrForbidden
	}
	return p, nil
}
