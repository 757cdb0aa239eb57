package appointment

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/pazurkowo/pet-salon-backend/internal/schedule"
)

// BookingRequest carries the client-controlled fields for creating or
// updating an appointment. Duration is deliberately absent: it is always
// recomputed from the catalog.
type BookingRequest struct {
	OwnerID  string
	PetName  string
	Date     time.Time
	Start    schedule.TimeOfDay
	Services []string
	Phone    string
	Note     string
}

// DaySchedule is one entry of the week-at-a-glance view.
type DaySchedule struct {
	Date  time.Time
	Slots []schedule.TimeOfDay
}

type Service interface {
	Create(ctx context.Context, req BookingRequest) (*Appointment, error)
	GetByID(ctx context.Context, id string) (*Appointment, error)
	Update(ctx context.Context, id string, req BookingRequest, callerID string) (*Appointment, error)
	Cancel(ctx context.Context, id string, callerID string) error
	AvailableSlots(ctx context.Context, date time.Time, services []string) ([]schedule.TimeOfDay, error)
	WeeklySchedule(ctx context.Context, startDate time.Time, services []string) ([]DaySchedule, error)
	History(ctx context.Context, ownerID string) ([]*Appointment, error)
}

// Config tunes the booking workflow. Zero values fall back to defaults.
type Config struct {
	Calendar        schedule.Calendar
	Catalog         schedule.Catalog
	SlotGranularity int           // minutes between candidate starts (default 15)
	CancelWindow    time.Duration // minimum lead time for cancellation (default 24h)
	StorageTimeout  time.Duration // per-query deadline (default 5s)
}

type service struct {
	repo        Repository
	calendar    schedule.Calendar
	catalog     schedule.Catalog
	granularity int
	cancelWin   time.Duration
	storageTO   time.Duration

	now   func() time.Time
	dates *dateLocks
}

func NewService(repo Repository, cfg Config) Service {
	if cfg.SlotGranularity <= 0 {
		cfg.SlotGranularity = 15
	}
	if cfg.CancelWindow <= 0 {
		cfg.CancelWindow = 24 * time.Hour
	}
	if cfg.StorageTimeout <= 0 {
		cfg.StorageTimeout = 5 * time.Second
	}
	return &service{
		repo:        repo,
		calendar:    cfg.Calendar,
		catalog:     cfg.Catalog,
		granularity: cfg.SlotGranularity,
		cancelWin:   cfg.CancelWindow,
		storageTO:   cfg.StorageTimeout,
		now:         time.Now,
		dates:       newDateLocks(),
	}
}

func (s *service) Create(ctx context.Context, req BookingRequest) (*Appointment, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}
	if !req.Start.At(req.Date).After(s.now()) {
		return nil, ErrPastTime
	}
	duration := s.catalog.TotalDuration(req.Services)
	if duration == 0 {
		return nil, ErrInvalidServices
	}

	// Serialize check-then-book per calendar date, otherwise two concurrent
	// requests could both pass the availability check and double-book.
	unlock := s.dates.lock(dateKey(req.Date))
	defer unlock()

	booked, err := s.bookedIntervals(ctx, req.Date, "")
	if err != nil {
		return nil, err
	}
	if !schedule.Fits(s.calendar, req.Date, req.Start, duration, booked) {
		return nil, ErrSlotUnavailable
	}

	a := &Appointment{
		OwnerID:     req.OwnerID,
		PetName:     req.PetName,
		Date:        req.Date,
		Start:       req.Start,
		Services:    req.Services,
		DurationMin: duration,
		Phone:       req.Phone,
		Note:        req.Note,
	}

	qctx, cancel := s.queryCtx(ctx)
	defer cancel()
	if err := s.repo.Create(qctx, a); err != nil {
		return nil, mapStorageErr(err)
	}
	return a, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Appointment, error) {
	qctx, cancel := s.queryCtx(ctx)
	defer cancel()

	a, err := s.repo.GetByID(qctx, id)
	if err != nil {
		return nil, mapStorageErr(err)
	}
	return a, nil
}

func (s *service) Update(ctx context.Context, id string, req BookingRequest, callerID string) (*Appointment, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.OwnerID != callerID {
		return nil, ErrForbidden
	}

	if err := s.validate(req); err != nil {
		return nil, err
	}
	if !req.Start.At(req.Date).After(s.now()) {
		return nil, ErrPastTime
	}
	duration := s.catalog.TotalDuration(req.Services)
	if duration == 0 {
		return nil, ErrInvalidServices
	}

	unlock := s.dates.lock(dateKey(req.Date))
	defer unlock()

	// The edited appointment's own interval must not block its new time.
	booked, err := s.bookedIntervals(ctx, req.Date, id)
	if err != nil {
		return nil, err
	}
	if !schedule.Fits(s.calendar, req.Date, req.Start, duration, booked) {
		return nil, ErrSlotUnavailable
	}

	existing.PetName = req.PetName
	existing.Date = req.Date
	existing.Start = req.Start
	existing.Services = req.Services
	existing.DurationMin = duration
	existing.Phone = req.Phone
	existing.Note = req.Note

	qctx, cancel := s.queryCtx(ctx)
	defer cancel()
	if err := s.repo.Update(qctx, existing); err != nil {
		return nil, mapStorageErr(err)
	}
	return existing, nil
}

func (s *service) Cancel(ctx context.Context, id string, callerID string) error {
	a, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if a.OwnerID != callerID {
		return ErrForbidden
	}
	if a.StartsAt().Sub(s.now()) < s.cancelWin {
		return ErrCancellationWindow
	}

	qctx, cancel := s.queryCtx(ctx)
	defer cancel()
	if err := s.repo.Delete(qctx, id); err != nil {
		return mapStorageErr(err)
	}
	return nil
}

func (s *service) AvailableSlots(ctx context.Context, date time.Time, services []string) ([]schedule.TimeOfDay, error) {
	duration := s.catalog.TotalDuration(services)
	if len(services) == 0 || duration == 0 {
		return nil, ErrInvalidServices
	}
	return s.availableSlots(ctx, date, duration)
}

func (s *service) WeeklySchedule(ctx context.Context, startDate time.Time, services []string) ([]DaySchedule, error) {
	duration := s.catalog.TotalDuration(services)
	if len(services) == 0 || duration == 0 {
		return nil, ErrInvalidServices
	}

	week := make([]DaySchedule, 0, 7)
	for i := 0; i < 7; i++ {
		date := startDate.AddDate(0, 0, i)
		slots, err := s.availableSlots(ctx, date, duration)
		if err != nil {
			return nil, err
		}
		week = append(week, DaySchedule{Date: date, Slots: slots})
	}
	return week, nil
}

func (s *service) History(ctx context.Context, ownerID string) ([]*Appointment, error) {
	qctx, cancel := s.queryCtx(ctx)
	defer cancel()

	list, err := s.repo.ListByOwner(qctx, ownerID)
	if err != nil {
		return nil, mapStorageErr(err)
	}
	return list, nil
}

// availableSlots generates candidate starts for one date and filters them
// through the availability check for the requested duration.
func (s *service) availableSlots(ctx context.Context, date time.Time, duration int) ([]schedule.TimeOfDay, error) {
	booked, err := s.bookedIntervals(ctx, date, "")
	if err != nil {
		return nil, err
	}

	candidates := schedule.Slots(s.calendar, date, s.granularity, s.now())
	available := make([]schedule.TimeOfDay, 0, len(candidates))
	for _, start := range candidates {
		if schedule.Fits(s.calendar, date, start, duration, booked) {
			available = append(available, start)
		}
	}
	return available, nil
}

func (s *service) bookedIntervals(ctx context.Context, date time.Time, excludeID string) ([]schedule.Interval, error) {
	qctx, cancel := s.queryCtx(ctx)
	defer cancel()

	existing, err := s.repo.ListByDate(qctx, date, excludeID)
	if err != nil {
		return nil, mapStorageErr(err)
	}

	intervals := make([]schedule.Interval, len(existing))
	for i, a := range existing {
		intervals[i] = a.Interval()
	}
	return intervals, nil
}

func (s *service) validate(req BookingRequest) error {
	if req.PetName == "" {
		return NewValidationError("pet_name")
	}
	if len(req.Phone) < 7 || len(req.Phone) > 20 {
		return NewValidationError("phone")
	}
	if len(req.Services) == 0 {
		return NewValidationError("services")
	}
	for _, name := range req.Services {
		if !s.catalog.Knows(name) {
			return NewValidationError("services")
		}
	}
	return nil
}

func (s *service) queryCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.storageTO)
}

// mapStorageErr turns a storage deadline expiry into the retryable
// taxonomy error; everything else passes through untouched.
func mapStorageErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrStorageUnavailable
	}
	return err
}

func dateKey(date time.Time) string {
	return date.Format("2006-01-02")
}

// dateLocks hands out one mutex per calendar date so writes to the same day
// are serialized while different days proceed independently.
type dateLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newDateLocks() *dateLocks {
	return &dateLocks{locks: make(map[string]*sync.Mutex)}
}

// lock acquires the mutex for key and returns its unlock func.
func (d *dateLocks) lock(key string) func() {
	d.mu.Lock()
	m, ok := d.locks[key]
	if !ok {
		m = &sync.Mutex{}
		d.locks[key] = m
	}
	d.mu.Unlock()

	m.Lock()
	return m.Unlock
}
