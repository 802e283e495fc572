package service

import (
	"context"
	"errors"

	"streetshine/internal/cache"
	"streetshine/internal/db"
	"streetshine/internal/metrics"
	"streetshine/internal/validation"

	"github.com/rs/zerolog"
)

// ErrInvalidStatus is returned when a status update names something outside
// the pending/confirmed/completed set.
var ErrInvalidStatus = errors.New("invalid booking status")

// BookingStore is the persistence contract the workflow depends on.
type BookingStore interface {
	CreateBooking(ctx context.Context, input *db.BookingInput) (*db.Booking, error)
	ListBookings(ctx context.Context) ([]db.Booking, error)
	ListBookingsByStatus(ctx context.Context, status string) ([]db.Booking, error)
	ListUpcomingBookings(ctx context.Context) ([]db.Booking, error)
	GetBooking(ctx context.Context, id int64) (*db.Booking, error)
	UpdateBookingStatus(ctx context.Context, id int64, status string) error
	DeleteBooking(ctx context.Context, id int64) error
	DeleteAllBookings(ctx context.Context) error
}

type ServiceInfoStore interface {
	GetServiceInfo(ctx context.Context) (*db.ServiceInfo, error)
	UpdateServiceInfo(ctx context.Context, info *db.ServiceInfo) error
}

// Notifier sends customer-facing messages. Implementations must be safe to
// call from a goroutine; send failures never reach the booking workflow.
type Notifier interface {
	SendBookingReceived(b db.Booking)
	SendBookingConfirmed(b db.Booking)
	SendBookingReminder(b db.Booking)
}

// BookingStats are derived by filtering the full list locally, mirroring how
// the admin dashboard counts rows without extra store calls.
type BookingStats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Completed int `json:"completed"`
}

type BookingService struct {
	store     BookingStore
	infoStore ServiceInfoStore
	cache     *cache.Cache
	validator *validation.BookingValidator
	notifier  Notifier
	log       zerolog.Logger
}

func NewBookingService(store BookingStore, infoStore ServiceInfoStore, c *cache.Cache,
	bv *validation.BookingValidator, notifier Notifier, log zerolog.Logger) *BookingService {
	return &BookingService{
		store:     store,
		infoStore: infoStore,
		cache:     c,
		validator: bv,
		notifier:  notifier,
		log:       log,
	}
}

// CreateBooking validates the draft and, if clean, persists it. A non-empty
// field error map means nothing was submitted. Resubmitting an identical
// draft creates a second booking; creation is deliberately not idempotent.
func (s *BookingService) CreateBooking(ctx context.Context, input *db.BookingInput) (*db.Booking, map[string]string, error) {
	if fieldErrs := s.validator.Validate(*input); len(fieldErrs) > 0 {
		return nil, fieldErrs, nil
	}

	booking, err := s.store.CreateBooking(ctx, input)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create booking")
		return nil, nil, err
	}

	s.cache.InvalidateBookings(ctx)
	metrics.IncBookingCreated()
	s.log.Info().Int64("booking_id", booking.ID).Str("service_type", booking.ServiceType).Msg("booking created")

	if s.notifier != nil {
		go s.notifier.SendBookingReceived(*booking)
	}
	return booking, nil, nil
}

func (s *BookingService) ListBookings(ctx context.Context) ([]db.Booking, error) {
	if bookings, ok := s.cache.GetBookings(ctx); ok {
		return bookings, nil
	}
	bookings, err := s.store.ListBookings(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetBookings(ctx, bookings)
	return bookings, nil
}

func (s *BookingService) ListBookingsByStatus(ctx context.Context, status string) ([]db.Booking, error) {
	if !db.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}
	return s.store.ListBookingsByStatus(ctx, status)
}

func (s *BookingService) ListUpcomingBookings(ctx context.Context) ([]db.Booking, error) {
	return s.store.ListUpcomingBookings(ctx)
}

func (s *BookingService) GetBooking(ctx context.Context, id int64) (*db.Booking, error) {
	return s.store.GetBooking(ctx, id)
}

// Stats derives per-status counts from a single list fetch.
func (s *BookingService) Stats(ctx context.Context) (*BookingStats, error) {
	bookings, err := s.ListBookings(ctx)
	if err != nil {
		return nil, err
	}
	stats := &BookingStats{Total: len(bookings)}
	for _, b := range bookings {
		switch b.Status {
		case db.StatusPending:
			stats.Pending++
		case db.StatusConfirmed:
			stats.Confirmed++
		case db.StatusCompleted:
			stats.Completed++
		}
	}
	return stats, nil
}

// UpdateBookingStatus moves a booking to any of the three statuses; no
// ordering is enforced, completed may go back to pending. Confirming a
// booking notifies the customer.
func (s *BookingService) UpdateBookingStatus(ctx context.Context, id int64, newStatus string) error {
	if !db.ValidStatus(newStatus) {
		return ErrInvalidStatus
	}

	if err := s.store.UpdateBookingStatus(ctx, id, newStatus); err != nil {
		return err
	}
	s.cache.InvalidateBookings(ctx)
	s.log.Info().Int64("booking_id", id).Str("status", newStatus).Msg("booking status updated")

	if newStatus == db.StatusConfirmed && s.notifier != nil {
		booking, err := s.store.GetBooking(ctx, id)
		if err != nil {
			s.log.Warn().Err(err).Int64("booking_id", id).Msg("booking confirmed but could not load it for notification")
			return nil
		}
		go s.notifier.SendBookingConfirmed(*booking)
	}
	return nil
}

func (s *BookingService) DeleteBooking(ctx context.Context, id int64) error {
	if err := s.store.DeleteBooking(ctx, id); err != nil {
		return err
	}
	s.cache.InvalidateBookings(ctx)
	s.log.Info().Int64("booking_id", id).Msg("booking deleted")
	return nil
}

func (s *BookingService) DeleteAllBookings(ctx context.Context) error {
	if err := s.store.DeleteAllBookings(ctx); err != nil {
		return err
	}
	s.cache.InvalidateBookings(ctx)
	s.log.Warn().Msg("all bookings cleared")
	return nil
}

func (s *BookingService) GetServiceInfo(ctx context.Context) (*db.ServiceInfo, error) {
	if info, ok := s.cache.GetServiceInfo(ctx); ok {
		return info, nil
	}
	info, err := s.infoStore.GetServiceInfo(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetServiceInfo(ctx, info)
	return info, nil
}

func (s *BookingService) UpdateServiceInfo(ctx context.Context, info *db.ServiceInfo) error {
	if err := s.infoStore.UpdateServiceInfo(ctx, info); err != nil {
		return err
	}
	s.cache.InvalidateServiceInfo(ctx)
	s.log.Info().Msg("service info updated")
	return nil
}
