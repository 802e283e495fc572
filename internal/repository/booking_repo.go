package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"streetshine/internal/db"
)

// ErrNotFound is returned when a booking id no longer exists. Mutations that
// race with a delete surface it so callers can treat it as a refresh trigger.
var ErrNotFound = errors.New("booking not found")

const bookingColumns = `id, name, phone, email, service_type, vehicle_info,
	preferred_date, preferred_time, notes, status, created_at, updated_at`

type BookingRepository struct {
	DB *sql.DB
}

func NewBookingRepository(database *sql.DB) *BookingRepository {
	return &BookingRepository{DB: database}
}

// CreateBooking inserts a draft and returns the stored record. The store owns
// identity, status and timestamps: every new booking starts as pending.
func (r *BookingRepository) CreateBooking(ctx context.Context, input *db.BookingInput) (*db.Booking, error) {
	now := time.Now().UTC()
	booking := &db.Booking{
		Name:          input.Name,
		Phone:         input.Phone,
		Email:         input.Email,
		ServiceType:   input.ServiceType,
		VehicleInfo:   input.VehicleInfo,
		PreferredDate: input.PreferredDate,
		PreferredTime: input.PreferredTime,
		Notes:         input.Notes,
		Status:        db.StatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	query := `
		INSERT INTO bookings
		(name, phone, email, service_type, vehicle_info, preferred_date, preferred_time, notes, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at`
	err := r.DB.QueryRowContext(ctx, query,
		booking.Name,
		booking.Phone,
		booking.Email,
		booking.ServiceType,
		booking.VehicleInfo,
		booking.PreferredDate,
		booking.PreferredTime,
		booking.Notes,
		booking.Status,
		booking.CreatedAt,
		booking.UpdatedAt,
	).Scan(&booking.ID, &booking.CreatedAt, &booking.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("error inserting booking: %w", err)
	}
	return booking, nil
}

// ListBookings returns every booking, newest first. The ordering is stable
// across calls so the admin list does not reshuffle between refreshes.
func (r *BookingRepository) ListBookings(ctx context.Context) ([]db.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings ORDER BY created_at DESC, id DESC`
	return r.queryBookings(ctx, query)
}

func (r *BookingRepository) ListBookingsByStatus(ctx context.Context, status string) ([]db.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE status = $1 ORDER BY created_at DESC, id DESC`
	return r.queryBookings(ctx, query, status)
}

// ListUpcomingBookings returns pending and confirmed bookings whose preferred
// date is today or later, soonest first. Completed work is not upcoming even
// when its date is in the future.
func (r *BookingRepository) ListUpcomingBookings(ctx context.Context) ([]db.Booking, error) {
	today := time.Now().UTC().Format("2006-01-02")
	query := `SELECT ` + bookingColumns + ` FROM bookings
		WHERE preferred_date >= $1 AND status IN ($2, $3)
		ORDER BY preferred_date ASC, preferred_time ASC, id ASC`
	return r.queryBookings(ctx, query, today, db.StatusPending, db.StatusConfirmed)
}

func (r *BookingRepository) GetBooking(ctx context.Context, id int64) (*db.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	var b db.Booking
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&b.ID, &b.Name, &b.Phone, &b.Email, &b.ServiceType, &b.VehicleInfo,
		&b.PreferredDate, &b.PreferredTime, &b.Notes, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error querying booking %d: %w", id, err)
	}
	return &b, nil
}

func (r *BookingRepository) UpdateBookingStatus(ctx context.Context, id int64, status string) error {
	query := `UPDATE bookings SET status = $1, updated_at = NOW() WHERE id = $2`
	result, err := r.DB.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("error updating booking %d status: %w", id, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *BookingRepository) DeleteBooking(ctx context.Context, id int64) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting booking %d: %w", id, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *BookingRepository) DeleteAllBookings(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM bookings`)
	if err != nil {
		return fmt.Errorf("error clearing bookings: %w", err)
	}
	return nil
}

func (r *BookingRepository) queryBookings(ctx context.Context, query string, args ...interface{}) ([]db.Booking, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying bookings: %w", err)
	}
	defer rows.Close()

	var bookings []db.Booking
	for rows.Next() {
		var b db.Booking
		err := rows.Scan(
			&b.ID, &b.Name, &b.Phone, &b.Email, &b.ServiceType, &b.VehicleInfo,
			&b.PreferredDate, &b.PreferredTime, &b.Notes, &b.Status, &b.CreatedAt, &b.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating booking rows: %w", err)
	}
	return bookings, nil
}
