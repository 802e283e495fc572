package db

import "time"

// Booking statuses. Initial status at creation is always pending;
// transitions between any two statuses are allowed.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
)

// ValidStatus reports whether s is one of the known booking statuses.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusConfirmed || s == StatusCompleted
}

type Booking struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	ServiceType   string    `json:"service_type"`
	VehicleInfo   string    `json:"vehicle_info"`
	PreferredDate string    `json:"preferred_date"`
	PreferredTime string    `json:"preferred_time"`
	Notes         string    `json:"notes"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// BookingInput is a customer-submitted draft. ID, status and timestamps are
// assigned by the store, never by the caller.
type BookingInput struct {
	Name          string `json:"name" validate:"notblank"`
	Phone         string `json:"phone" validate:"notblank,phonedigits"`
	Email         string `json:"email" validate:"notblank,simpleemail"`
	ServiceType   string `json:"service_type" validate:"servicetype"`
	VehicleInfo   string `json:"vehicle_info" validate:"notblank"`
	PreferredDate string `json:"preferred_date" validate:"notblank"`
	PreferredTime string `json:"preferred_time"`
	Notes         string `json:"notes"`
}

// ServiceInfo is the single business hours / service area record shown on the
// public site and edited from the admin panel.
type ServiceInfo struct {
	Hours string `json:"hours"`
	Area  string `json:"area"`
}
