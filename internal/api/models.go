package api

import "streetshine/internal/db"

type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse maps each invalid field to its message.
type ValidationErrorResponse struct {
	Errors map[string]string `json:"errors"`
}

type CreateBookingResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type CreateAdminRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type BookingListResponse struct {
	Total    int          `json:"total"`
	Bookings []db.Booking `json:"bookings"`
}
