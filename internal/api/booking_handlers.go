package api

import (
	"encoding/json"
	"net/http"

	"streetshine/internal/catalog"
	"streetshine/internal/config"
	"streetshine/internal/db"
	"streetshine/internal/service"

	"github.com/rs/zerolog"
)

// BookingHandler serves the public surface: booking submission and the
// read-only site data (catalog, service info, contact info).
type BookingHandler struct {
	Service *service.BookingService
	Contact config.ContactInfo
	Log     zerolog.Logger
}

func NewBookingHandler(svc *service.BookingService, contact config.ContactInfo, log zerolog.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Contact: contact, Log: log}
}

func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var input db.BookingInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	booking, fieldErrs, err := h.Service.CreateBooking(r.Context(), &input)
	if len(fieldErrs) > 0 {
		writeJSON(w, http.StatusUnprocessableEntity, ValidationErrorResponse{Errors: fieldErrs})
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}

	writeJSON(w, http.StatusCreated, CreateBookingResponse{
		ID:      booking.ID,
		Message: "Booking received. We'll reach out to confirm your appointment shortly.",
	})
}

func (h *BookingHandler) GetServices(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Services())
}

func (h *BookingHandler) GetServiceInfo(w http.ResponseWriter, r *http.Request) {
	info, err := h.Service.GetServiceInfo(r.Context())
	if err != nil {
		h.Log.Error().Err(err).Msg("failed to load service info")
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}

func (h *BookingHandler) GetContactInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Contact)
}
