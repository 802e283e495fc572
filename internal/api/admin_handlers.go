package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"streetshine/internal/db"
	"streetshine/internal/service"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// AdminHandler serves the protected review surface. The JWT middleware has
// already vetted the caller by the time these run.
type AdminHandler struct {
	Service *service.BookingService
	Log     zerolog.Logger
}

func NewAdminHandler(svc *service.BookingService, log zerolog.Logger) *AdminHandler {
	return &AdminHandler{Service: svc, Log: log}
}

// ListBookings returns all bookings, or only those in ?status= when given.
func (h *AdminHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	var (
		bookings []db.Booking
		err      error
	)
	if status := r.URL.Query().Get("status"); status != "" {
		bookings, err = h.Service.ListBookingsByStatus(r.Context(), status)
	} else {
		bookings, err = h.Service.ListBookings(r.Context())
	}
	if err != nil {
		h.Log.Error().Err(err).Msg("failed to list bookings")
		writeServiceError(w, err)
		return
	}
	if bookings == nil {
		bookings = []db.Booking{}
	}
	writeJSON(w, http.StatusOK, BookingListResponse{Total: len(bookings), Bookings: bookings})
}

func (h *AdminHandler) ListUpcomingBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.Service.ListUpcomingBookings(r.Context())
	if err != nil {
		h.Log.Error().Err(err).Msg("failed to list upcoming bookings")
		writeServiceError(w, err)
		return
	}
	if bookings == nil {
		bookings = []db.Booking{}
	}
	writeJSON(w, http.StatusOK, BookingListResponse{Total: len(bookings), Bookings: bookings})
}

func (h *AdminHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := bookingID(w, r)
	if !ok {
		return
	}
	booking, err := h.Service.GetBooking(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func (h *AdminHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Service.Stats(r.Context())
	if err != nil {
		h.Log.Error().Err(err).Msg("failed to compute booking stats")
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *AdminHandler) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := bookingID(w, r)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.Service.UpdateBookingStatus(r.Context(), id, req.Status); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Booking status updated"})
}

func (h *AdminHandler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := bookingID(w, r)
	if !ok {
		return
	}
	if err := h.Service.DeleteBooking(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Booking deleted"})
}

func (h *AdminHandler) ClearBookings(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteAllBookings(r.Context()); err != nil {
		h.Log.Error().Err(err).Msg("failed to clear bookings")
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "All bookings deleted"})
}

func (h *AdminHandler) UpdateServiceInfo(w http.ResponseWriter, r *http.Request) {
	var info db.ServiceInfo
	if err := json.NewDecoder(r.Body).Decode(&info); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.Service.UpdateServiceInfo(r.Context(), &info); err != nil {
		h.Log.Error().Err(err).Msg("failed to update service info")
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Service info updated"})
}

func bookingID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid booking ID")
		return 0, false
	}
	return id, true
}
