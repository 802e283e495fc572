package api

import (
	"encoding/json"
	"net/http"

	"streetshine/internal/service"

	"github.com/rs/zerolog"
)

type AdminAuthHandler struct {
	service service.AdminAuthService
	log     zerolog.Logger
}

func NewAdminAuthHandler(svc service.AdminAuthService, log zerolog.Logger) *AdminAuthHandler {
	return &AdminAuthHandler{service: svc, log: log}
}

func (h *AdminAuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{Token: token})
}

// CreateAdmin registers another admin account. Mounted behind the admin
// middleware so only an authenticated admin can add one.
func (h *AdminAuthHandler) CreateAdmin(w http.ResponseWriter, r *http.Request) {
	var req CreateAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.CreateAdmin(r.Context(), req.Email, req.Password); err != nil {
		h.log.Error().Err(err).Str("email", req.Email).Msg("failed to create admin")
		writeError(w, http.StatusInternalServerError, "Could not create admin")
		return
	}

	writeJSON(w, http.StatusCreated, MessageResponse{Message: "Admin registered successfully"})
}
