package admin

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ethan-tjh/portfolio-backend/internal/middleware"
	"github.com/ethan-tjh/portfolio-backend/internal/pkg/errorhandler"
	"github.com/ethan-tjh/portfolio-backend/internal/pkg/response"
	"github.com/ethan-tjh/portfolio-backend/internal/pkg/validator"
)

// Handler handles admin auth HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates admin handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Login handles POST /login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	result, err := h.service.Login(r.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(w, http.StatusUnauthorized, "INVALID_CREDENTIAL", "Invalid credentials")
			return
		}
		errorhandler.HandleStorageError(r.Context(), w, "Server error", err)
		return
	}

	response.OK(w, result)
}

// Logout handles POST /logout
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Logout(r.Context(), middleware.GetClaims(r.Context())); err != nil {
		errorhandler.HandleError(r.Context(), w, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "Could not revoke token", err)
		return
	}
	response.OK(w, response.Message{Message: "Logged out"})
}

// PublicRoutes registers POST /login
func (h *Handler) PublicRoutes(r chi.Router) {
	r.Post("/login", h.Login)
}

// AdminRoutes registers the authenticated endpoints. Mount inside the auth group.
func (h *Handler) AdminRoutes(r chi.Router) {
	r.Post("/logout", h.Logout)
}
