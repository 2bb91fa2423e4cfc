package contact

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ethan-tjh/portfolio-backend/internal/pkg/errorhandler"
	"github.com/ethan-tjh/portfolio-backend/internal/pkg/response"
	"github.com/ethan-tjh/portfolio-backend/internal/pkg/validator"
)

// Handler handles contact form requests
type Handler struct {
	service *Service
}

// NewHandler creates contact handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Submit handles POST /api/contact
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		errorhandler.LogValidationError(r.Context(), errs)
		response.ErrorWithDetails(w, http.StatusBadRequest, "BAD_REQUEST", firstMessage(&req), errs)
		return
	}

	if err := h.service.Submit(r.Context(), &req); err != nil {
		errorhandler.HandleError(r.Context(), w, http.StatusInternalServerError, "INTERNAL_ERROR",
			"Failed to send message. Please try again later.", err)
		return
	}

	response.OK(w, response.Message{Message: "Message sent successfully!"})
}

// firstMessage mirrors the single-line errors the contact form shows.
// A missing field wins over a malformed address.
func firstMessage(req *SubmitRequest) string {
	for _, v := range []string{req.Name, req.Email, req.Subject, req.Message} {
		if strings.TrimSpace(v) == "" {
			return "All fields are required"
		}
	}
	if validator.ValidateVar(req.Email, "contact_email") != nil {
		return "Please provide a valid email address"
	}
	return "One or more fields are too long"
}

// Routes registers the contact endpoint behind the given throttle
func (h *Handler) Routes(r chi.Router, throttle func(http.Handler) http.Handler) {
	r.With(throttle).Post("/api/contact", h.Submit)
}
