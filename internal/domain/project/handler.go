package project

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ethan-tjh/portfolio-backend/internal/pkg/errorhandler"
	"github.com/ethan-tjh/portfolio-backend/internal/pkg/response"
	"github.com/ethan-tjh/portfolio-backend/internal/pkg/validator"
)

// Handler handles project HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates project handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List handles GET /projects
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.service.List(r.Context())
	if err != nil {
		h.handleError(r.Context(), w, err, "Server error for Projects")
		return
	}
	response.OK(w, projectResponses(projects))
}

// Categories handles GET /categories
func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.Categories(r.Context())
	if err != nil {
		h.handleError(r.Context(), w, err, "Server error for Categories")
		return
	}
	response.OK(w, categories)
}

// GetByID handles GET /projects/{id}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	detail, err := h.service.Detail(r.Context(), id)
	if err != nil {
		h.handleError(r.Context(), w, err, "Server error retrieving project detail")
		return
	}
	response.OK(w, DetailResponseFromEntity(detail))
}

// Images handles GET /projects/{id}/images
func (h *Handler) Images(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	images, err := h.service.Images(r.Context(), id)
	if err != nil {
		h.handleError(r.Context(), w, err, "Server error retrieving project images")
		return
	}
	response.OK(w, imageResponses(images))
}

// Tags handles GET /projects/{id}/tags
func (h *Handler) Tags(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	tags, err := h.service.Tags(r.Context(), id)
	if err != nil {
		h.handleError(r.Context(), w, err, "Server error retrieving project tags")
		return
	}
	response.OK(w, tagResponses(tags))
}

// Create handles POST /addProject
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		errorhandler.LogValidationError(r.Context(), errs)
		response.ValidationError(w, errs)
		return
	}

	id, message, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.handleError(r.Context(), w, err, "Server error - could not add Project")
		return
	}
	response.Created(w, response.Message{Message: message, ID: id})
}

// Update handles PUT /updateProject/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req UpdateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		errorhandler.LogValidationError(r.Context(), errs)
		response.ValidationError(w, errs)
		return
	}

	message, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		h.handleError(r.Context(), w, err, "Server error - could not update Project")
		return
	}
	response.OK(w, response.Message{Message: message})
}

// Delete handles DELETE /deleteProject/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	message, err := h.service.Delete(r.Context(), id)
	if err != nil {
		h.handleError(r.Context(), w, err, "Server error - could not delete Project")
		return
	}
	response.OK(w, response.Message{Message: message})
}

func (h *Handler) handleError(ctx context.Context, w http.ResponseWriter, err error, message string) {
	switch {
	case errors.Is(err, ErrNameRequired):
		response.BadRequest(w, "Project name is required")
	case errors.Is(err, ErrNoUpdates):
		response.BadRequest(w, "No updates were found")
	case errors.Is(err, ErrProjectNotFound):
		response.NotFound(w, "Project not found")
	default:
		errorhandler.HandleStorageError(ctx, w, message, err)
	}
}

func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(w, "Invalid project ID")
		return 0, false
	}
	return id, true
}
