package upload

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ethan-tjh/portfolio-backend/internal/pkg/errorhandler"
	"github.com/ethan-tjh/portfolio-backend/internal/pkg/response"
	"github.com/ethan-tjh/portfolio-backend/internal/pkg/storage"
)

// multipart overhead allowed on top of the file limit
const formOverhead = 1 << 20

// Handler handles upload HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates upload handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// UploadImage handles POST /uploads/images
// Multipart form: file
func (h *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	limit := h.service.MaxSize() + formOverhead
	r.Body = http.MaxBytesReader(w, r.Body, limit)

	if err := r.ParseMultipartForm(limit); err != nil {
		response.BadRequest(w, "File too large or invalid form")
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, _, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "No file provided")
		return
	}
	defer file.Close()

	result, err := h.service.UploadImage(r.Context(), file)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrFileTooLarge):
			response.BadRequest(w, "File exceeds maximum size")
		case errors.Is(err, storage.ErrInvalidMimeType):
			response.BadRequest(w, "File type not allowed")
		case errors.Is(err, storage.ErrEmptyFile):
			response.BadRequest(w, "File is empty")
		case errors.Is(err, ErrUndecodableImage):
			response.BadRequest(w, "Image could not be decoded")
		default:
			errorhandler.HandleError(r.Context(), w, http.StatusInternalServerError, "INTERNAL_ERROR", "Upload failed", err)
		}
		return
	}

	response.Created(w, result)
}

// AdminRoutes registers the upload endpoint. Mount inside the auth group.
func (h *Handler) AdminRoutes(r chi.Router) {
	r.Post("/uploads/images", h.UploadImage)
}
