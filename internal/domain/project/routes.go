package project

import (
	"github.com/go-chi/chi/v5"
)

// PublicRoutes registers the read-only project endpoints
func (h *Handler) PublicRoutes(r chi.Router) {
	r.Get("/projects", h.List)
	r.Get("/categories", h.Categories)
	r.Get("/projects/{id}", h.GetByID)
	r.Get("/projects/{id}/images", h.Images)
	r.Get("/projects/{id}/tags", h.Tags)
}

// AdminRoutes registers the mutating endpoints. Mount inside the auth group.
func (h *Handler) AdminRoutes(r chi.Router) {
	r.Post("/addProject", h.Create)
	r.Put("/updateProject/{id}", h.Update)
	r.Delete("/deleteProject/{id}", h.Delete)
}
