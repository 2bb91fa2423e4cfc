package tag

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ethan-tjh/portfolio-backend/internal/pkg/errorhandler"
	"github.com/ethan-tjh/portfolio-backend/internal/pkg/response"
)

// Handler handles skill HTTP requests
type Handler struct {
	repo Repository
}

// NewHandler creates tag handler
func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// Skills handles GET /skills
// ?grouped=true returns the tags grouped by skill_category.
func (h *Handler) Skills(w http.ResponseWriter, r *http.Request) {
	grouped := false
	if raw := r.URL.Query().Get("grouped"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			response.BadRequest(w, "grouped must be a boolean")
			return
		}
		grouped = v
	}

	tags, err := h.repo.ListSkills(r.Context())
	if err != nil {
		errorhandler.HandleStorageError(r.Context(), w, "Server error retrieving skills", err)
		return
	}

	if grouped {
		response.OK(w, GroupByCategory(tags))
		return
	}

	items := make([]SkillResponse, len(tags))
	for i, t := range tags {
		items[i] = SkillResponseFromEntity(t)
	}
	response.OK(w, items)
}

// Routes registers the skill endpoints
func (h *Handler) Routes(r chi.Router) {
	r.Get("/skills", h.Skills)
}
