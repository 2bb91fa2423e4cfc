package tag

import (
	"context"

	"github.com/ethan-tjh/portfolio-backend/internal/pkg/database"
	"github.com/ethan-tjh/portfolio-backend/internal/pkg/logger"
)

// Repository reads tags. Tags are managed outside this service.
type Repository interface {
	ListSkills(ctx context.Context) ([]*Tag, error)
}

type repository struct {
	db database.Querier
}

// NewRepository creates tag repository
func NewRepository(db database.Querier) Repository {
	return &repository{db: db}
}

// ListSkills returns every tag ordered by skill_category then name
func (r *repository) ListSkills(ctx context.Context) ([]*Tag, error) {
	tags := []*Tag{}
	err := r.db.Select(ctx, &tags, `
		SELECT id, name, skill_category
		FROM tags
		ORDER BY skill_category, name, id
	`)
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).Str("query", "tags.list").Msg("tag statement failed")
		return nil, err
	}
	return tags, nil
}
