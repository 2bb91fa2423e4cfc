package admin

import (
	"context"

	"github.com/ethan-tjh/portfolio-backend/internal/pkg/database"
	"github.com/ethan-tjh/portfolio-backend/internal/pkg/logger"
)

// Repository reads admin accounts
type Repository interface {
	GetByUsername(ctx context.Context, username string) (*Admin, error)
}

type repository struct {
	db database.Querier
}

// NewRepository creates admin repository
func NewRepository(db database.Querier) Repository {
	return &repository{db: db}
}

func (r *repository) GetByUsername(ctx context.Context, username string) (*Admin, error) {
	var a Admin
	err := r.db.Get(ctx, &a, `SELECT id, username, password_hash FROM admin WHERE username = ?`, username)
	if database.IsNotFound(err) {
		return nil, ErrAdminNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).Str("query", "admin.get_by_username").Msg("admin lookup failed")
		return nil, err
	}
	return &a, nil
}
