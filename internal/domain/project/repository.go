package project

import (
	"context"
	"errors"

	"github.com/ethan-tjh/portfolio-backend/internal/pkg/database"
	"github.com/ethan-tjh/portfolio-backend/internal/pkg/logger"
)

const (
	projectTable = "portfolio"
)

// Repository defines project mutations. Every method runs in one transaction.
type Repository interface {
	// Create inserts the project and its images, returning the generated id.
	Create(ctx context.Context, columns Columns, imageURLs []string) (int64, error)
	// Update applies columns and, when imageURLs is non-nil, replaces the image set.
	// Returns the name stored before the update.
	Update(ctx context.Context, id int64, columns Columns, imageURLs *[]string) (string, error)
	// Delete removes the project with its images and tag links, returning its name.
	Delete(ctx context.Context, id int64) (string, error)
}

type repository struct {
	db *database.Accessor
}

// NewRepository creates new project repository
func NewRepository(db *database.Accessor) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, columns Columns, imageURLs []string) (int64, error) {
	var id int64
	err := r.db.InTx(ctx, func(ctx context.Context, tx *database.Tx) error {
		var err error
		id, err = tx.Insert(ctx, columns.insertSQL(projectTable), columns.Values()...)
		if err != nil {
			logStatementError(ctx, "portfolio.insert", 0, err)
			return err
		}
		return insertImages(ctx, tx, id, imageURLs)
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *repository) Update(ctx context.Context, id int64, columns Columns, imageURLs *[]string) (string, error) {
	var name string
	err := r.db.InTx(ctx, func(ctx context.Context, tx *database.Tx) error {
		var err error
		name, err = lookupName(ctx, tx, id)
		if err != nil {
			return err
		}

		if !columns.Empty() {
			args := append(columns.Values(), id)
			n, err := tx.Exec(ctx, columns.updateSQL(projectTable), args...)
			if err != nil {
				logStatementError(ctx, "portfolio.update", id, err)
				return err
			}
			// removed between lookup and update
			if n == 0 {
				return ErrProjectNotFound
			}
		}

		if imageURLs != nil {
			if _, err := tx.Exec(ctx, `DELETE FROM portfolio_images WHERE portfolio_id = ?`, id); err != nil {
				logStatementError(ctx, "portfolio_images.delete", id, err)
				return err
			}
			return insertImages(ctx, tx, id, *imageURLs)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return name, nil
}

func (r *repository) Delete(ctx context.Context, id int64) (string, error) {
	var name string
	err := r.db.InTx(ctx, func(ctx context.Context, tx *database.Tx) error {
		var err error
		name, err = lookupName(ctx, tx, id)
		if err != nil {
			return err
		}

		statements := []struct {
			op    string
			query string
		}{
			{"portfolio_tags.delete", `DELETE FROM portfolio_tags WHERE portfolio_id = ?`},
			{"portfolio_images.delete", `DELETE FROM portfolio_images WHERE portfolio_id = ?`},
			{"portfolio.delete", `DELETE FROM portfolio WHERE id = ?`},
		}
		var n int64
		for _, stmt := range statements {
			if n, err = tx.Exec(ctx, stmt.query, id); err != nil {
				logStatementError(ctx, stmt.op, id, err)
				return err
			}
		}
		if n == 0 {
			return ErrProjectNotFound
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return name, nil
}

// lookupName is the existence check run before every update and delete.
func lookupName(ctx context.Context, tx *database.Tx, id int64) (string, error) {
	var name string
	err := tx.Get(ctx, &name, `SELECT name FROM portfolio WHERE id = ?`, id)
	if database.IsNotFound(err) {
		return "", ErrProjectNotFound
	}
	if err != nil {
		logStatementError(ctx, "portfolio.lookup", id, err)
		return "", err
	}
	return name, nil
}

// insertImages stores urls in order with sort_order starting at 1
func insertImages(ctx context.Context, tx *database.Tx, projectID int64, urls []string) error {
	for i, url := range urls {
		_, err := tx.Exec(ctx,
			`INSERT INTO portfolio_images (portfolio_id, image_url, sort_order) VALUES (?, ?, ?)`,
			projectID, url, i+1,
		)
		if err != nil {
			logStatementError(ctx, "portfolio_images.insert", projectID, err)
			return err
		}
	}
	return nil
}

func logStatementError(ctx context.Context, query string, projectID int64, err error) {
	if errors.Is(err, context.Canceled) {
		return
	}

	evt := logger.FromContext(ctx).Error().
		Str("query", query).
		Err(err)
	if projectID > 0 {
		evt = evt.Int64("project_id", projectID)
	}
	if code, constraint := database.PgCode(err); code != "" {
		evt = evt.
			Str("pg_code", code).
			Str("pg_constraint", constraint)
	}
	evt.Msg("project statement failed")
}
