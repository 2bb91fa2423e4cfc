package project

import (
	"context"
	"sort"
	"strings"

	"github.com/ethan-tjh/portfolio-backend/internal/pkg/database"
)

const projectSelectColumns = `
	id, name, module_code, module_name, description,
	img, category, github_link, demo_link
`

// Projection builds the read models. Reads are independent statements with no
// shared snapshot.
type Projection interface {
	List(ctx context.Context) ([]*Project, error)
	GetByID(ctx context.Context, id int64) (*Project, error)
	Categories(ctx context.Context) ([]string, error)
	Images(ctx context.Context, projectID int64) ([]*Image, error)
	Tags(ctx context.Context, projectID int64) ([]*Tag, error)
}

type projection struct {
	db database.Querier
}

// NewProjection creates the read side over db
func NewProjection(db database.Querier) Projection {
	return &projection{db: db}
}

func (p *projection) List(ctx context.Context) ([]*Project, error) {
	projects := []*Project{}
	err := p.db.Select(ctx, &projects, `SELECT `+projectSelectColumns+` FROM portfolio ORDER BY id`)
	if err != nil {
		logStatementError(ctx, "portfolio.list", 0, err)
		return nil, err
	}
	return projects, nil
}

func (p *projection) GetByID(ctx context.Context, id int64) (*Project, error) {
	var project Project
	err := p.db.Get(ctx, &project, `SELECT `+projectSelectColumns+` FROM portfolio WHERE id = ?`, id)
	if database.IsNotFound(err) {
		return nil, ErrProjectNotFound
	}
	if err != nil {
		logStatementError(ctx, "portfolio.get", id, err)
		return nil, err
	}
	return &project, nil
}

// Categories returns distinct non-blank categories in ascending order.
func (p *projection) Categories(ctx context.Context) ([]string, error) {
	var rows []string
	err := p.db.Select(ctx, &rows, `
		SELECT DISTINCT category FROM portfolio
		WHERE category IS NOT NULL AND TRIM(category) <> ''
	`)
	if err != nil {
		logStatementError(ctx, "portfolio.categories", 0, err)
		return nil, err
	}

	// Ordering and dedup happen here so the result does not depend on the store's collation
	seen := make(map[string]struct{}, len(rows))
	categories := make([]string, 0, len(rows))
	for _, c := range rows {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		categories = append(categories, c)
	}
	sort.Strings(categories)
	return categories, nil
}

func (p *projection) Images(ctx context.Context, projectID int64) ([]*Image, error) {
	images := []*Image{}
	err := p.db.Select(ctx, &images, `
		SELECT id, image_url, sort_order, caption
		FROM portfolio_images
		WHERE portfolio_id = ?
		ORDER BY sort_order, id
	`, projectID)
	if err != nil {
		logStatementError(ctx, "portfolio_images.list", projectID, err)
		return nil, err
	}
	return images, nil
}

func (p *projection) Tags(ctx context.Context, projectID int64) ([]*Tag, error) {
	tags := []*Tag{}
	err := p.db.Select(ctx, &tags, `
		SELECT t.id, t.name
		FROM tags t
		INNER JOIN portfolio_tags pt ON pt.tag_id = t.id
		WHERE pt.portfolio_id = ?
		ORDER BY t.name, t.id
	`, projectID)
	if err != nil {
		logStatementError(ctx, "portfolio_tags.list", projectID, err)
		return nil, err
	}
	return tags, nil
}
