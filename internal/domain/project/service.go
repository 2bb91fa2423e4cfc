package project

import (
	"context"
	"strings"
)

// Service handles project business logic
type Service struct {
	repo  Repository
	reads Projection
}

// NewService creates project service
func NewService(repo Repository, reads Projection) *Service {
	return &Service{repo: repo, reads: reads}
}

// Create validates and stores a new project with its images.
// Returns the generated id and the success message.
func (s *Service) Create(ctx context.Context, req *CreateProjectRequest) (int64, string, error) {
	if strings.TrimSpace(req.Name) == "" {
		return 0, "", ErrNameRequired
	}

	id, err := s.repo.Create(ctx, insertColumns(req), req.AdditionalImages)
	if err != nil {
		return 0, "", err
	}
	return id, req.Name + " has been added successfully", nil
}

// Update applies a sparse change set
func (s *Service) Update(ctx context.Context, id int64, req *UpdateProjectRequest) (string, error) {
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return "", ErrNameRequired
	}

	columns := updateColumns(req)
	if columns.Empty() && req.AdditionalImages == nil {
		return "", ErrNoUpdates
	}

	storedName, err := s.repo.Update(ctx, id, columns, req.AdditionalImages)
	if err != nil {
		return "", err
	}

	displayName := storedName
	if req.Name != nil {
		displayName = *req.Name
	}
	return displayName + " was updated successfully", nil
}

// Delete removes a project
func (s *Service) Delete(ctx context.Context, id int64) (string, error) {
	name, err := s.repo.Delete(ctx, id)
	if err != nil {
		return "", err
	}
	return name + " has been deleted", nil
}

// List returns all projects in storage order
func (s *Service) List(ctx context.Context) ([]*Project, error) {
	return s.reads.List(ctx)
}

// Categories returns the distinct project categories
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	return s.reads.Categories(ctx)
}

// Images returns the images of a project
func (s *Service) Images(ctx context.Context, id int64) ([]*Image, error) {
	return s.reads.Images(ctx, id)
}

// Tags returns the tags of a project
func (s *Service) Tags(ctx context.Context, id int64) ([]*Tag, error) {
	return s.reads.Tags(ctx, id)
}

// Detail composes project, images and tags
func (s *Service) Detail(ctx context.Context, id int64) (*Detail, error) {
	p, err := s.reads.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	images, err := s.reads.Images(ctx, id)
	if err != nil {
		return nil, err
	}

	tags, err := s.reads.Tags(ctx, id)
	if err != nil {
		return nil, err
	}

	return &Detail{Project: p, Images: images, Tags: tags}, nil
}
