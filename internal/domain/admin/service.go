package admin

import (
	"context"
	"errors"

	"github.com/ethan-tjh/portfolio-backend/internal/pkg/jwt"
	"github.com/ethan-tjh/portfolio-backend/internal/pkg/password"
)

// Service handles admin authentication
type Service struct {
	repo       Repository
	jwtService *jwt.Service
}

// NewService creates admin service
func NewService(repo Repository, jwtService *jwt.Service) *Service {
	return &Service{repo: repo, jwtService: jwtService}
}

// Login verifies the credentials and issues a token.
// An unknown username and a wrong password both yield ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error) {
	a, err := s.repo.GetByUsername(ctx, req.Username)
	if errors.Is(err, ErrAdminNotFound) {
		password.VerifyDummy(req.Password)
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !password.Verify(req.Password, a.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwtService.GenerateToken(a.ID)
	if err != nil {
		return nil, err
	}
	return &LoginResponse{Token: token, ExpiresAt: expiresAt}, nil
}

// Logout revokes the presented token until it expires
func (s *Service) Logout(ctx context.Context, claims *jwt.Claims) error {
	return s.jwtService.Revoke(ctx, claims)
}
