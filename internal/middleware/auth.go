package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/ethan-tjh/portfolio-backend/internal/pkg/errorhandler"
	"github.com/ethan-tjh/portfolio-backend/internal/pkg/jwt"
	"github.com/ethan-tjh/portfolio-backend/internal/pkg/logger"
	"github.com/ethan-tjh/portfolio-backend/internal/pkg/response"
)

type contextKey string

const (
	AdminIDKey contextKey = "admin_id"
	ClaimsKey  contextKey = "claims"
)

// Auth returns middleware that validates the admin bearer token
func Auth(jwtService *jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := jwtService.Authorize(r.Context(), r.Header.Get("Authorization"))
			if err != nil {
				writeAuthError(w, r, err)
				return
			}

			ctx := context.WithValue(r.Context(), AdminIDKey, claims.AdminID)
			ctx = context.WithValue(ctx, ClaimsKey, claims)

			logger.FromContext(ctx).Debug().Int64("admin_id", claims.AdminID).Msg("Authorized request")
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeAuthError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, jwt.ErrMissingCredential):
		response.Error(w, http.StatusUnauthorized, "MISSING_CREDENTIAL", "Missing authorization header")
	case errors.Is(err, jwt.ErrMalformedCredential):
		response.Error(w, http.StatusUnauthorized, "MALFORMED_CREDENTIAL", "Invalid authorization header format")
	case errors.Is(err, jwt.ErrExpiredToken):
		response.Error(w, http.StatusUnauthorized, "TOKEN_EXPIRED", "Token expired")
	case errors.Is(err, jwt.ErrRevokedToken):
		response.Error(w, http.StatusUnauthorized, "TOKEN_REVOKED", "Token has been revoked")
	case errors.Is(err, jwt.ErrInvalidToken):
		response.Error(w, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid token")
	default:
		errorhandler.HandleError(r.Context(), w, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE",
			"Unable to verify credentials", err)
	}
}

// GetAdminID extracts the authenticated admin id from context
func GetAdminID(ctx context.Context) int64 {
	if id, ok := ctx.Value(AdminIDKey).(int64); ok {
		return id
	}
	return 0
}

// GetClaims returns the verified token claims, or nil outside the auth group.
func GetClaims(ctx context.Context) *jwt.Claims {
	if claims, ok := ctx.Value(ClaimsKey).(*jwt.Claims); ok {
		return claims
	}
	return nil
}
