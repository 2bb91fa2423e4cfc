package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/ethan-tjh/portfolio-backend/internal/pkg/logger"
)

const maxRequestIDLength = 64

// RequestID reuses a caller supplied X-Request-ID when it is short enough,
// otherwise mints one, and attaches it to the request logger.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" || len(requestID) > maxRequestIDLength {
			requestID = uuid.NewString()
			r.Header.Set("X-Request-ID", requestID)
		}
		w.Header().Set("X-Request-ID", requestID)

		next.ServeHTTP(w, r.WithContext(logger.WithRequestID(r.Context(), requestID)))
	})
}
