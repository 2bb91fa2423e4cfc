package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ethan-tjh/portfolio-backend/internal/pkg/jwt"
)

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Success bool `json:"success"`
		Error   struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Success {
		t.Fatal("expected success=false")
	}
	return body.Error.Code
}

func TestAuthMiddlewareAllowsValidToken(t *testing.T) {
	jwtSvc := jwt.NewService("secret", time.Minute, nil)
	token, _, err := jwtSvc.GenerateToken(11)
	if err != nil {
		t.Fatalf("token gen failed: %v", err)
	}

	var gotAdmin int64
	protected := Auth(jwtSvc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAdmin = GetAdminID(r.Context())
		if GetClaims(r.Context()) == nil {
			t.Error("claims missing from context")
		}
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/addProject", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	protected.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if gotAdmin != 11 {
		t.Fatalf("expected admin 11, got %d", gotAdmin)
	}
}

func TestAuthMiddlewareRejects(t *testing.T) {
	jwtSvc := jwt.NewService("secret", time.Minute, nil)
	foreign, _, _ := jwt.NewService("other", time.Minute, nil).GenerateToken(1)

	tests := []struct {
		name   string
		header string
		code   string
	}{
		{"missing header", "", "MISSING_CREDENTIAL"},
		{"wrong scheme", "Token abc", "MALFORMED_CREDENTIAL"},
		{"bad signature", "Bearer " + foreign, "INVALID_TOKEN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			protected := Auth(jwtSvc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
			}))

			req := httptest.NewRequest(http.MethodDelete, "/deleteProject/1", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			protected.ServeHTTP(w, req)

			if called {
				t.Fatal("handler must not run")
			}
			if w.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", w.Code)
			}
			if code := errorCode(t, w); code != tt.code {
				t.Fatalf("expected %s, got %s", tt.code, code)
			}
		})
	}
}
