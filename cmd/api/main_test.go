package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ethan-tjh/portfolio-backend/internal/config"
	"github.com/ethan-tjh/portfolio-backend/internal/pkg/database/dbtest"
	"github.com/ethan-tjh/portfolio-backend/internal/pkg/email"
	"github.com/ethan-tjh/portfolio-backend/internal/pkg/jwt"
	"github.com/ethan-tjh/portfolio-backend/internal/pkg/password"
	"github.com/ethan-tjh/portfolio-backend/internal/pkg/storage"
)

func newTestApp(t *testing.T) http.Handler {
	t.Helper()

	acc := dbtest.Open(t)
	hash, err := password.Hash("correct horse")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	dbtest.Exec(t, acc, `INSERT INTO admin (username, password_hash) VALUES (?, ?)`, "ethan", hash)

	files, err := storage.NewLocalStorage(t.TempDir(), "http://localhost/files")
	if err != nil {
		t.Fatalf("storage: %v", err)
	}

	mailer := email.NewServiceWithTransport(email.LogTransport{})
	t.Cleanup(mailer.Close)

	return newRouter(&app{
		cfg: &config.Config{
			AllowedOrigins:    []string{"http://localhost:3000"},
			EmailReceiver:     "owner@example.com",
			OwnerName:         "Ethan",
			ContactRateLimit:  5,
			ContactRateWindow: time.Hour,
			UploadMaxSize:     1 << 20,
		},
		accessor: acc,
		jwt:      jwt.NewService("test-secret", time.Hour, nil),
		mailer:   mailer,
		files:    files,
	})
}

func call(t *testing.T, h http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	w := call(t, newTestApp(t), http.MethodGet, "/health", "", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatal("expected request id header")
	}
}

func TestMutatingRoutesRequireCredential(t *testing.T) {
	h := newTestApp(t)

	routes := []struct{ method, path string }{
		{http.MethodPost, "/addProject"},
		{http.MethodPut, "/updateProject/1"},
		{http.MethodDelete, "/deleteProject/1"},
		{http.MethodPost, "/logout"},
		{http.MethodPost, "/uploads/images"},
	}
	for _, rt := range routes {
		w := call(t, h, rt.method, rt.path, "", `{}`)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected 401, got %d", rt.method, rt.path, w.Code)
		}
	}
}

func TestLoginThenCreateProject(t *testing.T) {
	h := newTestApp(t)

	w := call(t, h, http.MethodPost, "/login", "", `{"username":"ethan","password":"correct horse"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var login struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := json.NewDecoder(w.Body).Decode(&login); err != nil || login.Data.Token == "" {
		t.Fatalf("login body: %v", err)
	}

	w = call(t, h, http.MethodPost, "/addProject", login.Data.Token, `{"name":"Portfolio","category":"Web"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", w.Code, w.Body.String())
	}

	w = call(t, h, http.MethodGet, "/projects", "", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"Portfolio"`) {
		t.Fatalf("list: %d %s", w.Code, w.Body.String())
	}

	w = call(t, h, http.MethodGet, "/categories", "", "")
	if !strings.Contains(w.Body.String(), `"Web"`) {
		t.Fatalf("categories: %s", w.Body.String())
	}
}

func TestContactWithoutRedisIsNotThrottled(t *testing.T) {
	h := newTestApp(t)
	body := `{"name":"Ada","email":"ada@example.com","subject":"Hi","message":"Hello"}`

	for i := 0; i < 7; i++ {
		w := call(t, h, http.MethodPost, "/api/contact", "", body)
		if w.Code != http.StatusOK {
			t.Fatalf("attempt %d: expected 200, got %d: %s", i, w.Code, w.Body.String())
		}
	}
}
