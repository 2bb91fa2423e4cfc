package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientIPStripsPort(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "203.0.113.9:41000"
	if got := ClientIP(req); got != "203.0.113.9" {
		t.Fatalf("got %q", got)
	}

	req.RemoteAddr = "203.0.113.9"
	if got := ClientIP(req); got != "203.0.113.9" {
		t.Fatalf("got %q", got)
	}
}
