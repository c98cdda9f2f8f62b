package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rai/user-service-go/modules/users"
)

func TestBuildRouter_RootGreeting(t *testing.T) {
	router := buildRouter(users.New(users.Config{}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Body.String(); got != "Hello World!" {
		t.Errorf("expected greeting 'Hello World!', got %q", got)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/plain; charset=utf-8" {
		t.Errorf("expected text/plain content type, got %q", ct)
	}
}

func TestBuildRouter_RootOnlyMatchesExactPath(t *testing.T) {
	router := buildRouter(users.New(users.Config{}))

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown path, got %d", rec.Code)
	}
}

func TestBuildRouter_Health(t *testing.T) {
	router := buildRouter(users.New(users.Config{}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Body.String(); got != `{"status":"ok"}` {
		t.Errorf("unexpected health body: %q", got)
	}
}
