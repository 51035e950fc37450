package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/fieldops/construction-api/internal/api/handler"
	"github.com/fieldops/construction-api/internal/core/domain"
	"github.com/fieldops/construction-api/internal/core/validation"
)

// serveError routes a request into a handler that fails with err and
// returns what the central error handler rendered.
func serveError(t *testing.T, err error) (int, handler.Envelope) {
	t.Helper()
	e := echo.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop())
	e.GET("/boom", func(echo.Context) error { return err })

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var env handler.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decoding envelope: %v", err)
	}
	return rec.Code, env
}

func TestErrorHandlerMapsDomainSentinels(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"not found", domain.ErrNotFound, http.StatusNotFound, "resource not found"},
		{"invalid id", domain.ErrInvalidID, http.StatusBadRequest, "invalid resource id"},
		{"conflict", domain.ErrConflict, http.StatusBadRequest, "resource already exists"},
		{"wrapped not found", errors.Join(errors.New("ctx"), domain.ErrNotFound), http.StatusNotFound, "resource not found"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, env := serveError(t, tc.err)
			if status != tc.status {
				t.Errorf("status: got %d, want %d", status, tc.status)
			}
			if env.Message != tc.message {
				t.Errorf("message: got %q, want %q", env.Message, tc.message)
			}
			if env.Success || !env.Error {
				t.Errorf("envelope flags: %+v", env)
			}
		})
	}
}

func TestErrorHandlerRendersViolations(t *testing.T) {
	v := validation.Violations{
		"name":   "name is required",
		"budget": "budget must be a positive number",
	}
	status, env := serveError(t, v)
	if status != http.StatusBadRequest {
		t.Fatalf("status: got %d", status)
	}
	// Joined in field order: budget sorts before name.
	if env.Message != "budget must be a positive number; name is required" {
		t.Errorf("message: got %q", env.Message)
	}
}

func TestErrorHandlerKeepsEchoErrors(t *testing.T) {
	status, env := serveError(t, echo.NewHTTPError(http.StatusBadRequest, "invalid payload"))
	if status != http.StatusBadRequest {
		t.Fatalf("status: got %d", status)
	}
	if env.Message != "invalid payload" {
		t.Errorf("message: got %q", env.Message)
	}
}

func TestErrorHandlerHidesUnexpectedErrors(t *testing.T) {
	status, env := serveError(t, errors.New("mongo: socket closed"))
	if status != http.StatusInternalServerError {
		t.Fatalf("status: got %d", status)
	}
	if env.Message != "internal server error" {
		t.Errorf("internal details must not leak, got %q", env.Message)
	}
}

func TestErrorHandlerUnknownRoute(t *testing.T) {
	e := echo.New()
	e.HTTPErrorHandler = NewHTTPErrorHandler(zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/api/nowhere", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status: got %d", rec.Code)
	}
	var env handler.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatal(err)
	}
	if !env.Error {
		t.Errorf("envelope flags: %+v", env)
	}
}
