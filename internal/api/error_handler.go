package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/fieldops/construction-api/internal/api/handler"
	"github.com/fieldops/construction-api/internal/core/domain"
	"github.com/fieldops/construction-api/internal/core/validation"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps validation violations and the domain sentinels to their
//     HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders every failure through the uniform envelope.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, handler.Failure(msg))
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// A rejected candidate record: report every field violation.
	var violations validation.Violations
	if errors.As(err, &violations) {
		return http.StatusBadRequest, violations.Error()
	}

	// Domain sentinels -> deterministic HTTP codes. A malformed id is a
	// caller mistake (400), an absent record is 404; a store conflict
	// (duplicate unique field) maps to 400 like other rejected writes.
	switch {
	case errors.Is(err, domain.ErrInvalidID):
		return http.StatusBadRequest, "invalid resource id"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "resource not found"
	case errors.Is(err, domain.ErrConflict):
		return http.StatusBadRequest, "resource already exists"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
