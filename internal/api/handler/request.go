package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fieldops/construction-api/internal/core/validation"
)

// decodeStrict binds a request body into a statically shaped DTO,
// rejecting unknown fields so clients cannot smuggle in identifiers,
// timestamps, or other server-only fields.
func decodeStrict(c echo.Context, into any) error {
	dec := json.NewDecoder(c.Request().Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(into); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload: "+err.Error())
	}
	if err := c.Validate(into); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

var dateLayouts = []string{"2006-01-02", time.RFC3339}

// parseDate accepts plain dates and RFC 3339 instants. A parse failure
// surfaces as a field violation so it maps to the same 400 envelope as
// any other validation error.
func parseDate(field, raw string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, validation.Violations{field: field + " must be a valid date (YYYY-MM-DD)"}
}

// parseDatePtr is parseDate for optional date fields.
func parseDatePtr(field string, raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	t, err := parseDate(field, *raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
