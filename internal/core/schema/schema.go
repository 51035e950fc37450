// Package schema holds the per-entity declarations that parameterize
// the generic resource pipeline: collection name, uniqueness
// constraints, the validation policy, and the normalization hooks.
// Adding an entity to the API means adding one declaration here plus a
// request codec at the transport edge; no controller or repository code
// is duplicated.
package schema

import (
	"context"
	"strings"

	"github.com/fieldops/construction-api/internal/core/validation"
)

// Definition describes one REST resource end to end.
type Definition[T any] struct {
	// Name is the URL segment under /api and the metric label.
	Name string
	// Collection is the backing store collection.
	Collection string
	// Unique lists store field names that carry unique indexes.
	Unique []string
	// Policy is the authoritative whole-record validator.
	Policy validation.Policy
	// Fields projects a record into the policy's field space.
	Fields func(rec *T) validation.Getter
	// Normalize canonicalizes enum casing and trims input. Runs before
	// validation so membership checks see canonical spellings.
	Normalize func(rec *T)
	// Prepare runs after validation and before persistence, for
	// irreversible transforms such as secret hashing.
	Prepare func(ctx context.Context, rec *T) error
	// Sanitize strips server-only fields before a record leaves the
	// service layer.
	Sanitize func(rec *T)
}

// Validate evaluates the policy against a record.
func (d Definition[T]) Validate(rec *T) validation.Violations {
	return d.Policy.Validate(d.Fields(rec))
}

// canonical maps a value onto its declared spelling, case-insensitively.
// Unrecognized values pass through unchanged so the policy can report
// the enum violation with the caller's original input.
func canonical(value string, set []string) string {
	trimmed := strings.TrimSpace(value)
	for _, s := range set {
		if strings.EqualFold(trimmed, s) {
			return s
		}
	}
	return trimmed
}
