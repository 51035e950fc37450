package client

import (
	"strconv"
	"strings"
	"time"

	"github.com/fieldops/construction-api/internal/core/validation"
)

// Parser converts one raw form input into a typed validation.Value.
// The second return is a violation suffix ("must be a number") for
// unparseable input, empty when parsing succeeded.
type Parser func(raw string) (validation.Value, string)

// Text passes a string field through unchanged.
func Text() Parser {
	return func(raw string) (validation.Value, string) {
		return validation.String(raw), ""
	}
}

// Amount parses a numeric field.
func Amount() Parser {
	return func(raw string) (validation.Value, string) {
		n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return validation.Absent(), "must be a number"
		}
		return validation.Number(n), ""
	}
}

// Date parses a YYYY-MM-DD field.
func Date() Parser {
	return func(raw string) (validation.Value, string) {
		t, err := time.Parse("2006-01-02", strings.TrimSpace(raw))
		if err != nil {
			return validation.Absent(), "must be a valid date (YYYY-MM-DD)"
		}
		return validation.Date(t.UTC()), ""
	}
}

// Form holds an in-flight draft record the way a UI form does: raw
// string inputs, per-field touched flags, and a violation mapping
// recomputed on every change against the same validation.Policy the
// server enforces. Client-side validation is a UX optimization only;
// the server re-applies the policy authoritatively.
type Form struct {
	policy     validation.Policy
	parsers    map[string]Parser
	values     map[string]string
	touched    map[string]bool
	violations validation.Violations
}

// NewForm builds a form over a policy. parsers maps field names to
// input parsers; fields without one are treated as text.
func NewForm(policy validation.Policy, parsers map[string]Parser) *Form {
	if parsers == nil {
		parsers = map[string]Parser{}
	}
	f := &Form{
		policy:  policy,
		parsers: parsers,
		values:  map[string]string{},
		touched: map[string]bool{},
	}
	f.revalidate()
	return f
}

// Set records a field edit, marks the field touched, and recomputes
// all violations.
func (f *Form) Set(field, raw string) {
	f.values[field] = raw
	f.touched[field] = true
	f.revalidate()
}

// FieldError returns the field's current violation, but only once the
// user has touched the field, so pristine forms show no errors.
func (f *Form) FieldError(field string) string {
	if !f.touched[field] {
		return ""
	}
	return f.violations[field]
}

// Violations returns a copy of the current violation mapping.
func (f *Form) Violations() validation.Violations {
	out := validation.Violations{}
	for k, v := range f.violations {
		out[k] = v
	}
	return out
}

// Valid reports whether the draft currently satisfies the policy.
func (f *Form) Valid() bool { return len(f.violations) == 0 }

// Submit marks every field touched, re-validates authoritatively, and
// either aborts wholesale with the full violation mapping or returns
// the normalized payload ready for the transport client. A submission
// is never partial.
func (f *Form) Submit() (map[string]any, error) {
	for _, name := range f.policy.FieldNames() {
		f.touched[name] = true
	}
	f.revalidate()
	if len(f.violations) > 0 {
		return nil, f.Violations()
	}

	payload := map[string]any{}
	for field, raw := range f.values {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		val, _ := f.parse(field, raw)
		switch val.Kind {
		case validation.KindNumber:
			payload[field] = val.Num
		case validation.KindTime:
			payload[field] = val.Time.Format("2006-01-02")
		default:
			payload[field] = raw
		}
	}
	return payload, nil
}

func (f *Form) parse(field, raw string) (validation.Value, string) {
	parser, ok := f.parsers[field]
	if !ok {
		parser = Text()
	}
	return parser(raw)
}

// revalidate runs the shared policy over the draft. Parse failures win
// over rule violations for the same field, since the rule never saw a
// usable value.
func (f *Form) revalidate() {
	parseErrs := validation.Violations{}
	get := func(field string) validation.Value {
		raw, ok := f.values[field]
		if !ok || strings.TrimSpace(raw) == "" {
			return validation.Absent()
		}
		val, msg := f.parse(field, raw)
		if msg != "" {
			parseErrs[field] = field + " " + msg
			return validation.Absent()
		}
		return val
	}

	violations := f.policy.Validate(get)
	if violations == nil && len(parseErrs) == 0 {
		f.violations = nil
		return
	}
	merged := validation.Violations{}
	for k, v := range violations {
		merged[k] = v
	}
	for k, v := range parseErrs {
		merged[k] = v
	}
	f.violations = merged
}
