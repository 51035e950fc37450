// Package validation implements the field-rule policies shared by the
// HTTP services (the authoritative gate before persistence) and the
// form-state client (live feedback). A policy is a plain value, so both
// sides evaluate exactly the same rules and cannot drift apart.
package validation

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// Kind discriminates the typed content of a Value.
type Kind int

const (
	KindAbsent Kind = iota
	KindString
	KindNumber
	KindTime
)

// Value is a single field value presented to rules. Entities and form
// drafts both project their fields into Values, which is what lets one
// policy validate either representation.
type Value struct {
	Kind Kind
	Str  string
	Num  float64
	Time time.Time
}

func String(s string) Value  { return Value{Kind: KindString, Str: s} }
func Number(f float64) Value { return Value{Kind: KindNumber, Num: f} }
func Date(t time.Time) Value { return Value{Kind: KindTime, Time: t} }
func Absent() Value          { return Value{Kind: KindAbsent} }

// DatePtr projects an optional date field.
func DatePtr(t *time.Time) Value {
	if t == nil {
		return Absent()
	}
	return Date(*t)
}

// Blank reports whether the value counts as "not provided". Numeric
// zero is blank because every numeric field in this domain is strictly
// positive, so zero can only mean unset.
func (v Value) Blank() bool {
	switch v.Kind {
	case KindString:
		return strings.TrimSpace(v.Str) == ""
	case KindNumber:
		return v.Num == 0
	case KindTime:
		return v.Time.IsZero()
	default:
		return true
	}
}

// Getter resolves a field name to its current value.
type Getter func(field string) Value

// Rule checks one field and returns a human-readable violation, or ""
// when the field passes. Rules receive the whole Getter so cross-field
// rules (date ordering) can see their counterpart.
type Rule func(get Getter, field string) string

// Violations maps field names to violation messages. An empty (nil)
// mapping means the record is valid.
type Violations map[string]string

// Error renders all violations joined in field order, so a Violations
// value can travel as a regular error.
func (v Violations) Error() string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	msgs := make([]string, 0, len(fields))
	for _, f := range fields {
		msgs = append(msgs, v[f])
	}
	return strings.Join(msgs, "; ")
}

// Field binds a field name to its ordered rules. When is an optional
// discriminator guard: rules only apply while it reports true.
type Field struct {
	Name  string
	Rules []Rule
	When  func(get Getter) bool
}

// Policy is the whole-record validator: an ordered list of field rules.
type Policy []Field

// Validate evaluates every active field and returns at most one
// violation per field (the first rule that fails wins). A nil result
// means the record may be persisted.
func (p Policy) Validate(get Getter) Violations {
	var out Violations
	for _, f := range p {
		if f.When != nil && !f.When(get) {
			continue
		}
		for _, r := range f.Rules {
			if msg := r(get, f.Name); msg != "" {
				if out == nil {
					out = Violations{}
				}
				out[f.Name] = msg
				break
			}
		}
	}
	return out
}

// FieldNames lists the fields a policy covers, in declaration order.
func (p Policy) FieldNames() []string {
	names := make([]string, 0, len(p))
	for _, f := range p {
		names = append(names, f.Name)
	}
	return names
}

// --- Rules -----------------------------------------------------------------

// Required rejects blank values. Every other rule passes on blank
// fields, so optional fields simply omit Required.
func Required() Rule {
	return func(get Getter, field string) string {
		if get(field).Blank() {
			return field + " is required"
		}
		return ""
	}
}

// Length bounds the trimmed rune count of a string field.
func Length(min, max int) Rule {
	return func(get Getter, field string) string {
		v := get(field)
		if v.Blank() {
			return ""
		}
		n := utf8.RuneCountInString(strings.TrimSpace(v.Str))
		if n < min || n > max {
			return fmt.Sprintf("%s must be between %d and %d characters", field, min, max)
		}
		return ""
	}
}

// MaxLength bounds only the upper end, for optional free-text fields.
func MaxLength(max int) Rule {
	return func(get Getter, field string) string {
		v := get(field)
		if v.Blank() {
			return ""
		}
		if utf8.RuneCountInString(strings.TrimSpace(v.Str)) > max {
			return fmt.Sprintf("%s must be at most %d characters", field, max)
		}
		return ""
	}
}

// Match constrains a string to a character shape. hint finishes the
// sentence "<field> must ...".
func Match(pattern *regexp.Regexp, hint string) Rule {
	return func(get Getter, field string) string {
		v := get(field)
		if v.Blank() {
			return ""
		}
		if !pattern.MatchString(strings.TrimSpace(v.Str)) {
			return field + " must " + hint
		}
		return ""
	}
}

// OneOf restricts a field to a closed value set.
func OneOf(values ...string) Rule {
	return func(get Getter, field string) string {
		v := get(field)
		if v.Blank() {
			return ""
		}
		for _, allowed := range values {
			if v.Str == allowed {
				return ""
			}
		}
		return fmt.Sprintf("%s must be one of: %s", field, strings.Join(values, ", "))
	}
}

// Amount requires a finite, strictly positive number no greater than max.
func Amount(max float64) Rule {
	return func(get Getter, field string) string {
		v := get(field)
		if v.Blank() {
			return ""
		}
		if math.IsNaN(v.Num) || math.IsInf(v.Num, 0) || v.Num <= 0 {
			return field + " must be a positive number"
		}
		if v.Num > max {
			return fmt.Sprintf("%s must not exceed %.0f", field, max)
		}
		return ""
	}
}

// NotFuture rejects dates after the moment of evaluation.
func NotFuture() Rule {
	return func(get Getter, field string) string {
		v := get(field)
		if v.Blank() {
			return ""
		}
		if v.Time.After(time.Now().UTC()) {
			return field + " must not be in the future"
		}
		return ""
	}
}

// NotAfter enforces start <= end ordering against another date field.
// The rule is attached to the earlier field; it passes while either
// side is blank (Required rules own presence).
func NotAfter(other string) Rule {
	return func(get Getter, field string) string {
		v, o := get(field), get(other)
		if v.Blank() || o.Blank() {
			return ""
		}
		if v.Time.After(o.Time) {
			return field + " must not be after " + other
		}
		return ""
	}
}

// Digits requires 10-15 digits with an optional leading + and space/dash
// separators, the phone shape used across entities.
func Digits() Rule {
	shape := regexp.MustCompile(`^\+?[0-9][0-9 \-]*$`)
	return func(get Getter, field string) string {
		v := get(field)
		if v.Blank() {
			return ""
		}
		s := strings.TrimSpace(v.Str)
		if !shape.MatchString(s) {
			return field + " must contain only digits, spaces, dashes and an optional leading +"
		}
		n := 0
		for _, r := range s {
			if unicode.IsDigit(r) {
				n++
			}
		}
		if n < 10 || n > 15 {
			return field + " must contain 10 to 15 digits"
		}
		return ""
	}
}

// Email requires the usual local@domain.tld shape.
func Email() Rule {
	shape := regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	return Match(shape, "be a valid email address")
}
