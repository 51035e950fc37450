package validation

import (
	"regexp"
	"strings"
	"testing"
	"time"
)

// mapGetter builds a Getter over a literal field map.
func mapGetter(fields map[string]Value) Getter {
	return func(field string) Value {
		if v, ok := fields[field]; ok {
			return v
		}
		return Absent()
	}
}

func TestRequired(t *testing.T) {
	rule := Required()

	cases := []struct {
		name  string
		value Value
		want  bool // want a violation
	}{
		{"absent", Absent(), true},
		{"blank string", String("   "), true},
		{"zero number", Number(0), true},
		{"zero time", Date(time.Time{}), true},
		{"present string", String("Tower A"), false},
		{"present number", Number(12.5), false},
		{"present time", Date(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)), false},
	}
	for _, tc := range cases {
		got := rule(mapGetter(map[string]Value{"f": tc.value}), "f")
		if (got != "") != tc.want {
			t.Errorf("%s: got %q, want violation=%v", tc.name, got, tc.want)
		}
	}
}

func TestLengthBounds(t *testing.T) {
	rule := Length(3, 5)
	get := func(s string) Getter { return mapGetter(map[string]Value{"f": String(s)}) }

	if msg := rule(get("ab"), "f"); msg == "" {
		t.Error("expected violation for too-short value")
	}
	if msg := rule(get("abcdef"), "f"); msg == "" {
		t.Error("expected violation for too-long value")
	}
	if msg := rule(get("abc"), "f"); msg != "" {
		t.Errorf("unexpected violation: %q", msg)
	}
	// Length defers presence to Required.
	if msg := rule(get(""), "f"); msg != "" {
		t.Errorf("blank value should pass Length, got %q", msg)
	}
	// Surrounding whitespace does not count.
	if msg := rule(get("  abc  "), "f"); msg != "" {
		t.Errorf("trimmed value should pass, got %q", msg)
	}
}

func TestMatch(t *testing.T) {
	rule := Match(regexp.MustCompile(`^[a-zA-Z0-9-]+$`), "contain only letters, numbers and hyphens")
	get := func(s string) Getter { return mapGetter(map[string]Value{"f": String(s)}) }

	if msg := rule(get("CAT-320D"), "f"); msg != "" {
		t.Errorf("unexpected violation: %q", msg)
	}
	msg := rule(get("CAT 320D!"), "f")
	if msg == "" {
		t.Fatal("expected violation")
	}
	if !strings.Contains(msg, "letters, numbers and hyphens") {
		t.Errorf("message should carry the hint, got %q", msg)
	}
}

func TestOneOf(t *testing.T) {
	rule := OneOf("Pending", "Completed")
	get := func(s string) Getter { return mapGetter(map[string]Value{"f": String(s)}) }

	if msg := rule(get("Pending"), "f"); msg != "" {
		t.Errorf("unexpected violation: %q", msg)
	}
	if msg := rule(get("pending"), "f"); msg == "" {
		t.Error("membership is exact; normalization happens before validation")
	}
	if msg := rule(get("Archived"), "f"); !strings.Contains(msg, "Pending, Completed") {
		t.Errorf("message should list the legal set, got %q", msg)
	}
}

func TestAmount(t *testing.T) {
	rule := Amount(1_000_000)
	get := func(n float64) Getter { return mapGetter(map[string]Value{"f": Number(n)}) }

	if msg := rule(get(500_000), "f"); msg != "" {
		t.Errorf("unexpected violation: %q", msg)
	}
	if msg := rule(get(-5), "f"); msg == "" {
		t.Error("expected violation for negative amount")
	}
	if msg := rule(get(1_000_001), "f"); msg == "" {
		t.Error("expected violation above the cap")
	}
}

func TestNotFuture(t *testing.T) {
	rule := NotFuture()
	past := mapGetter(map[string]Value{"f": Date(time.Now().UTC().Add(-time.Hour))})
	future := mapGetter(map[string]Value{"f": Date(time.Now().UTC().Add(time.Hour))})

	if msg := rule(past, "f"); msg != "" {
		t.Errorf("unexpected violation: %q", msg)
	}
	if msg := rule(future, "f"); msg == "" {
		t.Error("expected violation for future date")
	}
}

func TestNotAfter(t *testing.T) {
	rule := NotAfter("end")
	day := func(d int) Value { return Date(time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)) }

	ordered := mapGetter(map[string]Value{"start": day(1), "end": day(31)})
	inverted := mapGetter(map[string]Value{"start": day(31), "end": day(1)})
	halfSet := mapGetter(map[string]Value{"start": day(31)})

	if msg := rule(ordered, "start"); msg != "" {
		t.Errorf("unexpected violation: %q", msg)
	}
	if msg := rule(inverted, "start"); msg == "" {
		t.Error("expected violation when start is after end")
	}
	if msg := rule(halfSet, "start"); msg != "" {
		t.Errorf("missing counterpart should pass, got %q", msg)
	}
}

func TestDigits(t *testing.T) {
	rule := Digits()
	get := func(s string) Getter { return mapGetter(map[string]Value{"f": String(s)}) }

	valid := []string{"+52 55 1234 5678", "5551234567", "555-123-4567"}
	for _, s := range valid {
		if msg := rule(get(s), "f"); msg != "" {
			t.Errorf("%q: unexpected violation %q", s, msg)
		}
	}
	invalid := []string{"12345", "abc-123-4567", "+12345678901234567"}
	for _, s := range invalid {
		if msg := rule(get(s), "f"); msg == "" {
			t.Errorf("%q: expected violation", s)
		}
	}
}

func TestEmail(t *testing.T) {
	rule := Email()
	get := func(s string) Getter { return mapGetter(map[string]Value{"f": String(s)}) }

	if msg := rule(get("a@example.com"), "f"); msg != "" {
		t.Errorf("unexpected violation: %q", msg)
	}
	for _, s := range []string{"not-an-email", "a@b", "a b@c.com"} {
		if msg := rule(get(s), "f"); msg == "" {
			t.Errorf("%q: expected violation", s)
		}
	}
}

func TestPolicyFirstViolationPerFieldWins(t *testing.T) {
	policy := Policy{
		{Name: "name", Rules: []Rule{Required(), Length(3, 50)}},
	}
	v := policy.Validate(mapGetter(map[string]Value{"name": String(" ")}))
	if v["name"] != "name is required" {
		t.Errorf("expected the Required message first, got %q", v["name"])
	}
}

func TestPolicyDiscriminatorBranch(t *testing.T) {
	policy := Policy{
		{Name: "kind", Rules: []Rule{Required()}},
		{
			Name:  "vendor",
			Rules: []Rule{Required()},
			When:  func(get Getter) bool { return get("kind").Str == "Rented" },
		},
	}

	owned := policy.Validate(mapGetter(map[string]Value{"kind": String("Owned")}))
	if _, ok := owned["vendor"]; ok {
		t.Error("vendor rules must be inert outside the rented branch")
	}

	rented := policy.Validate(mapGetter(map[string]Value{"kind": String("Rented")}))
	if rented["vendor"] == "" {
		t.Error("vendor must be required in the rented branch")
	}
}

func TestViolationsErrorJoinsInFieldOrder(t *testing.T) {
	v := Violations{"b": "b is bad", "a": "a is bad"}
	if got := v.Error(); got != "a is bad; b is bad" {
		t.Errorf("got %q", got)
	}
}

func TestPolicyValidReturnsNil(t *testing.T) {
	policy := Policy{{Name: "name", Rules: []Rule{Required()}}}
	if v := policy.Validate(mapGetter(map[string]Value{"name": String("ok")})); v != nil {
		t.Errorf("expected nil for a valid record, got %v", v)
	}
}
