package validation

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// Payload is an untyped request body, as used by partial updates.
type Payload map[string]any

// present reports whether key holds a usable value. Nil and empty strings
// count as absent, which is what RequireFields needs.
func (p Payload) present(key string) bool {
	if !p.set(key) {
		return false
	}
	if s, isString := p[key].(string); isString && strings.TrimSpace(s) == "" {
		return false
	}
	return true
}

// set reports whether key was sent at all. An empty string is set: a partial
// update carrying "" asks the platform to store it, so it must pass the rules.
func (p Payload) set(key string) bool {
	v, ok := p[key]
	return ok && v != nil
}

func RequireFields(p Payload, fields ...string) error {
	for _, f := range fields {
		if !p.present(f) {
			return fail("Missing required field: %s", f)
		}
	}
	return nil
}

func MatchFormatIfPresent(p Payload, field string, f Format) error {
	if !p.set(field) {
		return nil
	}
	if !conforms(f, p[field]) {
		return fail("%s must be a valid %s", field, f.Describe())
	}
	return nil
}

// NumericRange fails when the field is present but not numeric, or outside
// the optional inclusive bounds.
func NumericRange(p Payload, field string, min, max *float64) error {
	if !p.set(field) {
		return nil
	}
	if _, isBool := p[field].(bool); isBool {
		return fail("%s must be numeric", field)
	}
	n, ok := toFloat(p[field])
	if !ok {
		return fail("%s must be numeric", field)
	}
	return NumberRange(field, n, min, max)
}

func StringLengthIfPresent(p Payload, field string, min, max *int) error {
	if !p.set(field) {
		return nil
	}
	s, ok := p[field].(string)
	if !ok {
		return fail("%s must be a string", field)
	}
	n := utf8.RuneCountInString(s)
	if min != nil && n < *min {
		return fail("%s must be at least %d characters long", field, *min)
	}
	if max != nil && n > *max {
		return fail("%s must be at most %d characters long", field, *max)
	}
	return nil
}

func EnumIfPresent(p Payload, field string, allowed []string) error {
	if !p.set(field) {
		return nil
	}
	s, ok := p[field].(string)
	if !ok || !slices.Contains(allowed, s) {
		return fail("Invalid %s '%v'. Expected one of: %s", field, p[field], strings.Join(allowed, ", "))
	}
	return nil
}

func BooleanType(p Payload, field string) error {
	v, ok := p[field]
	if !ok || v == nil {
		return nil
	}
	if _, isBool := v.(bool); !isBool {
		return fail("%s must be a boolean", field)
	}
	return nil
}

// AllowedKeys rejects keys outside the known set.
func AllowedKeys(p Payload, allowed []string) error {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		if !slices.Contains(allowed, k) {
			return fail("Unknown field '%s'. Expected one of: %s", k, strings.Join(allowed, ", "))
		}
	}
	return nil
}
