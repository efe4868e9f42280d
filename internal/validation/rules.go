// Package validation holds the rule primitives and the per-request composite
// validators. Every validator is fail-fast: the first broken rule is returned
// as a *models.ValidationError and nothing after it is checked.
package validation

import (
	"fmt"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dharmasatrya/bookingsdk/pkg/models"
)

func fail(format string, args ...any) error {
	return models.NewValidationError(format, args...)
}

func Required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fail("%s is required", field)
	}
	return nil
}

func MatchFormat(field, value string, f Format) error {
	if !conforms(f, value) {
		return fail("%s must be a valid %s, got '%s'", field, f.Describe(), value)
	}
	return nil
}

// MatchFormatPtr checks an optional field only when it is set.
func MatchFormatPtr(field string, value *string, f Format) error {
	if value == nil {
		return nil
	}
	return MatchFormat(field, *value, f)
}

func matchPattern(field, value string, re *regexp.Regexp, description string) error {
	if !re.MatchString(value) {
		return fail("%s must be %s, got '%s'", field, description, value)
	}
	return nil
}

func IntRange(field string, value, min, max int) error {
	if value < min || value > max {
		return fail("%s must be between %d and %d, got %d", field, min, max, value)
	}
	return nil
}

func IntRangePtr(field string, value *int, min, max int) error {
	if value == nil {
		return nil
	}
	return IntRange(field, *value, min, max)
}

// NumberRange checks value against optional inclusive bounds.
func NumberRange(field string, value float64, min, max *float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fail("%s must be a finite number", field)
	}
	if min != nil && value < *min {
		return fail("%s must be at least %s, got %s", field, formatNumber(*min), formatNumber(value))
	}
	if max != nil && value > *max {
		return fail("%s must be at most %s, got %s", field, formatNumber(*max), formatNumber(value))
	}
	return nil
}

func Positive(field string, value float64) error {
	if !conforms(FormatPositiveNumber, value) {
		return fail("%s must be a positive number, got %s", field, formatNumber(value))
	}
	return nil
}

func NonNegative(field string, value float64) error {
	if !conforms(FormatNonNegativeNumber, value) {
		return fail("%s must be a non-negative number, got %s", field, formatNumber(value))
	}
	return nil
}

// StringLength counts characters, not bytes.
func StringLength(field, value string, min, max *int) error {
	n := utf8.RuneCountInString(value)
	if min != nil && n < *min {
		return fail("%s must be at least %d characters long", field, *min)
	}
	if max != nil && n > *max {
		return fail("%s must be at most %d characters long", field, *max)
	}
	return nil
}

func LengthBetween(field, value string, min, max int) error {
	return StringLength(field, value, &min, &max)
}

func LengthBetweenPtr(field string, value *string, min, max int) error {
	if value == nil {
		return nil
	}
	return LengthBetween(field, *value, min, max)
}

func MaxLengthPtr(field string, value *string, max int) error {
	if value == nil {
		return nil
	}
	return StringLength(field, *value, nil, &max)
}

// OneOf rejects any value outside the closed, case-sensitive allow-list.
// The message lists the allowed values in declaration order.
func OneOf[T ~string](field string, value T, allowed []T) error {
	if slices.Contains(allowed, value) {
		return nil
	}
	return fail("Invalid %s '%s'. Expected one of: %s", field, value, joinValues(allowed))
}

func OneOfPtr[T ~string](field string, value *T, allowed []T) error {
	if value == nil {
		return nil
	}
	return OneOf(field, *value, allowed)
}

// EachOneOf applies OneOf to every element and rejects duplicates.
func EachOneOf[T ~string](field string, values []T, allowed []T) error {
	seen := make(map[T]bool, len(values))
	for i, v := range values {
		if err := OneOf(fmt.Sprintf("%s[%d]", field, i), v, allowed); err != nil {
			return err
		}
		if seen[v] {
			return fail("%s contains duplicate value '%s'", field, v)
		}
		seen[v] = true
	}
	return nil
}

func NotEmpty[T any](field string, values []T) error {
	if len(values) == 0 {
		return fail("%s must contain at least one item", field)
	}
	return nil
}

func CountBetween[T any](field string, values []T, min, max int) error {
	if len(values) < min {
		if min == 1 {
			return fail("%s must contain at least one item", field)
		}
		return fail("%s must contain at least %d items", field, min)
	}
	if len(values) > max {
		return fail("%s must contain at most %d items, got %d", field, max, len(values))
	}
	return nil
}

func Distinct(field string, values []string) error {
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		if seen[v] {
			return fail("%s contains duplicate value '%s'", field, v)
		}
		seen[v] = true
	}
	return nil
}

// DateNotInPast parses a date field and rejects days before today.
func DateNotInPast(field, value string) (time.Time, error) {
	if err := MatchFormat(field, value, FormatDate); err != nil {
		return time.Time{}, err
	}
	d, _ := parseDate(value)
	if d.Before(today()) {
		return time.Time{}, fail("%s must not be in the past, got '%s'", field, value)
	}
	return d, nil
}

// DateNotInFuture parses a date field and rejects days after today.
func DateNotInFuture(field, value string) (time.Time, error) {
	if err := MatchFormat(field, value, FormatDate); err != nil {
		return time.Time{}, err
	}
	d, _ := parseDate(value)
	if d.After(today()) {
		return time.Time{}, fail("%s must not be in the future, got '%s'", field, value)
	}
	return d, nil
}

// DateOrder rejects an end date that precedes its begin date.
func DateOrder(beginField, begin, endField, end string) error {
	b, ok := parseDate(begin)
	if !ok {
		return MatchFormat(beginField, begin, FormatDate)
	}
	e, ok := parseDate(end)
	if !ok {
		return MatchFormat(endField, end, FormatDate)
	}
	if e.Before(b) {
		return fail("%s must not be before %s", endField, beginField)
	}
	return nil
}

func joinValues[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
