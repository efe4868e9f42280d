package validation

import (
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/dharmasatrya/bookingsdk/pkg/models"
)

// Format names a canonical shape shared by every validator that checks it.
type Format string

const (
	FormatAirportCode       Format = "airport_code"
	FormatCurrencyCode      Format = "currency_code"
	FormatCountryCode       Format = "country_code"
	FormatDate              Format = "date"
	FormatDateTime          Format = "datetime"
	FormatEmail             Format = "email"
	FormatPhone             Format = "phone"
	FormatPassengerType     Format = "passenger_type"
	FormatPositiveNumber    Format = "positive_number"
	FormatNonNegativeNumber Format = "non_negative_number"
)

const dateLayout = "2006-01-02"

var (
	airportCodeRegex  = regexp.MustCompile(`^[A-Z]{3}$`)
	currencyCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)
	countryCodeRegex  = regexp.MustCompile(`^[A-Z]{2}$`)
	dateRegex         = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	emailRegex        = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRegex        = regexp.MustCompile(`^\+?[0-9\s\-().]{7,20}$`)
)

// dateTimeLayouts are tried in order; the first successful parse wins.
var dateTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05-0700",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

type formatSpec struct {
	description string
	check       func(v any) bool
}

var formatCatalog = map[Format]formatSpec{
	FormatAirportCode:       {"3-letter uppercase airport code", matchString(airportCodeRegex)},
	FormatCurrencyCode:      {"3-letter uppercase ISO 4217 currency code", matchString(currencyCodeRegex)},
	FormatCountryCode:       {"2-letter uppercase country code", matchString(countryCodeRegex)},
	FormatDate:              {"date (YYYY-MM-DD)", isDate},
	FormatDateTime:          {"ISO 8601 date-time", isDateTime},
	FormatEmail:             {"email address", matchString(emailRegex)},
	FormatPhone:             {"phone number", isPhone},
	FormatPassengerType:     {"passenger type (" + joinValues(models.PassengerTypes()) + ")", isPassengerType},
	FormatPositiveNumber:    {"positive number", numberCheck(func(f float64) bool { return f > 0 })},
	FormatNonNegativeNumber: {"non-negative number", numberCheck(func(f float64) bool { return f >= 0 })},
}

// Formats lists every format name the catalog knows.
func Formats() []Format {
	out := make([]Format, 0, len(formatCatalog))
	for f := range formatCatalog {
		out = append(out, f)
	}
	slices.Sort(out)
	return out
}

// Describe returns the human readable name used in error messages.
func (f Format) Describe() string {
	if spec, ok := formatCatalog[f]; ok {
		return spec.description
	}
	return string(f)
}

func conforms(f Format, v any) bool {
	spec, ok := formatCatalog[f]
	if !ok {
		return false
	}
	return spec.check(v)
}

func matchString(re *regexp.Regexp) func(any) bool {
	return func(v any) bool {
		s, ok := v.(string)
		return ok && re.MatchString(s)
	}
}

func isDate(v any) bool {
	_, ok := parseDate(v)
	return ok
}

func parseDate(v any) (time.Time, bool) {
	s, ok := v.(string)
	if !ok || !dateRegex.MatchString(s) {
		return time.Time{}, false
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func isDateTime(v any) bool {
	_, ok := parseDateTime(v)
	return ok
}

func parseDateTime(v any) (time.Time, bool) {
	s, ok := v.(string)
	if !ok || s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func isPhone(v any) bool {
	s, ok := v.(string)
	if !ok || !phoneRegex.MatchString(s) {
		return false
	}
	digits := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits >= 7
}

func isPassengerType(v any) bool {
	s, ok := v.(string)
	return ok && slices.Contains(models.PassengerTypes(), models.PassengerType(s))
}

func numberCheck(pred func(float64) bool) func(any) bool {
	return func(v any) bool {
		f, ok := toFloat(v)
		return ok && pred(f)
	}
}

// toFloat accepts the numeric shapes a decoded JSON payload or a Go caller
// may hand over. Numeric strings are accepted, booleans are not.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case interface{ Float64() (float64, error) }:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
