package validation

import (
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"
)

// KeyKind identifies a path parameter. Each kind carries its own minimum
// length and, for some, a character pattern.
type KeyKind string

const (
	KeyJourney          KeyKind = "Journey key"
	KeySegment          KeyKind = "Segment key"
	KeyPassenger        KeyKind = "Passenger key"
	KeyUnit             KeyKind = "Unit key"
	KeyFareAvailability KeyKind = "Fare availability key"
	KeyBundleCode       KeyKind = "Bundle code"
	KeySsr              KeyKind = "SSR key"
	KeyMessage          KeyKind = "Message key"
	KeyQueueCode        KeyKind = "Queue code"
	KeyQueueItem        KeyKind = "Queue item key"
	KeyPayment          KeyKind = "Payment key"
	KeyAddOn            KeyKind = "Add-on key"
	KeyUser             KeyKind = "User key"
	KeyRecordLocator    KeyKind = "Record locator"
	KeyEquipmentType    KeyKind = "Equipment type"
	KeyConfiguration    KeyKind = "Configuration code"
	KeyPageKey          KeyKind = "Page key"
)

type keyRule struct {
	minLength   int
	pattern     *regexp.Regexp
	description string
}

var keyRules = map[KeyKind]keyRule{
	KeyJourney:          {minLength: 10},
	KeySegment:          {minLength: 10},
	KeyPassenger:        {minLength: 5},
	KeyUnit:             {minLength: 5},
	KeyFareAvailability: {minLength: 10},
	KeyBundleCode:       {minLength: 1, pattern: regexp.MustCompile(`^[A-Z0-9]{1,4}$`), description: "1-4 uppercase letters or digits"},
	KeySsr:              {minLength: 5},
	KeyMessage:          {minLength: 5},
	KeyQueueCode:        {minLength: 1, pattern: regexp.MustCompile(`^[A-Z0-9]{1,10}$`), description: "1-10 uppercase letters or digits"},
	KeyQueueItem:        {minLength: 5},
	KeyPayment:          {minLength: 5},
	KeyAddOn:            {minLength: 5},
	KeyUser:             {minLength: 1},
	KeyRecordLocator:    {minLength: 6, pattern: regexp.MustCompile(`^[A-Z0-9]{6}$`), description: "6 uppercase letters or digits"},
	KeyEquipmentType:    {minLength: 3, pattern: regexp.MustCompile(`^[A-Z0-9]{3}$`), description: "3 uppercase letters or digits"},
	KeyConfiguration:    {minLength: 1, pattern: regexp.MustCompile(`^[A-Z0-9]{1,8}$`), description: "1-8 uppercase letters or digits"},
	KeyPageKey:          {minLength: 5},
}

// ValidateKey checks a key before it is interpolated into a request path.
func ValidateKey(kind KeyKind, value string) error {
	return validateKeyField(string(kind), kind, value)
}

func validateKeyField(field string, kind KeyKind, value string) error {
	if strings.TrimSpace(value) == "" {
		return fail("%s is required", field)
	}
	rule, ok := keyRules[kind]
	if !ok {
		return nil
	}
	if utf8.RuneCountInString(value) < rule.minLength {
		return fail("%s must be at least %d characters", field, rule.minLength)
	}
	if rule.pattern != nil && !rule.pattern.MatchString(value) {
		return fail("%s must be %s, got '%s'", field, rule.description, value)
	}
	if strings.ContainsAny(value, "/?#") {
		return fail("%s contains characters not allowed in a path", field)
	}
	return nil
}

func validateKeyPtr(field string, kind KeyKind, value *string) error {
	if value == nil {
		return nil
	}
	return validateKeyField(field, kind, *value)
}

// validateKeyList requires every key to be valid and unique.
func validateKeyList(field string, kind KeyKind, keys []string) error {
	for i, k := range keys {
		if err := validateKeyField(field+"["+strconv.Itoa(i)+"]", kind, k); err != nil {
			return err
		}
	}
	return Distinct(field, keys)
}

// ValidateVersion restricts an explicit API version to the supported set.
func ValidateVersion(version int, allowed ...int) error {
	if slices.Contains(allowed, version) {
		return nil
	}
	parts := make([]string, len(allowed))
	for i, v := range allowed {
		parts[i] = strconv.Itoa(v)
	}
	return fail("Unsupported API version %d. Expected one of: %s", version, strings.Join(parts, ", "))
}
