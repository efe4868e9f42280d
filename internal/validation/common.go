package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dharmasatrya/bookingsdk/pkg/models"
)

const (
	maxPassengersPerType = 9
	maxPassengersTotal   = 9
)

var (
	cultureCodeRegex   = regexp.MustCompile(`^[a-z]{2}-[A-Z]{2}$`)
	promotionCodeRegex = regexp.MustCompile(`^[A-Za-z0-9]{1,8}$`)
	alnumRegex         = regexp.MustCompile(`^[A-Za-z0-9]+$`)
)

// postalCodePatterns holds the one postal-code table used by every validator.
// Countries not listed are not checked.
var postalCodePatterns = map[string]*regexp.Regexp{
	"US": regexp.MustCompile(`^\d{5}(-\d{4})?$`),
	"CA": regexp.MustCompile(`^[A-Z]\d[A-Z] ?\d[A-Z]\d$`),
	"GB": regexp.MustCompile(`^[A-Z]{1,2}\d[A-Z\d]? ?\d[A-Z]{2}$`),
	"KE": regexp.MustCompile(`^\d{5}$`),
	"DE": regexp.MustCompile(`^\d{5}$`),
	"FR": regexp.MustCompile(`^\d{5}$`),
}

func validatePassengers(field string, p models.Passengers) error {
	if err := NotEmpty(field+".types", p.Types); err != nil {
		return err
	}
	seen := make(map[string]bool, len(p.Types))
	total := 0
	for i, t := range p.Types {
		path := fmt.Sprintf("%s.types[%d]", field, i)
		if err := Required(path+".type", t.Type); err != nil {
			return err
		}
		if err := MatchFormat(path+".type", t.Type, FormatPassengerType); err != nil {
			return err
		}
		if err := IntRange(path+".count", t.Count, 1, maxPassengersPerType); err != nil {
			return err
		}
		if err := LengthBetweenPtr(path+".discountCode", t.DiscountCode, 1, 4); err != nil {
			return err
		}
		if seen[t.Type] {
			return fail("%s.types contains passenger type '%s' more than once", field, t.Type)
		}
		seen[t.Type] = true
		total += t.Count
	}
	if total > maxPassengersTotal {
		return fail("%s total count must not exceed %d, got %d", field, maxPassengersTotal, total)
	}
	return MatchFormatPtr(field+".residentCountry", p.ResidentCountry, FormatCountryCode)
}

// validateStationPair checks a single origin/destination pair.
func validateStationPair(originField, origin, destinationField, destination string) error {
	if err := Required(originField, origin); err != nil {
		return err
	}
	if err := MatchFormat(originField, origin, FormatAirportCode); err != nil {
		return err
	}
	if err := Required(destinationField, destination); err != nil {
		return err
	}
	if err := MatchFormat(destinationField, destination, FormatAirportCode); err != nil {
		return err
	}
	if origin == destination {
		return fail("%s and %s must be different, both are '%s'", originField, destinationField, origin)
	}
	return nil
}

func validatePromotionCode(field string, code *string) error {
	if code == nil {
		return nil
	}
	return matchPattern(field, *code, promotionCodeRegex, "1-8 letters or digits")
}

func validateCultureCode(field string, code *string) error {
	if code == nil {
		return nil
	}
	return matchPattern(field, *code, cultureCodeRegex, "a culture code such as en-US")
}

func validateName(field string, n models.Name) error {
	if err := Required(field+".first", n.First); err != nil {
		return err
	}
	if err := LengthBetween(field+".first", n.First, 1, 64); err != nil {
		return err
	}
	if err := MaxLengthPtr(field+".middle", n.Middle, 64); err != nil {
		return err
	}
	if err := Required(field+".last", n.Last); err != nil {
		return err
	}
	if err := LengthBetween(field+".last", n.Last, 1, 64); err != nil {
		return err
	}
	if err := MaxLengthPtr(field+".title", n.Title, 10); err != nil {
		return err
	}
	return MaxLengthPtr(field+".suffix", n.Suffix, 10)
}

func validateAddress(field string, a models.Address) error {
	if err := Required(field+".lineOne", a.LineOne); err != nil {
		return err
	}
	if err := LengthBetween(field+".lineOne", a.LineOne, 1, 128); err != nil {
		return err
	}
	if err := MaxLengthPtr(field+".lineTwo", a.LineTwo, 128); err != nil {
		return err
	}
	if err := Required(field+".city", a.City); err != nil {
		return err
	}
	if err := LengthBetween(field+".city", a.City, 1, 64); err != nil {
		return err
	}
	if err := MaxLengthPtr(field+".provinceState", a.ProvinceState, 64); err != nil {
		return err
	}
	if err := Required(field+".countryCode", a.CountryCode); err != nil {
		return err
	}
	if err := MatchFormat(field+".countryCode", a.CountryCode, FormatCountryCode); err != nil {
		return err
	}
	if a.PostalCode == nil {
		return nil
	}
	return ValidatePostalCode(field+".postalCode", a.CountryCode, *a.PostalCode)
}

// ValidatePostalCode applies the country's pattern. Matching is case-insensitive
// and unknown countries pass.
func ValidatePostalCode(field, countryCode, postalCode string) error {
	if err := Required(field, postalCode); err != nil {
		return err
	}
	re, ok := postalCodePatterns[countryCode]
	if !ok {
		return nil
	}
	if !re.MatchString(strings.ToUpper(strings.TrimSpace(postalCode))) {
		return fail("%s '%s' is not a valid postal code for %s", field, postalCode, countryCode)
	}
	return nil
}

func validatePhoneNumber(field string, p models.PhoneNumber) error {
	if err := OneOf(field+".type", p.Type, models.PhoneTypes()); err != nil {
		return err
	}
	if err := Required(field+".number", p.Number); err != nil {
		return err
	}
	return MatchFormat(field+".number", p.Number, FormatPhone)
}

func validateCurrencyPtr(field string, code *string) error {
	return MatchFormatPtr(field, code, FormatCurrencyCode)
}

func validateRequiredCurrency(field, code string) error {
	if err := Required(field, code); err != nil {
		return err
	}
	return MatchFormat(field, code, FormatCurrencyCode)
}
