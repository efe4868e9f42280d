package validation

import (
	"fmt"
	"regexp"

	"github.com/dharmasatrya/bookingsdk/pkg/models"
)

const (
	maxSearchCriteria   = 4
	maxFaresPerJourney  = 20
	maxConnections      = 3
	maxLowFareWindow    = 31
	maxLengthOfStayDays = 365
)

var (
	productClassRegex = regexp.MustCompile(`^[A-Za-z0-9]{1,2}$`)
	carrierCodeRegex  = regexp.MustCompile(`^[A-Z0-9]{2}$`)
	fareTypeRegex     = regexp.MustCompile(`^[A-Z0-9]{1,2}$`)
)

func ValidateAvailabilitySearch(req models.AvailabilitySearchRequest) error {
	if err := validatePassengers("passengers", req.Passengers); err != nil {
		return err
	}
	if err := CountBetween("criteria", req.Criteria, 1, maxSearchCriteria); err != nil {
		return err
	}
	for i, c := range req.Criteria {
		if err := validateTripCriteria(fmt.Sprintf("criteria[%d]", i), c); err != nil {
			return err
		}
	}
	if req.Codes != nil {
		if err := validateAvailabilityCodes("codes", *req.Codes); err != nil {
			return err
		}
	}
	if req.FareFilters != nil {
		if err := validateFareFilters("fareFilters", *req.FareFilters); err != nil {
			return err
		}
	}
	if err := OneOfPtr("taxesAndFees", req.TaxesAndFees, models.TaxesAndFeesModes()); err != nil {
		return err
	}
	return IntRangePtr("numberOfFaresPerJourney", req.NumberOfFaresPerJourney, 1, maxFaresPerJourney)
}

func validateTripCriteria(field string, c models.TripCriteria) error {
	if err := validateTripStations(field+".stations", c.Stations); err != nil {
		return err
	}
	if err := validateTripDates(field+".dates", c.Dates); err != nil {
		return err
	}
	if c.Filters != nil {
		return validateTripFilters(field+".filters", *c.Filters)
	}
	return nil
}

func validateTripStations(field string, s models.TripStations) error {
	if err := NotEmpty(field+".departureStations", s.DepartureStations); err != nil {
		return err
	}
	if err := NotEmpty(field+".arrivalStations", s.ArrivalStations); err != nil {
		return err
	}
	departures := make(map[string]bool, len(s.DepartureStations))
	for i, code := range s.DepartureStations {
		if err := MatchFormat(fmt.Sprintf("%s.departureStations[%d]", field, i), code, FormatAirportCode); err != nil {
			return err
		}
		departures[code] = true
	}
	if err := Distinct(field+".departureStations", s.DepartureStations); err != nil {
		return err
	}
	for i, code := range s.ArrivalStations {
		if err := MatchFormat(fmt.Sprintf("%s.arrivalStations[%d]", field, i), code, FormatAirportCode); err != nil {
			return err
		}
		if departures[code] {
			return fail("%s: departure and arrival station must be different, '%s' appears in both", field, code)
		}
	}
	return Distinct(field+".arrivalStations", s.ArrivalStations)
}

func validateTripDates(field string, d models.TripDates) error {
	if err := Required(field+".beginDate", d.BeginDate); err != nil {
		return err
	}
	if _, err := DateNotInPast(field+".beginDate", d.BeginDate); err != nil {
		return err
	}
	if d.EndDate == nil {
		return nil
	}
	if err := MatchFormat(field+".endDate", *d.EndDate, FormatDate); err != nil {
		return err
	}
	return DateOrder(field+".beginDate", d.BeginDate, field+".endDate", *d.EndDate)
}

func validateTripFilters(field string, f models.TripFilters) error {
	if err := IntRangePtr(field+".maxConnections", f.MaxConnections, 0, maxConnections); err != nil {
		return err
	}
	for i, pc := range f.ProductClasses {
		if err := matchPattern(fmt.Sprintf("%s.productClasses[%d]", field, i), pc, productClassRegex, "1-2 letters or digits"); err != nil {
			return err
		}
	}
	if err := OneOfPtr(field+".type", f.Type, models.JourneyTypes()); err != nil {
		return err
	}
	if f.CarrierCode != nil {
		return matchPattern(field+".carrierCode", *f.CarrierCode, carrierCodeRegex, "a 2-character carrier code")
	}
	return nil
}

func validateAvailabilityCodes(field string, c models.AvailabilityCodes) error {
	if err := validateCurrencyPtr(field+".currencyCode", c.CurrencyCode); err != nil {
		return err
	}
	if err := validatePromotionCode(field+".promotionCode", c.PromotionCode); err != nil {
		return err
	}
	return LengthBetweenPtr(field+".sourceOrganization", c.SourceOrganization, 1, 10)
}

func validateFareFilters(field string, f models.FareFilters) error {
	for i, t := range f.Types {
		if err := matchPattern(fmt.Sprintf("%s.types[%d]", field, i), t, fareTypeRegex, "a 1-2 character fare type code"); err != nil {
			return err
		}
	}
	return OneOfPtr(field+".loyalty", f.Loyalty, models.LoyaltyFilters())
}

func ValidateSimpleSearch(req models.SimpleSearchRequest) error {
	if err := validateStationPair("origin", req.Origin, "destination", req.Destination); err != nil {
		return err
	}
	if err := Required("beginDate", req.BeginDate); err != nil {
		return err
	}
	if _, err := DateNotInPast("beginDate", req.BeginDate); err != nil {
		return err
	}
	if req.EndDate != nil {
		if err := DateOrder("beginDate", req.BeginDate, "endDate", *req.EndDate); err != nil {
			return err
		}
	}
	if err := validatePassengers("passengers", req.Passengers); err != nil {
		return err
	}
	if err := validateCurrencyPtr("currencyCode", req.CurrencyCode); err != nil {
		return err
	}
	if err := OneOfPtr("loyalty", req.Loyalty, models.LoyaltyFilters()); err != nil {
		return err
	}
	if err := OneOfPtr("taxesAndFees", req.TaxesAndFees, models.TaxesAndFeesModes()); err != nil {
		return err
	}
	return OneOfPtr("cabinClass", req.CabinClass, models.CabinClasses())
}

func ValidateLowFareSearch(req models.LowFareSearchRequest) error {
	if err := validateStationPair("origin", req.Origin, "destination", req.Destination); err != nil {
		return err
	}
	if err := Required("beginDate", req.BeginDate); err != nil {
		return err
	}
	begin, err := DateNotInPast("beginDate", req.BeginDate)
	if err != nil {
		return err
	}
	if err := Required("endDate", req.EndDate); err != nil {
		return err
	}
	if err := DateOrder("beginDate", req.BeginDate, "endDate", req.EndDate); err != nil {
		return err
	}
	end, _ := parseDate(req.EndDate)
	if days := int(end.Sub(begin).Hours() / 24); days > maxLowFareWindow {
		return fail("low fare search window must not exceed %d days, got %d", maxLowFareWindow, days)
	}
	if err := validatePassengers("passengers", req.Passengers); err != nil {
		return err
	}
	if err := validateRequiredCurrency("currencyCode", req.CurrencyCode); err != nil {
		return err
	}
	if req.PriceRange != nil {
		if err := validatePriceRange("priceRange", *req.PriceRange); err != nil {
			return err
		}
	}
	if req.LengthOfStay != nil {
		return validateLengthOfStay("lengthOfStay", *req.LengthOfStay)
	}
	return nil
}

func validatePriceRange(field string, r models.PriceRange) error {
	if r.Minimum != nil {
		if err := NonNegative(field+".minimum", *r.Minimum); err != nil {
			return err
		}
	}
	if r.Maximum != nil {
		if err := NonNegative(field+".maximum", *r.Maximum); err != nil {
			return err
		}
	}
	if r.Minimum != nil && r.Maximum != nil && *r.Minimum > *r.Maximum {
		return fail("%s.minimum must not be greater than %s.maximum", field, field)
	}
	return nil
}

func validateLengthOfStay(field string, l models.LengthOfStay) error {
	if err := IntRangePtr(field+".minimum", l.Minimum, 0, maxLengthOfStayDays); err != nil {
		return err
	}
	if err := IntRangePtr(field+".maximum", l.Maximum, 0, maxLengthOfStayDays); err != nil {
		return err
	}
	if l.Minimum != nil && l.Maximum != nil && *l.Minimum > *l.Maximum {
		return fail("%s.minimum must not be greater than %s.maximum", field, field)
	}
	return nil
}

func ValidateTripSell(req models.TripSellRequest) error {
	if err := CountBetween("keys", req.Keys, 1, maxSearchCriteria); err != nil {
		return err
	}
	journeys := make([]string, 0, len(req.Keys))
	for i, k := range req.Keys {
		if err := validateJourneySellKey(fmt.Sprintf("keys[%d]", i), k); err != nil {
			return err
		}
		journeys = append(journeys, k.JourneyKey)
	}
	if err := Distinct("keys.journeyKey", journeys); err != nil {
		return err
	}
	if err := validatePassengers("passengers", req.Passengers); err != nil {
		return err
	}
	if err := validateRequiredCurrency("currencyCode", req.CurrencyCode); err != nil {
		return err
	}
	if err := validatePromotionCode("promotionCode", req.PromotionCode); err != nil {
		return err
	}
	return LengthBetweenPtr("sourceOrganization", req.SourceOrganization, 1, 10)
}

func validateJourneySellKey(field string, k models.JourneySellKey) error {
	if err := validateKeyField(field+".journeyKey", KeyJourney, k.JourneyKey); err != nil {
		return err
	}
	if err := validateKeyField(field+".fareAvailabilityKey", KeyFareAvailability, k.FareAvailabilityKey); err != nil {
		return err
	}
	return LengthBetweenPtr(field+".standbyPriorityCode", k.StandbyPriorityCode, 1, 1)
}
