package validation

import "github.com/dharmasatrya/bookingsdk/pkg/models"

func ValidateStationList(req models.StationListRequest) error {
	if err := MatchFormatPtr("countryCode", req.CountryCode, FormatCountryCode); err != nil {
		return err
	}
	return validateCultureCode("cultureCode", req.CultureCode)
}

func ValidateMarketList(req models.MarketListRequest) error {
	if err := MatchFormatPtr("origin", req.Origin, FormatAirportCode); err != nil {
		return err
	}
	if err := MatchFormatPtr("destination", req.Destination, FormatAirportCode); err != nil {
		return err
	}
	if req.Origin != nil && req.Destination != nil {
		return validateStationPair("origin", *req.Origin, "destination", *req.Destination)
	}
	return nil
}

// ValidateCultureCode checks a culture such as en-US.
func ValidateCultureCode(field, code string) error {
	return validateCultureCode(field, &code)
}
