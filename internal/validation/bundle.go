package validation

import "github.com/dharmasatrya/bookingsdk/pkg/models"

func ValidateBundleAvailability(req models.BundleAvailabilityRequest) error {
	if err := NotEmpty("journeyKeys", req.JourneyKeys); err != nil {
		return err
	}
	if err := validateKeyList("journeyKeys", KeyJourney, req.JourneyKeys); err != nil {
		return err
	}
	if err := validateKeyList("passengerKeys", KeyPassenger, req.PassengerKeys); err != nil {
		return err
	}
	return validateCurrencyPtr("currencyCode", req.CurrencyCode)
}

func ValidateBundleSell(req models.BundleSellRequest) error {
	if err := validateKeyField("bundleCode", KeyBundleCode, req.BundleCode); err != nil {
		return err
	}
	if err := NotEmpty("passengerKeys", req.PassengerKeys); err != nil {
		return err
	}
	return validateKeyList("passengerKeys", KeyPassenger, req.PassengerKeys)
}
