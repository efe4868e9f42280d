package models

type BundleAvailabilityRequest struct {
	JourneyKeys   []string `json:"journeyKeys"`
	PassengerKeys []string `json:"passengerKeys,omitempty"`
	CurrencyCode  *string  `json:"currencyCode,omitempty"`
}

type BundleSellRequest struct {
	BundleCode    string   `json:"bundleCode"`
	PassengerKeys []string `json:"passengerKeys"`
}
