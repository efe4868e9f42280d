package models

type TripStations struct {
	DepartureStations     []string `json:"departureStations"`
	ArrivalStations       []string `json:"arrivalStations"`
	SearchDestinationMacs *bool    `json:"searchDestinationMacs,omitempty"`
	SearchOriginMacs      *bool    `json:"searchOriginMacs,omitempty"`
}

type TripDates struct {
	BeginDate string  `json:"beginDate"`
	EndDate   *string `json:"endDate,omitempty"`
}

type TripFilters struct {
	MaxConnections *int         `json:"maxConnections,omitempty"`
	ProductClasses []string     `json:"productClasses,omitempty"`
	Type           *JourneyType `json:"type,omitempty"`
	CarrierCode    *string      `json:"carrierCode,omitempty"`
}

type TripCriteria struct {
	Stations TripStations `json:"stations"`
	Dates    TripDates    `json:"dates"`
	Filters  *TripFilters `json:"filters,omitempty"`
}

type AvailabilityCodes struct {
	CurrencyCode       *string `json:"currencyCode,omitempty"`
	PromotionCode      *string `json:"promotionCode,omitempty"`
	SourceOrganization *string `json:"sourceOrganization,omitempty"`
}

type FareFilters struct {
	Types   []string       `json:"types,omitempty"`
	Loyalty *LoyaltyFilter `json:"loyalty,omitempty"`
}

type AvailabilitySearchRequest struct {
	Passengers              Passengers         `json:"passengers"`
	Criteria                []TripCriteria     `json:"criteria"`
	Codes                   *AvailabilityCodes `json:"codes,omitempty"`
	FareFilters             *FareFilters       `json:"fareFilters,omitempty"`
	TaxesAndFees            *TaxesAndFeesMode  `json:"taxesAndFees,omitempty"`
	NumberOfFaresPerJourney *int               `json:"numberOfFaresPerJourney,omitempty"`
}

type SimpleSearchRequest struct {
	Origin       string            `json:"origin"`
	Destination  string            `json:"destination"`
	BeginDate    string            `json:"beginDate"`
	EndDate      *string           `json:"endDate,omitempty"`
	Passengers   Passengers        `json:"passengers"`
	CurrencyCode *string           `json:"currencyCode,omitempty"`
	Loyalty      *LoyaltyFilter    `json:"loyalty,omitempty"`
	TaxesAndFees *TaxesAndFeesMode `json:"taxesAndFees,omitempty"`
	CabinClass   *CabinClass       `json:"cabinClass,omitempty"`
}

type PriceRange struct {
	Minimum *float64 `json:"minimum,omitempty"`
	Maximum *float64 `json:"maximum,omitempty"`
}

type LengthOfStay struct {
	Minimum *int `json:"minimum,omitempty"`
	Maximum *int `json:"maximum,omitempty"`
}

type LowFareSearchRequest struct {
	Origin       string        `json:"origin"`
	Destination  string        `json:"destination"`
	BeginDate    string        `json:"beginDate"`
	EndDate      string        `json:"endDate"`
	Passengers   Passengers    `json:"passengers"`
	CurrencyCode string        `json:"currencyCode"`
	PriceRange   *PriceRange   `json:"priceRange,omitempty"`
	LengthOfStay *LengthOfStay `json:"lengthOfStay,omitempty"`
	IncludeTaxes *bool         `json:"includeTaxes,omitempty"`
}

type JourneySellKey struct {
	JourneyKey          string  `json:"journeyKey"`
	FareAvailabilityKey string  `json:"fareAvailabilityKey"`
	StandbyPriorityCode *string `json:"standbyPriorityCode,omitempty"`
}

type TripSellRequest struct {
	Keys               []JourneySellKey `json:"keys"`
	Passengers         Passengers       `json:"passengers"`
	CurrencyCode       string           `json:"currencyCode"`
	PromotionCode      *string          `json:"promotionCode,omitempty"`
	SourceOrganization *string          `json:"sourceOrganization,omitempty"`
}
