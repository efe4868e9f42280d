package models

type SsrAvailabilityRequest struct {
	JourneyKeys   []string `json:"journeyKeys,omitempty"`
	SegmentKeys   []string `json:"segmentKeys,omitempty"`
	PassengerKeys []string `json:"passengerKeys,omitempty"`
	CurrencyCode  *string  `json:"currencyCode,omitempty"`
}

type SsrItem struct {
	SsrCode      string  `json:"ssrCode"`
	PassengerKey string  `json:"passengerKey"`
	SegmentKey   *string `json:"segmentKey,omitempty"`
	JourneyKey   *string `json:"journeyKey,omitempty"`
	Count        int     `json:"count"`
	Note         *string `json:"note,omitempty"`
}

type SsrSellRequest struct {
	Items        []SsrItem `json:"items"`
	CurrencyCode *string   `json:"currencyCode,omitempty"`
}

type BagDimensions struct {
	Length float64       `json:"length"`
	Width  float64       `json:"width"`
	Height float64       `json:"height"`
	Unit   DimensionUnit `json:"unit"`
}

type Bag struct {
	Type            BaggageType       `json:"type"`
	Weight          float64           `json:"weight"`
	WeightUnit      *WeightUnit       `json:"weightUnit,omitempty"`
	Dimensions      *BagDimensions    `json:"dimensions,omitempty"`
	SpecialHandling []SpecialHandling `json:"specialHandling,omitempty"`
}

type BaggageRequest struct {
	JourneyKey string `json:"journeyKey"`
	Bags       []Bag  `json:"bags"`
}

type Beneficiary struct {
	Name         string                  `json:"name"`
	Relationship BeneficiaryRelationship `json:"relationship"`
	Percentage   float64                 `json:"percentage"`
}

type InsuranceRequest struct {
	CoverageType         CoverageType  `json:"coverageType"`
	PolicyStart          string        `json:"policyStartDate"`
	PolicyEnd            string        `json:"policyEndDate"`
	InsuredPassengerKeys []string      `json:"insuredPassengerKeys"`
	CoverageAmount       float64       `json:"coverageAmount"`
	CurrencyCode         string        `json:"currencyCode"`
	Beneficiaries        []Beneficiary `json:"beneficiaries,omitempty"`
}

type MealRequest struct {
	MealCode           string              `json:"mealCode"`
	PassengerKey       string              `json:"passengerKey"`
	SegmentKey         string              `json:"segmentKey"`
	DietaryPreferences []DietaryPreference `json:"dietaryPreferences,omitempty"`
	Quantity           *int                `json:"quantity,omitempty"`
}
