package validation

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dharmasatrya/bookingsdk/internal/logging"
	"github.com/dharmasatrya/bookingsdk/pkg/models"
)

var (
	journeyKey   = strings.Repeat("J", 12)
	segmentKey   = strings.Repeat("S", 12)
	passengerKey = "PAX0000001"
)

func TestBaggageWeightLimits(t *testing.T) {
	tests := []struct {
		name    string
		bagType models.BaggageType
		weight  float64
		unit    *models.WeightUnit
		wantErr string
	}{
		{"carry-on at limit", models.BaggageCarryOn, 10, nil, ""},
		{"carry-on over", models.BaggageCarryOn, 10.01, nil, "must not exceed 10 kg for CarryOn"},
		{"checked at limit", models.BaggageChecked, 50, nil, ""},
		{"checked over", models.BaggageChecked, 50.01, nil, "must not exceed 50 kg for Checked"},
		{"personal over", models.BaggagePersonal, 5.5, nil, "must not exceed 5 kg"},
		{"pounds under", models.BaggageChecked, 110, models.Ptr(models.WeightPounds), ""},
		{"pounds over", models.BaggageChecked, 111, models.Ptr(models.WeightPounds), "must not exceed 50 kg"},
		{"zero", models.BaggageChecked, 0, nil, "bags[0].weight must be a positive number"},
		{"bad unit", models.BaggageChecked, 5, models.Ptr(models.WeightUnit("st")), "Invalid bags[0].weightUnit 'st'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBaggage(models.BaggageRequest{
				JourneyKey: journeyKey,
				Bags:       []models.Bag{{Type: tt.bagType, Weight: tt.weight, WeightUnit: tt.unit}},
			})
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			requireValidationError(t, err, tt.wantErr)
		})
	}
}

func TestBaggageDimensionsAndHandling(t *testing.T) {
	bag := models.Bag{
		Type: models.BaggageSports, Weight: 20,
		Dimensions: &models.BagDimensions{Length: 301, Width: 40, Height: 20, Unit: models.DimensionCentimeters},
	}
	requireValidationError(t, ValidateBaggage(models.BaggageRequest{JourneyKey: journeyKey, Bags: []models.Bag{bag}}),
		"bags[0].dimensions.length must be at most 300")

	bag.Dimensions.Length = 120
	bag.SpecialHandling = []models.SpecialHandling{models.HandlingFragile, models.HandlingFragile}
	requireValidationError(t, ValidateBaggage(models.BaggageRequest{JourneyKey: journeyKey, Bags: []models.Bag{bag}}),
		"duplicate")

	bag.SpecialHandling = []models.SpecialHandling{models.HandlingFragile}
	assert.NoError(t, ValidateBaggage(models.BaggageRequest{JourneyKey: journeyKey, Bags: []models.Bag{bag}}))

	requireValidationError(t, ValidateBaggage(models.BaggageRequest{JourneyKey: journeyKey}), "bags must contain at least one item")
}

func TestWeightInKg(t *testing.T) {
	assert.Equal(t, 20.0, WeightInKg(20, nil))
	assert.InDelta(t, 9.0718474, WeightInKg(20, models.Ptr(models.WeightPounds)), 1e-9)
}

func TestValidateBeneficiaries(t *testing.T) {
	ok := []models.Beneficiary{
		{Name: "A", Relationship: models.RelationshipSpouse, Percentage: 40},
		{Name: "B", Relationship: models.RelationshipChild, Percentage: 30},
		{Name: "C", Relationship: models.RelationshipChild, Percentage: 30},
	}
	assert.NoError(t, ValidateBeneficiaries(ok))

	short := []models.Beneficiary{
		{Name: "A", Relationship: models.RelationshipSpouse, Percentage: 40},
		{Name: "B", Relationship: models.RelationshipChild, Percentage: 30},
		{Name: "C", Relationship: models.RelationshipChild, Percentage: 20},
	}
	requireValidationError(t, ValidateBeneficiaries(short), "must total 100, got 90")

	thirds := []models.Beneficiary{
		{Name: "A", Relationship: models.RelationshipOther, Percentage: 33.3333},
		{Name: "B", Relationship: models.RelationshipOther, Percentage: 33.3333},
		{Name: "C", Relationship: models.RelationshipOther, Percentage: 33.3334},
	}
	assert.NoError(t, ValidateBeneficiaries(thirds))

	requireValidationError(t, ValidateBeneficiaries([]models.Beneficiary{
		{Name: "A", Relationship: models.RelationshipOther, Percentage: 0},
	}), "greater than 0")
}

func TestValidateInsurance(t *testing.T) {
	freezeClock(t)

	base := func() models.InsuranceRequest {
		return models.InsuranceRequest{
			CoverageType:         models.CoverageStandard,
			PolicyStart:          "2026-04-01",
			PolicyEnd:            "2026-04-15",
			InsuredPassengerKeys: []string{passengerKey},
			CoverageAmount:       5000,
			CurrencyCode:         "USD",
		}
	}
	assert.NoError(t, ValidateInsurance(base()))

	req := base()
	req.PolicyEnd = req.PolicyStart
	requireValidationError(t, ValidateInsurance(req), "policyEndDate must be after policyStartDate")

	req = base()
	req.PolicyEnd = "2027-05-01"
	requireValidationError(t, ValidateInsurance(req), "must not exceed 365 days")

	req = base()
	req.PolicyStart = "2026-02-01"
	requireValidationError(t, ValidateInsurance(req), "policyStartDate must not be in the past")

	req = base()
	req.InsuredPassengerKeys = nil
	requireValidationError(t, ValidateInsurance(req), "insuredPassengerKeys must contain at least one item")
}

func TestValidateSsrAvailability(t *testing.T) {
	assert.NoError(t, ValidateSsrAvailability(models.SsrAvailabilityRequest{JourneyKeys: []string{journeyKey}}))
	requireValidationError(t, ValidateSsrAvailability(models.SsrAvailabilityRequest{}), "exactly one of journeyKeys or segmentKeys")
	requireValidationError(t, ValidateSsrAvailability(models.SsrAvailabilityRequest{
		JourneyKeys: []string{journeyKey}, SegmentKeys: []string{segmentKey},
	}), "exactly one of")
}

func TestValidateSsrSellUnknownCodes(t *testing.T) {
	var buf bytes.Buffer
	prev := logging.Logger()
	logging.SetLogger(logging.NewTestLogger(&buf))
	t.Cleanup(func() { logging.SetLogger(prev) })

	req := models.SsrSellRequest{Items: []models.SsrItem{
		{SsrCode: "ZZZZ", PassengerKey: passengerKey, SegmentKey: models.Ptr(segmentKey), Count: 1},
	}}

	assert.NoError(t, ValidateSsrSell(req, SsrCodesWarn))
	assert.Contains(t, buf.String(), `"ssrCode":"ZZZZ"`)
	assert.Contains(t, buf.String(), `"level":"warn"`)

	requireValidationError(t, ValidateSsrSell(req, SsrCodesStrict), "'ZZZZ' is not a recognised SSR code")

	req.Items[0].SsrCode = "WCHR"
	buf.Reset()
	assert.NoError(t, ValidateSsrSell(req, SsrCodesStrict))
	assert.Empty(t, buf.String())
}

func TestValidateSsrItemRules(t *testing.T) {
	item := models.SsrItem{SsrCode: "wchr", PassengerKey: passengerKey, SegmentKey: models.Ptr(segmentKey), Count: 1}
	requireValidationError(t, ValidateSsrSell(models.SsrSellRequest{Items: []models.SsrItem{item}}, SsrCodesWarn),
		"items[0].ssrCode must be 4 uppercase letters")

	item.SsrCode = "WCHR"
	item.JourneyKey = models.Ptr(journeyKey)
	requireValidationError(t, ValidateSsrSell(models.SsrSellRequest{Items: []models.SsrItem{item}}, SsrCodesWarn),
		"exactly one of segmentKey or journeyKey")

	item.JourneyKey = nil
	item.Count = 10
	requireValidationError(t, ValidateSsrSell(models.SsrSellRequest{Items: []models.SsrItem{item}}, SsrCodesWarn),
		"items[0].count must be between 1 and 9")
}

func TestValidateMeal(t *testing.T) {
	req := models.MealRequest{MealCode: "VGML", PassengerKey: passengerKey, SegmentKey: segmentKey, Quantity: models.Ptr(2)}
	assert.NoError(t, ValidateMeal(req))

	req.Quantity = models.Ptr(4)
	requireValidationError(t, ValidateMeal(req), "quantity must be between 1 and 3")

	req.Quantity = nil
	req.DietaryPreferences = []models.DietaryPreference{"Carnivore"}
	requireValidationError(t, ValidateMeal(req), "Invalid dietaryPreferences[0] 'Carnivore'")
}
