package validation

import (
	"fmt"
	"math"
	"regexp"
	"slices"

	"github.com/dharmasatrya/bookingsdk/internal/logging"
	"github.com/dharmasatrya/bookingsdk/pkg/models"
)

const (
	maxSsrItems          = 50
	maxBags              = 10
	maxBagDimension      = 300
	maxInsuranceDays     = 365
	percentageTolerance  = 0.001
	poundsToKilograms    = 0.45359237
	maxMealQuantity      = 3
	maxBeneficiaryLength = 100
)

var fourLetterCodeRegex = regexp.MustCompile(`^[A-Z]{4}$`)

// SsrCodePolicy decides what happens to a well-formed SSR code the SDK does
// not recognise.
type SsrCodePolicy int

const (
	// SsrCodesWarn logs unknown codes and lets the platform decide.
	SsrCodesWarn SsrCodePolicy = iota
	// SsrCodesStrict rejects unknown codes.
	SsrCodesStrict
)

func ValidateSsrAvailability(req models.SsrAvailabilityRequest) error {
	hasJourneys, hasSegments := len(req.JourneyKeys) > 0, len(req.SegmentKeys) > 0
	if hasJourneys == hasSegments {
		return fail("exactly one of journeyKeys or segmentKeys must be provided")
	}
	if err := validateKeyList("journeyKeys", KeyJourney, req.JourneyKeys); err != nil {
		return err
	}
	if err := validateKeyList("segmentKeys", KeySegment, req.SegmentKeys); err != nil {
		return err
	}
	if err := validateKeyList("passengerKeys", KeyPassenger, req.PassengerKeys); err != nil {
		return err
	}
	return validateCurrencyPtr("currencyCode", req.CurrencyCode)
}

func ValidateSsrSell(req models.SsrSellRequest, policy SsrCodePolicy) error {
	if err := CountBetween("items", req.Items, 1, maxSsrItems); err != nil {
		return err
	}
	known := models.KnownSsrCodes()
	for i, item := range req.Items {
		path := fmt.Sprintf("items[%d]", i)
		if err := validateSsrItem(path, item); err != nil {
			return err
		}
		if slices.Contains(known, item.SsrCode) {
			continue
		}
		if policy == SsrCodesStrict {
			return fail("%s.ssrCode '%s' is not a recognised SSR code", path, item.SsrCode)
		}
		logging.Warn().Str("ssrCode", item.SsrCode).Str("field", path+".ssrCode").
			Msg("unrecognised SSR code, sending to platform unchecked")
	}
	return validateCurrencyPtr("currencyCode", req.CurrencyCode)
}

func validateSsrItem(path string, item models.SsrItem) error {
	if err := Required(path+".ssrCode", item.SsrCode); err != nil {
		return err
	}
	if err := matchPattern(path+".ssrCode", item.SsrCode, fourLetterCodeRegex, "4 uppercase letters"); err != nil {
		return err
	}
	if err := validateKeyField(path+".passengerKey", KeyPassenger, item.PassengerKey); err != nil {
		return err
	}
	if (item.SegmentKey == nil) == (item.JourneyKey == nil) {
		return fail("%s must set exactly one of segmentKey or journeyKey", path)
	}
	if err := validateKeyPtr(path+".segmentKey", KeySegment, item.SegmentKey); err != nil {
		return err
	}
	if err := validateKeyPtr(path+".journeyKey", KeyJourney, item.JourneyKey); err != nil {
		return err
	}
	if err := IntRange(path+".count", item.Count, 1, 9); err != nil {
		return err
	}
	return MaxLengthPtr(path+".note", item.Note, 100)
}

func ValidateBaggage(req models.BaggageRequest) error {
	if err := validateKeyField("journeyKey", KeyJourney, req.JourneyKey); err != nil {
		return err
	}
	if err := CountBetween("bags", req.Bags, 1, maxBags); err != nil {
		return err
	}
	for i, bag := range req.Bags {
		if err := validateBag(fmt.Sprintf("bags[%d]", i), bag); err != nil {
			return err
		}
	}
	return nil
}

func validateBag(path string, bag models.Bag) error {
	if err := OneOf(path+".type", bag.Type, models.BaggageTypes()); err != nil {
		return err
	}
	if err := Positive(path+".weight", bag.Weight); err != nil {
		return err
	}
	if err := OneOfPtr(path+".weightUnit", bag.WeightUnit, models.WeightUnits()); err != nil {
		return err
	}
	kg := WeightInKg(bag.Weight, bag.WeightUnit)
	if limit := bag.Type.MaxWeightKg(); kg > limit {
		return fail("%s.weight must not exceed %s kg for %s baggage, got %s kg",
			path, formatNumber(limit), bag.Type, formatNumber(math.Round(kg*100)/100))
	}
	if bag.Dimensions != nil {
		if err := validateBagDimensions(path+".dimensions", *bag.Dimensions); err != nil {
			return err
		}
	}
	return EachOneOf(path+".specialHandling", bag.SpecialHandling, models.SpecialHandlings())
}

// WeightInKg converts a bag weight to kilograms. A nil unit means kg.
func WeightInKg(weight float64, unit *models.WeightUnit) float64 {
	if unit != nil && *unit == models.WeightPounds {
		return weight * poundsToKilograms
	}
	return weight
}

func validateBagDimensions(path string, d models.BagDimensions) error {
	limit := float64(maxBagDimension)
	for _, side := range []struct {
		name  string
		value float64
	}{{"length", d.Length}, {"width", d.Width}, {"height", d.Height}} {
		if err := Positive(path+"."+side.name, side.value); err != nil {
			return err
		}
		if err := NumberRange(path+"."+side.name, side.value, nil, &limit); err != nil {
			return err
		}
	}
	return OneOf(path+".unit", d.Unit, models.DimensionUnits())
}

func ValidateInsurance(req models.InsuranceRequest) error {
	if err := OneOf("coverageType", req.CoverageType, models.CoverageTypes()); err != nil {
		return err
	}
	start, err := DateNotInPast("policyStartDate", req.PolicyStart)
	if err != nil {
		return err
	}
	if err := MatchFormat("policyEndDate", req.PolicyEnd, FormatDate); err != nil {
		return err
	}
	end, _ := parseDate(req.PolicyEnd)
	if !end.After(start) {
		return fail("policyEndDate must be after policyStartDate")
	}
	if days := int(end.Sub(start).Hours() / 24); days > maxInsuranceDays {
		return fail("insurance period must not exceed %d days, got %d", maxInsuranceDays, days)
	}
	if err := NotEmpty("insuredPassengerKeys", req.InsuredPassengerKeys); err != nil {
		return err
	}
	if err := validateKeyList("insuredPassengerKeys", KeyPassenger, req.InsuredPassengerKeys); err != nil {
		return err
	}
	if err := Positive("coverageAmount", req.CoverageAmount); err != nil {
		return err
	}
	if err := validateRequiredCurrency("currencyCode", req.CurrencyCode); err != nil {
		return err
	}
	if len(req.Beneficiaries) > 0 {
		return ValidateBeneficiaries(req.Beneficiaries)
	}
	return nil
}

// ValidateBeneficiaries checks each beneficiary and that the shares add up
// to exactly 100 percent.
func ValidateBeneficiaries(beneficiaries []models.Beneficiary) error {
	total := 0.0
	for i, b := range beneficiaries {
		path := fmt.Sprintf("beneficiaries[%d]", i)
		if err := Required(path+".name", b.Name); err != nil {
			return err
		}
		if err := LengthBetween(path+".name", b.Name, 1, maxBeneficiaryLength); err != nil {
			return err
		}
		if err := OneOf(path+".relationship", b.Relationship, models.BeneficiaryRelationships()); err != nil {
			return err
		}
		if b.Percentage <= 0 || b.Percentage > 100 {
			return fail("%s.percentage must be greater than 0 and at most 100, got %s", path, formatNumber(b.Percentage))
		}
		total += b.Percentage
	}
	if math.Abs(total-100) > percentageTolerance {
		return fail("beneficiary percentages must total 100, got %s", formatNumber(math.Round(total*1000)/1000))
	}
	return nil
}

func ValidateMeal(req models.MealRequest) error {
	if err := Required("mealCode", req.MealCode); err != nil {
		return err
	}
	if err := matchPattern("mealCode", req.MealCode, fourLetterCodeRegex, "4 uppercase letters"); err != nil {
		return err
	}
	if err := validateKeyField("passengerKey", KeyPassenger, req.PassengerKey); err != nil {
		return err
	}
	if err := validateKeyField("segmentKey", KeySegment, req.SegmentKey); err != nil {
		return err
	}
	if err := EachOneOf("dietaryPreferences", req.DietaryPreferences, models.DietaryPreferences()); err != nil {
		return err
	}
	return IntRangePtr("quantity", req.Quantity, 1, maxMealQuantity)
}
