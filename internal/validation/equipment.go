package validation

import (
	"fmt"

	"github.com/dharmasatrya/bookingsdk/pkg/models"
)

func ValidateEquipmentSuffix(suffix *string) error {
	return LengthBetweenPtr("suffix", suffix, 1, 1)
}

func ValidateEquipmentSearch(req models.EquipmentSearchRequest) error {
	for i, t := range req.EquipmentTypes {
		if err := validateKeyField(fmt.Sprintf("equipmentTypes[%d]", i), KeyEquipmentType, t); err != nil {
			return err
		}
	}
	if err := Distinct("equipmentTypes", req.EquipmentTypes); err != nil {
		return err
	}
	if err := LengthBetweenPtr("marketingCode", req.MarketingCode, 1, 10); err != nil {
		return err
	}
	if req.StartIndex != nil && *req.StartIndex < 0 {
		return fail("startIndex must not be negative, got %d", *req.StartIndex)
	}
	return IntRangePtr("itemCount", req.ItemCount, 1, 1000)
}
