package validation

import (
	"fmt"
	"regexp"

	"github.com/dharmasatrya/bookingsdk/pkg/models"
)

const maxSeatAssignments = 18

var seatNumberRegex = regexp.MustCompile(`^\d{1,3}[A-Z]$`)

// ValidateSeatNumber accepts a row of one to three digits followed by a
// single uppercase column letter, e.g. 12A.
func ValidateSeatNumber(field, seat string) error {
	return matchPattern(field, seat, seatNumberRegex, "a row number followed by a column letter (e.g. 12A)")
}

func ValidateSeatAssign(req models.SeatAssignRequest) error {
	if req.SeatNumber != nil {
		if err := ValidateSeatNumber("seatNumber", *req.SeatNumber); err != nil {
			return err
		}
	}
	if err := EachOneOf("characteristics", req.Characteristics, models.SeatCharacteristics()); err != nil {
		return err
	}
	return validateCurrencyPtr("collectedCurrencyCode", req.CollectedCurrencyCode)
}

func ValidateSeatAssignments(req models.SeatAssignmentsRequest) error {
	if err := CountBetween("assignments", req.Assignments, 1, maxSeatAssignments); err != nil {
		return err
	}
	pairs := make(map[[2]string]bool, len(req.Assignments))
	seats := make(map[[2]string]bool, len(req.Assignments))
	for i, a := range req.Assignments {
		path := fmt.Sprintf("assignments[%d]", i)
		if err := validateKeyField(path+".passengerKey", KeyPassenger, a.PassengerKey); err != nil {
			return err
		}
		if err := validateKeyField(path+".segmentKey", KeySegment, a.SegmentKey); err != nil {
			return err
		}
		if a.PassengerKey == a.SegmentKey {
			return fail("%s.passengerKey and %s.segmentKey must be different", path, path)
		}
		if err := Required(path+".seatNumber", a.SeatNumber); err != nil {
			return err
		}
		if err := ValidateSeatNumber(path+".seatNumber", a.SeatNumber); err != nil {
			return err
		}
		if err := validateKeyPtr(path+".unitKey", KeyUnit, a.UnitKey); err != nil {
			return err
		}
		if err := EachOneOf(path+".characteristics", a.Characteristics, models.SeatCharacteristics()); err != nil {
			return err
		}

		pair := [2]string{a.PassengerKey, a.SegmentKey}
		if pairs[pair] {
			return fail("%s assigns passenger '%s' on segment '%s' more than once", path, a.PassengerKey, a.SegmentKey)
		}
		pairs[pair] = true

		seat := [2]string{a.SegmentKey, a.SeatNumber}
		if seats[seat] {
			return fail("%s assigns seat %s on segment '%s' more than once", path, a.SeatNumber, a.SegmentKey)
		}
		seats[seat] = true
	}
	return nil
}

func ValidateAutoAssign(req models.AutoAssignRequest) error {
	if req.Preferences != nil {
		if err := OneOfPtr("seatPreferences.position", req.Preferences.Position, models.SeatPositions()); err != nil {
			return err
		}
		if err := EachOneOf("seatPreferences.characteristics", req.Preferences.Characteristics, models.SeatCharacteristics()); err != nil {
			return err
		}
	}
	return validateKeyList("segmentKeys", KeySegment, req.SegmentKeys)
}
