package models

type SeatAssignRequest struct {
	SeatNumber            *string              `json:"seatNumber,omitempty"`
	Characteristics       []SeatCharacteristic `json:"characteristics,omitempty"`
	IgnoreSeatSsrs        *bool                `json:"ignoreSeatSsrs,omitempty"`
	Waive                 *bool                `json:"waive,omitempty"`
	CollectedCurrencyCode *string              `json:"collectedCurrencyCode,omitempty"`
}

type SeatAssignment struct {
	PassengerKey    string               `json:"passengerKey"`
	SegmentKey      string               `json:"segmentKey"`
	SeatNumber      string               `json:"seatNumber"`
	UnitKey         *string              `json:"unitKey,omitempty"`
	Characteristics []SeatCharacteristic `json:"characteristics,omitempty"`
}

type SeatAssignmentsRequest struct {
	Assignments []SeatAssignment `json:"assignments"`
	Waive       *bool            `json:"waive,omitempty"`
}

type SeatPreferences struct {
	Position        *SeatPosition        `json:"position,omitempty"`
	Characteristics []SeatCharacteristic `json:"characteristics,omitempty"`
}

type AutoAssignRequest struct {
	Preferences             *SeatPreferences `json:"seatPreferences,omitempty"`
	SegmentKeys             []string         `json:"segmentKeys,omitempty"`
	IncludeLinkedPassengers *bool            `json:"includeLinkedPassengers,omitempty"`
}
