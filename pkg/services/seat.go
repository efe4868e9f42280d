package services

import (
	"context"
	"net/http"

	"github.com/dharmasatrya/bookingsdk/internal/validation"
	"github.com/dharmasatrya/bookingsdk/pkg/models"
	"github.com/dharmasatrya/bookingsdk/pkg/transport"
)

const pathPassengerSeat = "api/nsk/{version}/booking/passengers/{passengerKey}/seats/{unitKey}"

type SeatService struct {
	base
}

func NewSeatService(t transport.Transport, version string) *SeatService {
	return &SeatService{base: newBase("seat", version, t)}
}

// GetSeatMaps returns the seat maps for every segment of a journey.
// Version must be 2 or 3.
func (s *SeatService) GetSeatMaps(ctx context.Context, journeyKey string, version int) (*transport.Response, error) {
	if err := validation.ValidateKey(validation.KeyJourney, journeyKey); err != nil {
		return nil, err
	}
	if err := validation.ValidateVersion(version, 2, 3); err != nil {
		return nil, err
	}
	r := s.request(http.MethodGet, "api/nsk/{version}/booking/seatmaps/journey/{journeyKey}")
	r.Version = versionString(version)
	r.Params = map[string]string{"journeyKey": journeyKey}
	return s.do(ctx, r)
}

func (s *SeatService) GetSeatMapForSegment(ctx context.Context, segmentKey string) (*transport.Response, error) {
	if err := validation.ValidateKey(validation.KeySegment, segmentKey); err != nil {
		return nil, err
	}
	r := s.request(http.MethodGet, "api/nsk/{version}/booking/seatmaps/segment/{segmentKey}")
	r.Params = map[string]string{"segmentKey": segmentKey}
	return s.do(ctx, r)
}

func (s *SeatService) Assign(ctx context.Context, passengerKey, unitKey string, req models.SeatAssignRequest) (*transport.Response, error) {
	if err := s.validateSeatKeys(passengerKey, unitKey); err != nil {
		return nil, err
	}
	if err := validation.ValidateSeatAssign(req); err != nil {
		return nil, err
	}
	r := s.request(http.MethodPost, pathPassengerSeat)
	r.Params = map[string]string{"passengerKey": passengerKey, "unitKey": unitKey}
	r.Body = req
	return s.do(ctx, r)
}

func (s *SeatService) AssignMany(ctx context.Context, req models.SeatAssignmentsRequest) (*transport.Response, error) {
	if err := validation.ValidateSeatAssignments(req); err != nil {
		return nil, err
	}
	r := s.request(http.MethodPost, "api/nsk/{version}/booking/seats")
	r.Body = req
	return s.do(ctx, r)
}

func (s *SeatService) Remove(ctx context.Context, passengerKey, unitKey string) (*transport.Response, error) {
	if err := s.validateSeatKeys(passengerKey, unitKey); err != nil {
		return nil, err
	}
	r := s.request(http.MethodDelete, pathPassengerSeat)
	r.Params = map[string]string{"passengerKey": passengerKey, "unitKey": unitKey}
	return s.do(ctx, r)
}

func (s *SeatService) AutoAssign(ctx context.Context, primaryPassengerKey string, req models.AutoAssignRequest) (*transport.Response, error) {
	if err := validation.ValidateKey(validation.KeyPassenger, primaryPassengerKey); err != nil {
		return nil, err
	}
	if err := validation.ValidateAutoAssign(req); err != nil {
		return nil, err
	}
	r := s.request(http.MethodPost, "api/nsk/{version}/booking/seats/auto/{primaryPassengerKey}")
	r.Params = map[string]string{"primaryPassengerKey": primaryPassengerKey}
	r.Body = req
	return s.do(ctx, r)
}

// AutoAssignWindow auto-assigns window seats for the passenger and anyone
// travelling with them.
func (s *SeatService) AutoAssignWindow(ctx context.Context, primaryPassengerKey string) (*transport.Response, error) {
	return s.AutoAssign(ctx, primaryPassengerKey, models.AutoAssignRequest{
		Preferences:             &models.SeatPreferences{Position: models.Ptr(models.SeatPositionWindow)},
		IncludeLinkedPassengers: models.Ptr(true),
	})
}

func (s *SeatService) validateSeatKeys(passengerKey, unitKey string) error {
	if err := validation.ValidateKey(validation.KeyPassenger, passengerKey); err != nil {
		return err
	}
	return validation.ValidateKey(validation.KeyUnit, unitKey)
}
