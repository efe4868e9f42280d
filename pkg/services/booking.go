package services

import (
	"context"
	"net/http"

	"github.com/dharmasatrya/bookingsdk/internal/validation"
	"github.com/dharmasatrya/bookingsdk/pkg/models"
	"github.com/dharmasatrya/bookingsdk/pkg/transport"
)

type BookingService struct {
	base
}

func NewBookingService(t transport.Transport, version string) *BookingService {
	return &BookingService{base: newBase("booking", version, t)}
}

// Get returns the booking held in the current session.
func (s *BookingService) Get(ctx context.Context) (*transport.Response, error) {
	return s.do(ctx, s.request(http.MethodGet, "api/nsk/v1/booking"))
}

func (s *BookingService) Retrieve(ctx context.Context, req models.RetrieveBookingRequest) (*transport.Response, error) {
	if err := validation.ValidateRetrieveBooking(req); err != nil {
		return nil, err
	}
	r := s.request(http.MethodGet, "api/nsk/{version}/booking/retrieve")
	r.Query = newQuery().
		str("RecordLocator", &req.RecordLocator).
		str("LastName", req.LastName).
		str("FirstName", req.FirstName).
		str("EmailAddress", req.EmailAddress).
		str("CustomerNumber", req.CustomerNumber).
		str("OriginStationCode", req.OriginStationCode).
		values()
	return s.do(ctx, r)
}

func (s *BookingService) Commit(ctx context.Context, req models.CommitBookingRequest) (*transport.Response, error) {
	if err := validation.ValidateCommitBooking(req); err != nil {
		return nil, err
	}
	r := s.request(http.MethodPost, "api/nsk/{version}/booking")
	r.Body = req
	return s.do(ctx, r)
}

func (s *BookingService) CancelJourney(ctx context.Context, journeyKey string) (*transport.Response, error) {
	if err := validation.ValidateKey(validation.KeyJourney, journeyKey); err != nil {
		return nil, err
	}
	r := s.request(http.MethodDelete, "api/nsk/v1/booking/journeys/{journeyKey}")
	r.Params = map[string]string{"journeyKey": journeyKey}
	return s.do(ctx, r)
}

func (s *BookingService) AddContact(ctx context.Context, req models.ContactRequest) (*transport.Response, error) {
	if err := validation.ValidateContact(req); err != nil {
		return nil, err
	}
	r := s.request(http.MethodPost, "api/nsk/v1/booking/contacts")
	r.Body = req
	return s.do(ctx, r)
}

func (s *BookingService) UpdatePassenger(ctx context.Context, passengerKey string, req models.PassengerUpdateRequest) (*transport.Response, error) {
	if err := validation.ValidateKey(validation.KeyPassenger, passengerKey); err != nil {
		return nil, err
	}
	if err := validation.ValidatePassengerUpdate(req); err != nil {
		return nil, err
	}
	r := s.request(http.MethodPut, "api/nsk/{version}/booking/passengers/{passengerKey}")
	r.Params = map[string]string{"passengerKey": passengerKey}
	r.Body = req
	return s.do(ctx, r)
}

func (s *BookingService) AddTravelDocument(ctx context.Context, passengerKey string, req models.TravelDocumentRequest) (*transport.Response, error) {
	if err := validation.ValidateKey(validation.KeyPassenger, passengerKey); err != nil {
		return nil, err
	}
	if err := validation.ValidateTravelDocument(req); err != nil {
		return nil, err
	}
	r := s.request(http.MethodPost, "api/nsk/{version}/booking/passengers/{passengerKey}/documents")
	r.Params = map[string]string{"passengerKey": passengerKey}
	r.Body = req
	return s.do(ctx, r)
}

func (s *BookingService) AddComments(ctx context.Context, req models.CommentsRequest) (*transport.Response, error) {
	if err := validation.ValidateComments(req); err != nil {
		return nil, err
	}
	r := s.request(http.MethodPost, "api/nsk/v1/booking/comments")
	r.Body = req
	return s.do(ctx, r)
}
