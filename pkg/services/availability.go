package services

import (
	"context"
	"net/http"

	"github.com/dharmasatrya/bookingsdk/internal/validation"
	"github.com/dharmasatrya/bookingsdk/pkg/models"
	"github.com/dharmasatrya/bookingsdk/pkg/transport"
)

const (
	pathAvailabilitySearch = "api/nsk/{version}/availability/search"
	pathSimpleSearch       = "api/nsk/{version}/availability/search/simple"
	pathLowFareSearch      = "api/nsk/v2/availability/lowfare"
)

type AvailabilityService struct {
	base
}

func NewAvailabilityService(t transport.Transport, version string) *AvailabilityService {
	return &AvailabilityService{base: newBase("availability", version, t)}
}

func (s *AvailabilityService) Search(ctx context.Context, req models.AvailabilitySearchRequest) (*transport.Response, error) {
	if err := validation.ValidateAvailabilitySearch(req); err != nil {
		return nil, err
	}
	r := s.request(http.MethodPost, pathAvailabilitySearch)
	r.Body = req
	return s.do(ctx, r)
}

// SearchVersion runs the same search against an explicit API version, 3 or 4.
func (s *AvailabilityService) SearchVersion(ctx context.Context, version int, req models.AvailabilitySearchRequest) (*transport.Response, error) {
	if err := validation.ValidateVersion(version, 3, 4); err != nil {
		return nil, err
	}
	if err := validation.ValidateAvailabilitySearch(req); err != nil {
		return nil, err
	}
	r := s.request(http.MethodPost, pathAvailabilitySearch)
	r.Version = versionString(version)
	r.Body = req
	return s.do(ctx, r)
}

func (s *AvailabilityService) SimpleSearch(ctx context.Context, req models.SimpleSearchRequest) (*transport.Response, error) {
	if err := validation.ValidateSimpleSearch(req); err != nil {
		return nil, err
	}
	r := s.request(http.MethodPost, pathSimpleSearch)
	r.Body = req
	return s.do(ctx, r)
}

func (s *AvailabilityService) LowFareSearch(ctx context.Context, req models.LowFareSearchRequest) (*transport.Response, error) {
	if err := validation.ValidateLowFareSearch(req); err != nil {
		return nil, err
	}
	r := s.request(http.MethodPost, pathLowFareSearch)
	r.Body = req
	return s.do(ctx, r)
}

// QuickSearch is a one-way simple search. Zero counts search for one adult.
func (s *AvailabilityService) QuickSearch(ctx context.Context, origin, destination, departureDate string, pax models.PassengerCounts) (*transport.Response, error) {
	return s.SimpleSearch(ctx, models.SimpleSearchRequest{
		Origin:      origin,
		Destination: destination,
		BeginDate:   departureDate,
		Passengers:  pax.Passengers(),
	})
}

// RoundTripSearch searches the outbound and return legs in one request.
func (s *AvailabilityService) RoundTripSearch(ctx context.Context, origin, destination, departureDate, returnDate string, pax models.PassengerCounts) (*transport.Response, error) {
	leg := func(from, to, date string) models.TripCriteria {
		return models.TripCriteria{
			Stations: models.TripStations{DepartureStations: []string{from}, ArrivalStations: []string{to}},
			Dates:    models.TripDates{BeginDate: date},
		}
	}
	if err := validation.DateOrder("departureDate", departureDate, "returnDate", returnDate); err != nil {
		return nil, err
	}
	return s.Search(ctx, models.AvailabilitySearchRequest{
		Passengers: pax.Passengers(),
		Criteria: []models.TripCriteria{
			leg(origin, destination, departureDate),
			leg(destination, origin, returnDate),
		},
	})
}
