package services

import (
	"context"
	"net/http"

	"github.com/dharmasatrya/bookingsdk/internal/validation"
	"github.com/dharmasatrya/bookingsdk/pkg/models"
	"github.com/dharmasatrya/bookingsdk/pkg/transport"
)

const pathJourneyBundles = "api/nsk/{version}/booking/journeys/{journeyKey}/bundles"

type BundleService struct {
	base
}

func NewBundleService(t transport.Transport, version string) *BundleService {
	return &BundleService{base: newBase("bundle", version, t)}
}

// GetAvailability lists bundles for the given journeys. Version must be 2 or 3.
func (s *BundleService) GetAvailability(ctx context.Context, version int, req models.BundleAvailabilityRequest) (*transport.Response, error) {
	if err := validation.ValidateVersion(version, 2, 3); err != nil {
		return nil, err
	}
	if err := validation.ValidateBundleAvailability(req); err != nil {
		return nil, err
	}
	r := s.request(http.MethodPost, "api/nsk/{version}/bundle/availability")
	r.Version = versionString(version)
	r.Body = req
	return s.do(ctx, r)
}

func (s *BundleService) Sell(ctx context.Context, journeyKey string, req models.BundleSellRequest) (*transport.Response, error) {
	if err := validation.ValidateKey(validation.KeyJourney, journeyKey); err != nil {
		return nil, err
	}
	if err := validation.ValidateBundleSell(req); err != nil {
		return nil, err
	}
	r := s.request(http.MethodPost, pathJourneyBundles)
	r.Params = map[string]string{"journeyKey": journeyKey}
	r.Body = req
	return s.do(ctx, r)
}

func (s *BundleService) Remove(ctx context.Context, journeyKey, bundleCode string) (*transport.Response, error) {
	if err := validation.ValidateKey(validation.KeyJourney, journeyKey); err != nil {
		return nil, err
	}
	if err := validation.ValidateKey(validation.KeyBundleCode, bundleCode); err != nil {
		return nil, err
	}
	r := s.request(http.MethodDelete, pathJourneyBundles+"/{bundleCode}")
	r.Params = map[string]string{"journeyKey": journeyKey, "bundleCode": bundleCode}
	return s.do(ctx, r)
}

func (s *BundleService) GetConfiguration(ctx context.Context, bundleCode string) (*transport.Response, error) {
	if err := validation.ValidateKey(validation.KeyBundleCode, bundleCode); err != nil {
		return nil, err
	}
	r := s.request(http.MethodGet, "api/nsk/{version}/bundle/configurations/{bundleCode}")
	r.Params = map[string]string{"bundleCode": bundleCode}
	return s.do(ctx, r)
}

func (s *BundleService) SellForPassengers(ctx context.Context, journeyKey, bundleCode string, passengerKeys ...string) (*transport.Response, error) {
	return s.Sell(ctx, journeyKey, models.BundleSellRequest{BundleCode: bundleCode, PassengerKeys: passengerKeys})
}
