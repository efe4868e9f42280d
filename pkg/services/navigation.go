package services

import (
	"context"
	"net/http"

	"github.com/dharmasatrya/bookingsdk/internal/validation"
	"github.com/dharmasatrya/bookingsdk/pkg/models"
	"github.com/dharmasatrya/bookingsdk/pkg/transport"
)

const pathResources = "api/nsk/{version}/resources"

// NavigationService reads the platform's reference data. Responses under
// resources/ are eligible for the transport's response cache.
type NavigationService struct {
	base
}

func NewNavigationService(t transport.Transport, version string) *NavigationService {
	return &NavigationService{base: newBase("navigation", version, t)}
}

func (s *NavigationService) GetStations(ctx context.Context, req models.StationListRequest) (*transport.Response, error) {
	if err := validation.ValidateStationList(req); err != nil {
		return nil, err
	}
	r := s.request(http.MethodGet, pathResources+"/stations")
	r.Query = newQuery().
		str("CountryCode", req.CountryCode).
		str("CultureCode", req.CultureCode).
		flag("ActiveOnly", req.ActiveOnly).
		values()
	return s.do(ctx, r)
}

func (s *NavigationService) GetStation(ctx context.Context, stationCode string) (*transport.Response, error) {
	if err := validation.MatchFormat("stationCode", stationCode, validation.FormatAirportCode); err != nil {
		return nil, err
	}
	r := s.request(http.MethodGet, pathResources+"/stations/{stationCode}")
	r.Params = map[string]string{"stationCode": stationCode}
	return s.do(ctx, r)
}

// GetCountries lists countries, localised when cultureCode is set.
func (s *NavigationService) GetCountries(ctx context.Context, cultureCode *string) (*transport.Response, error) {
	if cultureCode != nil {
		if err := validation.ValidateCultureCode("cultureCode", *cultureCode); err != nil {
			return nil, err
		}
	}
	r := s.request(http.MethodGet, pathResources+"/countries")
	r.Query = newQuery().str("CultureCode", cultureCode).values()
	return s.do(ctx, r)
}

func (s *NavigationService) GetCountry(ctx context.Context, countryCode string) (*transport.Response, error) {
	if err := validation.MatchFormat("countryCode", countryCode, validation.FormatCountryCode); err != nil {
		return nil, err
	}
	r := s.request(http.MethodGet, pathResources+"/countries/{countryCode}")
	r.Params = map[string]string{"countryCode": countryCode}
	return s.do(ctx, r)
}

func (s *NavigationService) GetCurrencies(ctx context.Context) (*transport.Response, error) {
	return s.do(ctx, s.request(http.MethodGet, pathResources+"/currencies"))
}

func (s *NavigationService) GetCurrency(ctx context.Context, currencyCode string) (*transport.Response, error) {
	if err := validation.MatchFormat("currencyCode", currencyCode, validation.FormatCurrencyCode); err != nil {
		return nil, err
	}
	r := s.request(http.MethodGet, pathResources+"/currencies/{currencyCode}")
	r.Params = map[string]string{"currencyCode": currencyCode}
	return s.do(ctx, r)
}

func (s *NavigationService) GetMarkets(ctx context.Context, req models.MarketListRequest) (*transport.Response, error) {
	if err := validation.ValidateMarketList(req); err != nil {
		return nil, err
	}
	r := s.request(http.MethodGet, pathResources+"/markets")
	r.Query = newQuery().
		str("Origin", req.Origin).
		str("Destination", req.Destination).
		values()
	return s.do(ctx, r)
}
