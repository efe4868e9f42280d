package services

import (
	"context"
	"net/http"

	"github.com/dharmasatrya/bookingsdk/internal/validation"
	"github.com/dharmasatrya/bookingsdk/pkg/models"
	"github.com/dharmasatrya/bookingsdk/pkg/transport"
)

type TripService struct {
	base
}

func NewTripService(t transport.Transport, version string) *TripService {
	return &TripService{base: newBase("trip", version, t)}
}

func (s *TripService) Sell(ctx context.Context, req models.TripSellRequest) (*transport.Response, error) {
	if err := validation.ValidateTripSell(req); err != nil {
		return nil, err
	}
	r := s.request(http.MethodPost, "api/nsk/{version}/trip/sell")
	r.Body = req
	return s.do(ctx, r)
}
