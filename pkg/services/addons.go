package services

import (
	"context"
	"net/http"

	"github.com/dharmasatrya/bookingsdk/internal/validation"
	"github.com/dharmasatrya/bookingsdk/pkg/models"
	"github.com/dharmasatrya/bookingsdk/pkg/transport"
)

const (
	pathSsrs   = "api/nsk/{version}/booking/ssrs"
	pathAddOns = "api/nsk/{version}/booking/addons"
)

type AddOnsService struct {
	base
	ssrPolicy validation.SsrCodePolicy
}

// NewAddOnsService builds the add-ons façade. With strictSsrCodes set,
// SellSsrs rejects codes outside the known catalog instead of logging them.
func NewAddOnsService(t transport.Transport, version string, strictSsrCodes bool) *AddOnsService {
	policy := validation.SsrCodesWarn
	if strictSsrCodes {
		policy = validation.SsrCodesStrict
	}
	return &AddOnsService{base: newBase("addons", version, t), ssrPolicy: policy}
}

func (s *AddOnsService) GetSsrAvailability(ctx context.Context, req models.SsrAvailabilityRequest) (*transport.Response, error) {
	if err := validation.ValidateSsrAvailability(req); err != nil {
		return nil, err
	}
	r := s.request(http.MethodPost, pathSsrs+"/availability")
	r.Body = req
	return s.do(ctx, r)
}

func (s *AddOnsService) SellSsrs(ctx context.Context, req models.SsrSellRequest) (*transport.Response, error) {
	if err := validation.ValidateSsrSell(req, s.ssrPolicy); err != nil {
		return nil, err
	}
	r := s.request(http.MethodPost, pathSsrs)
	r.Body = req
	return s.do(ctx, r)
}

func (s *AddOnsService) RemoveSsr(ctx context.Context, ssrKey string) (*transport.Response, error) {
	if err := validation.ValidateKey(validation.KeySsr, ssrKey); err != nil {
		return nil, err
	}
	r := s.request(http.MethodDelete, pathSsrs+"/{ssrKey}")
	r.Params = map[string]string{"ssrKey": ssrKey}
	return s.do(ctx, r)
}

func (s *AddOnsService) AddBaggage(ctx context.Context, passengerKey string, req models.BaggageRequest) (*transport.Response, error) {
	if err := validation.ValidateKey(validation.KeyPassenger, passengerKey); err != nil {
		return nil, err
	}
	if err := validation.ValidateBaggage(req); err != nil {
		return nil, err
	}
	r := s.request(http.MethodPost, "api/nsk/{version}/booking/passengers/{passengerKey}/baggage")
	r.Params = map[string]string{"passengerKey": passengerKey}
	r.Body = req
	return s.do(ctx, r)
}

func (s *AddOnsService) GetBaggageAllowance(ctx context.Context, journeyKey string) (*transport.Response, error) {
	if err := validation.ValidateKey(validation.KeyJourney, journeyKey); err != nil {
		return nil, err
	}
	r := s.request(http.MethodGet, "api/nsk/{version}/booking/journeys/{journeyKey}/baggage/allowances")
	r.Params = map[string]string{"journeyKey": journeyKey}
	return s.do(ctx, r)
}

func (s *AddOnsService) AddInsurance(ctx context.Context, req models.InsuranceRequest) (*transport.Response, error) {
	if err := validation.ValidateInsurance(req); err != nil {
		return nil, err
	}
	r := s.request(http.MethodPost, pathAddOns+"/insurance")
	r.Body = req
	return s.do(ctx, r)
}

func (s *AddOnsService) AddMeal(ctx context.Context, req models.MealRequest) (*transport.Response, error) {
	if err := validation.ValidateMeal(req); err != nil {
		return nil, err
	}
	r := s.request(http.MethodPost, pathAddOns+"/meals")
	r.Body = req
	return s.do(ctx, r)
}

// List returns every add-on on the booking in session.
func (s *AddOnsService) List(ctx context.Context) (*transport.Response, error) {
	return s.do(ctx, s.request(http.MethodGet, pathAddOns))
}

func (s *AddOnsService) Remove(ctx context.Context, addOnKey string) (*transport.Response, error) {
	if err := validation.ValidateKey(validation.KeyAddOn, addOnKey); err != nil {
		return nil, err
	}
	r := s.request(http.MethodDelete, pathAddOns+"/{addOnKey}")
	r.Params = map[string]string{"addOnKey": addOnKey}
	return s.do(ctx, r)
}

func (s *AddOnsService) AddCheckedBag(ctx context.Context, passengerKey, journeyKey string, weightKg float64) (*transport.Response, error) {
	return s.AddBaggage(ctx, passengerKey, models.BaggageRequest{
		JourneyKey: journeyKey,
		Bags: []models.Bag{{
			Type:       models.BaggageChecked,
			Weight:     weightKg,
			WeightUnit: models.Ptr(models.WeightKilograms),
		}},
	})
}
