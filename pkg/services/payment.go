package services

import (
	"context"
	"net/http"

	"github.com/dharmasatrya/bookingsdk/internal/validation"
	"github.com/dharmasatrya/bookingsdk/pkg/models"
	"github.com/dharmasatrya/bookingsdk/pkg/transport"
)

const (
	pathPayments = "api/nsk/{version}/booking/payments"
	pathPayment  = pathPayments + "/{paymentKey}"
)

type PaymentService struct {
	base
}

func NewPaymentService(t transport.Transport, version string) *PaymentService {
	return &PaymentService{base: newBase("payment", version, t)}
}

// GetAvailableMethods lists payment methods usable for the booking in
// session, optionally in a given currency.
func (s *PaymentService) GetAvailableMethods(ctx context.Context, currencyCode *string) (*transport.Response, error) {
	if err := validation.MatchFormatPtr("currencyCode", currencyCode, validation.FormatCurrencyCode); err != nil {
		return nil, err
	}
	r := s.request(http.MethodGet, pathPayments+"/available")
	r.Query = newQuery().str("CurrencyCode", currencyCode).values()
	return s.do(ctx, r)
}

func (s *PaymentService) Add(ctx context.Context, req models.PaymentRequest) (*transport.Response, error) {
	if err := validation.ValidatePayment(req); err != nil {
		return nil, err
	}
	r := s.request(http.MethodPost, pathPayments)
	r.Body = req
	return s.do(ctx, r)
}

func (s *PaymentService) Refund(ctx context.Context, paymentKey string, req models.RefundRequest) (*transport.Response, error) {
	if err := validation.ValidateKey(validation.KeyPayment, paymentKey); err != nil {
		return nil, err
	}
	if err := validation.ValidateRefund(req); err != nil {
		return nil, err
	}
	r := s.request(http.MethodPost, pathPayment+"/refund")
	r.Params = map[string]string{"paymentKey": paymentKey}
	r.Body = req
	return s.do(ctx, r)
}

func (s *PaymentService) Delete(ctx context.Context, paymentKey string) (*transport.Response, error) {
	if err := validation.ValidateKey(validation.KeyPayment, paymentKey); err != nil {
		return nil, err
	}
	r := s.request(http.MethodDelete, pathPayment)
	r.Params = map[string]string{"paymentKey": paymentKey}
	return s.do(ctx, r)
}
