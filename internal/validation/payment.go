package validation

import (
	"regexp"
	"slices"

	"github.com/dharmasatrya/bookingsdk/pkg/models"
)

const maxPaymentFieldLength = 128

var paymentMethodRegex = regexp.MustCompile(`^[A-Z0-9]{2}$`)

func ValidatePayment(req models.PaymentRequest) error {
	if err := Required("paymentMethodCode", req.PaymentMethodCode); err != nil {
		return err
	}
	if err := matchPattern("paymentMethodCode", req.PaymentMethodCode, paymentMethodRegex, "2 uppercase letters or digits"); err != nil {
		return err
	}
	if err := Positive("amount", req.Amount); err != nil {
		return err
	}
	if err := validateRequiredCurrency("currencyCode", req.CurrencyCode); err != nil {
		return err
	}
	if err := IntRangePtr("installments", req.Installments, 1, 12); err != nil {
		return err
	}
	hasFields, hasStored := len(req.PaymentFields) > 0, req.StoredPaymentKey != nil
	if hasFields == hasStored {
		return fail("exactly one of paymentFields or storedPaymentKey must be provided")
	}
	if hasStored {
		return validateKeyField("storedPaymentKey", KeyPayment, *req.StoredPaymentKey)
	}

	keys := make([]string, 0, len(req.PaymentFields))
	for k := range req.PaymentFields {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		if err := Required("paymentFields key", k); err != nil {
			return err
		}
		if err := LengthBetween("paymentFields."+k, req.PaymentFields[k], 0, maxPaymentFieldLength); err != nil {
			return err
		}
	}
	return nil
}

func ValidateRefund(req models.RefundRequest) error {
	if err := Positive("amount", req.Amount); err != nil {
		return err
	}
	return validateRequiredCurrency("currencyCode", req.CurrencyCode)
}
