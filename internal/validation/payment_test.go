package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dharmasatrya/bookingsdk/pkg/models"
)

func TestValidatePayment(t *testing.T) {
	base := func() models.PaymentRequest {
		return models.PaymentRequest{
			PaymentMethodCode: "VI",
			Amount:            199.5,
			CurrencyCode:      "USD",
			PaymentFields:     map[string]string{"ACCTNO": "4111111111111111", "EXPDAT": "2030-12"},
		}
	}
	assert.NoError(t, ValidatePayment(base()))

	req := base()
	req.StoredPaymentKey = models.Ptr("STORED01")
	requireValidationError(t, ValidatePayment(req), "exactly one of paymentFields or storedPaymentKey")

	req = base()
	req.PaymentFields = nil
	requireValidationError(t, ValidatePayment(req), "exactly one of paymentFields or storedPaymentKey")

	req.StoredPaymentKey = models.Ptr("STORED01")
	assert.NoError(t, ValidatePayment(req))

	req = base()
	req.Installments = models.Ptr(13)
	requireValidationError(t, ValidatePayment(req), "installments must be between 1 and 12")

	req = base()
	req.Amount = 0
	requireValidationError(t, ValidatePayment(req), "amount must be a positive number")

	req = base()
	req.PaymentMethodCode = "VISA"
	requireValidationError(t, ValidatePayment(req), "paymentMethodCode must be 2 uppercase")

	req = base()
	req.PaymentFields["NOTE"] = strings.Repeat("x", 129)
	requireValidationError(t, ValidatePayment(req), "paymentFields.NOTE must be at most 128")
}

func TestValidateRefund(t *testing.T) {
	assert.NoError(t, ValidateRefund(models.RefundRequest{Amount: 10, CurrencyCode: "KES"}))
	requireValidationError(t, ValidateRefund(models.RefundRequest{Amount: -10, CurrencyCode: "KES"}), "amount")
	requireValidationError(t, ValidateRefund(models.RefundRequest{Amount: 10}), "currencyCode is required")
}
