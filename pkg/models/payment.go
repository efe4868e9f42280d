package models

type PaymentRequest struct {
	PaymentMethodCode string            `json:"paymentMethodCode"`
	Amount            float64           `json:"amount"`
	CurrencyCode      string            `json:"currencyCode"`
	Installments      *int              `json:"installments,omitempty"`
	PaymentFields     map[string]string `json:"paymentFields,omitempty"`
	StoredPaymentKey  *string           `json:"storedPaymentKey,omitempty"`
}

type RefundRequest struct {
	Amount       float64 `json:"amount"`
	CurrencyCode string  `json:"currencyCode"`
}
