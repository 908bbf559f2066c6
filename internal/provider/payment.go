package provider

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-resty/resty/v2"

	"github.com/spec-kit/food-order-service/internal/config"
)

const chargePath = "/v1/charges"

// PaymentClient charges cards through the payment provider's HTTP API.
type PaymentClient struct {
	client   *resty.Client
	currency string
}

// NewPaymentClient builds a client with bearer auth and a bounded timeout.
func NewPaymentClient(cfg config.PaymentConfig) *PaymentClient {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout()).
		SetAuthToken(cfg.SecretKey)

	return &PaymentClient{client: client, currency: cfg.Currency}
}

// Charge posts a single charge for the given amount in minor units. The
// idempotency key (order id) makes provider-side retries safe; the client
// itself never retries. A non-nil error means the request did not complete;
// a non-2xx Result is the provider declining.
func (p *PaymentClient) Charge(ctx context.Context, email string, amountMinorUnits int64, idempotencyKey string) (*Result, error) {
	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("Idempotency-Key", idempotencyKey).
		SetFormData(map[string]string{
			"amount":      strconv.FormatInt(amountMinorUnits, 10),
			"currency":    p.currency,
			"description": fmt.Sprintf("Charge for %s", email),
			"source":      "tok_mastercard",
		}).
		Post(chargePath)
	if err != nil {
		return nil, fmt.Errorf("charge request: %w", err)
	}

	return &Result{Status: resp.StatusCode(), Body: decodeBody(resp.Body())}, nil
}
