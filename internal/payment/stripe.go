package payment

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/nikolayk812/marketplace/internal/domain"
)

// StripeGateway creates payment intents through the Stripe REST API.
type StripeGateway struct {
	baseURL   string
	secretKey string
	client    *http.Client
}

func NewStripeGateway(baseURL, secretKey string, timeout time.Duration) (*StripeGateway, error) {
	if baseURL == "" {
		return nil, errEmptyURL
	}

	return &StripeGateway{
		baseURL:   strings.TrimRight(baseURL, "/"),
		secretKey: secretKey,
		client:    newHTTPClient(timeout),
	}, nil
}

func (g *StripeGateway) Process(ctx context.Context, intent Intent) (Response, error) {
	if err := validateIntent(intent); err != nil {
		return Response{}, err
	}
	if intent.Currency == "" {
		return Response{}, fmt.Errorf("%w: currency is required", domain.ErrValidation)
	}

	// amounts go out in the smallest currency unit
	form := url.Values{}
	form.Set("amount", intent.Amount.Shift(2).Round(0).String())
	form.Set("currency", strings.ToLower(intent.Currency))
	if intent.Method != "" {
		form.Set("payment_method", intent.Method)
		form.Set("confirm", "true")
	}
	form.Set("metadata[integration_check]", "accept_a_payment")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/v1/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return Response{}, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(g.secretKey, "")

	return do(g.client, req)
}
