package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// HTTPGateway posts the intent as JSON to a hosted checkout endpoint.
type HTTPGateway struct {
	url      string
	merchant string
	client   *http.Client
}

func NewHTTPGateway(url, merchant string, timeout time.Duration) (*HTTPGateway, error) {
	if url == "" {
		return nil, errEmptyURL
	}

	return &HTTPGateway{
		url:      url,
		merchant: merchant,
		client:   newHTTPClient(timeout),
	}, nil
}

type checkoutRequest struct {
	Merchant string          `json:"mid,omitempty"`
	Amount   string          `json:"amount"`
	Currency string          `json:"currency,omitempty"`
	Method   string          `json:"method,omitempty"`
	Payload  json.RawMessage `json:"payload,omitempty"`
}

func (g *HTTPGateway) Process(ctx context.Context, intent Intent) (Response, error) {
	if err := validateIntent(intent); err != nil {
		return Response{}, err
	}

	body, err := json.Marshal(checkoutRequest{
		Merchant: g.merchant,
		Amount:   intent.Amount.StringFixed(2),
		Currency: intent.Currency,
		Method:   intent.Method,
		Payload:  intent.Payload,
	})
	if err != nil {
		return Response{}, fmt.Errorf("json.Marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url, bytes.NewReader(body))
	if err != nil {
		return Response{}, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return do(g.client, req)
}
