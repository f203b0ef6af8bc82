package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/nikolayk812/marketplace/internal/domain"
	"github.com/shopspring/decimal"
)

const maxResponseBytes = 1 << 20

// Intent is a single charge attempt forwarded to a provider.
type Intent struct {
	Amount   decimal.Decimal
	Currency string
	Method   string
	Payload  json.RawMessage
}

// Response is the provider's answer, relayed to the client unmodified.
type Response struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

type Gateway interface {
	Process(ctx context.Context, intent Intent) (Response, error)
}

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        20,
			MaxIdleConnsPerHost: 5,
			IdleConnTimeout:     90 * time.Second,
		},
	}
}

// do sends req and reads the body. Any transport failure is an upstream failure;
// non-2xx answers are not, they are relayed as is.
func do(client *http.Client, req *http.Request) (Response, error) {
	resp, err := client.Do(req)
	if err != nil {
		return Response{}, fmt.Errorf("%w: client.Do: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return Response{}, fmt.Errorf("%w: io.ReadAll: %v", domain.ErrUpstream, err)
	}

	return Response{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}

func validateIntent(intent Intent) error {
	if intent.Amount.IsNegative() || intent.Amount.IsZero() {
		return fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	}
	return nil
}

var errEmptyURL = errors.New("url is empty")
