package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/nikolayk812/marketplace/internal/domain"
)

// RPCCall is a JSON-RPC 2.0 request forwarded to a node provider.
type RPCCall struct {
	JSONRPC string          `json:"jsonrpc"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
	ID      json.RawMessage `json:"id,omitempty"`
}

type RPCGateway struct {
	url    string
	client *http.Client
}

func NewRPCGateway(url string, timeout time.Duration) (*RPCGateway, error) {
	if url == "" {
		return nil, errEmptyURL
	}

	return &RPCGateway{
		url:    url,
		client: newHTTPClient(timeout),
	}, nil
}

func (g *RPCGateway) Call(ctx context.Context, call RPCCall) (Response, error) {
	if call.Method == "" {
		return Response{}, fmt.Errorf("%w: method is required", domain.ErrValidation)
	}
	if call.JSONRPC == "" {
		call.JSONRPC = "2.0"
	}

	body, err := json.Marshal(call)
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

// Process treats the intent payload as the RPC params and the method as the RPC method.
func (g *RPCGateway) Process(ctx context.Context, intent Intent) (Response, error) {
	return g.Call(ctx, RPCCall{
		Method: intent.Method,
		Params: intent.Payload,
		ID:     json.RawMessage(`1`),
	})
}
