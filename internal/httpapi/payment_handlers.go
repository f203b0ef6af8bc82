package httpapi

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/nikolayk812/marketplace/internal/domain"
	"github.com/nikolayk812/marketplace/internal/payment"
	"github.com/shopspring/decimal"
)

type paymentRequest struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
	Method   string          `json:"method"`
	Token    string          `json:"token"`
}

// readIntent keeps the raw body as the provider payload.
func readIntent(w http.ResponseWriter, r *http.Request) (payment.Intent, error) {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return payment.Intent{}, fmt.Errorf("%w: unreadable body: %v", domain.ErrValidation, err)
	}

	var req paymentRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return payment.Intent{}, fmt.Errorf("%w: invalid JSON body: %v", domain.ErrValidation, err)
	}

	method := req.Method
	if method == "" {
		method = req.Token
	}

	return payment.Intent{
		Amount:   req.Amount,
		Currency: req.Currency,
		Method:   method,
		Payload:  raw,
	}, nil
}

func relay(w http.ResponseWriter, resp payment.Response) {
	contentType := resp.ContentType
	if contentType == "" {
		contentType = "application/json"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(resp.StatusCode)
	_, _ = w.Write(resp.Body)
}

func (h *Handler) process(w http.ResponseWriter, r *http.Request, gateway payment.Gateway) {
	intent, err := readIntent(w, r)
	if err != nil {
		writeDomainError(w, r, h.logger, err)
		return
	}

	resp, err := gateway.Process(r.Context(), intent)
	if err != nil {
		writeDomainError(w, r, h.logger, err)
		return
	}

	relay(w, resp)
}

func (h *Handler) ProcessPaytm(w http.ResponseWriter, r *http.Request) {
	h.process(w, r, h.paytm)
}

func (h *Handler) ProcessStripe(w http.ResponseWriter, r *http.Request) {
	h.process(w, r, h.stripe)
}

func (h *Handler) ForwardRPC(w http.ResponseWriter, r *http.Request) {
	var call payment.RPCCall
	if err := decodeJSON(w, r, &call); err != nil {
		writeDomainError(w, r, h.logger, err)
		return
	}

	resp, err := h.rpc.Call(r.Context(), call)
	if err != nil {
		writeDomainError(w, r, h.logger, err)
		return
	}

	relay(w, resp)
}
