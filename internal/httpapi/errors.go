package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/nikolayk812/marketplace/internal/domain"
)

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

type errorKind struct {
	err    error
	status int
	name   string
}

// first match wins
var errorKinds = []errorKind{
	{domain.ErrValidation, http.StatusBadRequest, "validation"},
	{domain.ErrConflict, http.StatusBadRequest, "conflict"},
	{domain.ErrNotFound, http.StatusNotFound, "not_found"},
	{domain.ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
	{domain.ErrForbidden, http.StatusForbidden, "forbidden"},
	{domain.ErrUpstream, http.StatusBadGateway, "upstream"},
}

var publicErrors = []error{
	domain.ErrOrderNotFound,
	domain.ErrProductNotFound,
	domain.ErrUserNotFound,
	domain.ErrPropertyNotFound,
	domain.ErrDuplicatePayment,
	domain.ErrDuplicateOrderNumber,
	domain.ErrDuplicateEmail,
	domain.ErrUserHasOrders,
	domain.ErrAlreadyDelivered,
	domain.ErrInvalidTransition,
	domain.ErrInsufficientStock,
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, kind, message string) {
	writeJSON(w, status, errorResponse{Error: kind, Message: message})
}

// writeDomainError maps err to a status code and a message safe to show to the caller.
func writeDomainError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			writeError(w, k.status, k.name, publicMessage(err, k.err))
			return
		}
	}

	logger.Error("request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"request_id", RequestIDFromContext(r.Context()),
		"error", err)

	writeError(w, http.StatusInternalServerError, "internal", "internal server error")
}

func publicMessage(err, kind error) string {
	for _, known := range publicErrors {
		if errors.Is(err, known) {
			return known.Error()
		}
	}

	msg := err.Error()
	if idx := strings.Index(msg, kind.Error()); idx >= 0 {
		return msg[idx:]
	}

	return kind.Error()
}
