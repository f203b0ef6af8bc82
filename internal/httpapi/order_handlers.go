package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/nikolayk812/marketplace/internal/auth"
	"github.com/nikolayk812/marketplace/internal/domain"
	"github.com/shopspring/decimal"
)

func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.logger, err)
		return
	}

	order, err := req.toDomain()
	if err != nil {
		writeDomainError(w, r, h.logger, err)
		return
	}

	created, user, err := h.orders.CreateOrder(r.Context(), order)
	if err != nil {
		writeDomainError(w, r, h.logger, err)
		return
	}

	resp := toOrderDTO(created)
	resp.User = orderOwnerDTO{ID: user.ID, Name: user.Name, Email: user.Email}

	writeJSON(w, http.StatusOK, struct {
		Success bool     `json:"success"`
		Order   orderDTO `json:"order"`
		User    userDTO  `json:"user"`
	}{true, resp, toUserDTO(user)})
}

// GetOrder is open to the order owner and to admins.
func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := pathID(r)
	if err != nil {
		writeDomainError(w, r, h.logger, err)
		return
	}

	details, err := h.orders.GetOrder(r.Context(), orderID)
	if err != nil {
		writeDomainError(w, r, h.logger, err)
		return
	}

	caller, _ := auth.UserFrom(r.Context())
	if caller.ID != details.UserID && auth.Authorize(caller, domain.RoleAdmin) != nil {
		writeDomainError(w, r, h.logger, fmt.Errorf("%w: order belongs to another user", domain.ErrForbidden))
		return
	}

	resp := toOrderDTO(details.Order)
	resp.User = orderOwnerDTO{ID: details.UserID, Name: details.Owner.Name, Email: details.Owner.Email}

	writeJSON(w, http.StatusOK, struct {
		Success bool     `json:"success"`
		Order   orderDTO `json:"order"`
	}{true, resp})
}

func (h *Handler) ListMyOrders(w http.ResponseWriter, r *http.Request) {
	caller, _ := auth.UserFrom(r.Context())

	orders, err := h.orders.ListMyOrders(r.Context(), caller.ID)
	if err != nil {
		writeDomainError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Success bool       `json:"success"`
		Orders  []orderDTO `json:"orders"`
	}{true, toOrderDTOs(orders)})
}

// ListAllOrders accepts ?status=Shipped or a comma separated list.
func (h *Handler) ListAllOrders(w http.ResponseWriter, r *http.Request) {
	var statuses []domain.OrderStatus
	for _, raw := range r.URL.Query()["status"] {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s == "" {
				continue
			}
			status, err := domain.ToOrderStatus(s)
			if err != nil {
				writeDomainError(w, r, h.logger, fmt.Errorf("%w: status[%s]: %v", domain.ErrValidation, s, err))
				return
			}
			statuses = append(statuses, status)
		}
	}

	orders, total, err := h.orders.ListAllOrders(r.Context(), statuses...)
	if err != nil {
		writeDomainError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Success     bool            `json:"success"`
		Orders      []orderDTO      `json:"orders"`
		TotalAmount decimal.Decimal `json:"totalAmount"`
	}{true, toOrderDTOs(orders), total})
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID, err := pathID(r)
	if err != nil {
		writeDomainError(w, r, h.logger, err)
		return
	}

	var req updateStatusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.logger, err)
		return
	}

	transition, err := h.orders.UpdateOrderStatus(r.Context(), orderID, req.Status)
	if err != nil {
		writeDomainError(w, r, h.logger, err)
		return
	}

	stock := make([]stockAdjustmentDTO, 0, len(transition.Stock))
	for _, adj := range transition.Stock {
		stock = append(stock, stockAdjustmentDTO{Product: adj.ProductID, Quantity: adj.Quantity, Result: adj.Result})
	}

	writeJSON(w, http.StatusOK, struct {
		Success bool                 `json:"success"`
		From    domain.OrderStatus   `json:"from"`
		Order   orderDTO             `json:"order"`
		Stock   []stockAdjustmentDTO `json:"stock"`
	}{true, transition.From, toOrderDTO(transition.Order), stock})
}

func (h *Handler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := pathID(r)
	if err != nil {
		writeDomainError(w, r, h.logger, err)
		return
	}

	if err := h.orders.DeleteOrder(r.Context(), orderID); err != nil {
		writeDomainError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Success bool `json:"success"`
	}{true})
}
