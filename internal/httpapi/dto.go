package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/nikolayk812/marketplace/internal/domain"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

const (
	maxBodyBytes    = 1 << 20
	defaultCurrency = "USD"
)

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: invalid JSON body: %v", domain.ErrValidation, err)
	}
	return nil
}

func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid id", domain.ErrValidation)
	}
	return id, nil
}

func parseCurrency(code string) (currency.Unit, error) {
	if code == "" {
		code = defaultCurrency
	}
	unit, err := currency.ParseISO(strings.ToUpper(code))
	if err != nil {
		return currency.Unit{}, fmt.Errorf("%w: invalid currency %q", domain.ErrValidation, code)
	}
	return unit, nil
}

type orderItemDTO struct {
	Product  uuid.UUID       `json:"product"`
	Name     string          `json:"name"`
	Quantity int32           `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Image    string          `json:"image"`
}

type paymentInfoDTO struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type createOrderRequest struct {
	OrderNumber  string              `json:"orderNumber"`
	ShippingInfo domain.ShippingInfo `json:"shippingInfo"`
	OrderItems   []orderItemDTO      `json:"orderItems"`
	PaymentInfo  paymentInfoDTO      `json:"paymentInfo"`
	TotalPrice   decimal.Decimal     `json:"totalPrice"`
	Currency     string              `json:"currency"`
	User         uuid.UUID           `json:"user"`
}

func (req createOrderRequest) toDomain() (domain.Order, error) {
	unit, err := parseCurrency(req.Currency)
	if err != nil {
		return domain.Order{}, err
	}

	return domain.Order{
		OrderNumber:  strings.TrimSpace(req.OrderNumber),
		UserID:       req.User,
		ShippingInfo: req.ShippingInfo,
		Items: lo.Map(req.OrderItems, func(item orderItemDTO, _ int) domain.OrderItem {
			return domain.OrderItem{
				ProductID: item.Product,
				Name:      item.Name,
				Quantity:  item.Quantity,
				Price:     domain.Money{Amount: item.Price, Currency: unit},
				Image:     item.Image,
			}
		}),
		PaymentInfo: domain.PaymentInfo{ID: strings.TrimSpace(req.PaymentInfo.ID), Status: req.PaymentInfo.Status},
		TotalPrice:  domain.Money{Amount: req.TotalPrice, Currency: unit},
	}, nil
}

type orderOwnerDTO struct {
	ID    uuid.UUID `json:"_id"`
	Name  string    `json:"name,omitempty"`
	Email string    `json:"email,omitempty"`
}

type orderDTO struct {
	ID           uuid.UUID           `json:"_id"`
	OrderNumber  string              `json:"orderNumber"`
	ShippingInfo domain.ShippingInfo `json:"shippingInfo"`
	OrderItems   []orderItemDTO      `json:"orderItems"`
	PaymentInfo  paymentInfoDTO      `json:"paymentInfo"`
	TotalPrice   decimal.Decimal     `json:"totalPrice"`
	Currency     string              `json:"currency"`
	OrderStatus  domain.OrderStatus  `json:"orderStatus"`
	User         orderOwnerDTO       `json:"user"`
	PaidAt       time.Time           `json:"paidAt"`
	ShippedAt    *time.Time          `json:"shippedAt,omitempty"`
	DeliveredAt  *time.Time          `json:"deliveredAt,omitempty"`
	CreatedAt    time.Time           `json:"createdAt"`
}

func toOrderDTO(o domain.Order) orderDTO {
	return orderDTO{
		ID:           o.ID,
		OrderNumber:  o.OrderNumber,
		ShippingInfo: o.ShippingInfo,
		OrderItems: lo.Map(o.Items, func(item domain.OrderItem, _ int) orderItemDTO {
			return orderItemDTO{
				Product:  item.ProductID,
				Name:     item.Name,
				Quantity: item.Quantity,
				Price:    item.Price.Amount,
				Image:    item.Image,
			}
		}),
		PaymentInfo: paymentInfoDTO{ID: o.PaymentInfo.ID, Status: o.PaymentInfo.Status},
		TotalPrice:  o.TotalPrice.Amount,
		Currency:    o.TotalPrice.Currency.String(),
		OrderStatus: o.Status,
		User:        orderOwnerDTO{ID: o.UserID},
		PaidAt:      o.PaidAt,
		ShippedAt:   o.ShippedAt,
		DeliveredAt: o.DeliveredAt,
		CreatedAt:   o.CreatedAt,
	}
}

func toOrderDTOs(orders []domain.Order) []orderDTO {
	return lo.Map(orders, func(o domain.Order, _ int) orderDTO {
		return toOrderDTO(o)
	})
}

type stockAdjustmentDTO struct {
	Product  uuid.UUID          `json:"product"`
	Quantity int32              `json:"quantity"`
	Result   domain.StockResult `json:"result"`
}

type userDTO struct {
	ID        uuid.UUID   `json:"_id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Role      domain.Role `json:"role"`
	Avatar    avatarDTO   `json:"avatar"`
	CreatedAt time.Time   `json:"createdAt"`
}

type avatarDTO struct {
	PublicID string `json:"public_id,omitempty"`
	URL      string `json:"url,omitempty"`
}

func toUserDTO(u domain.User) userDTO {
	return userDTO{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Avatar:    avatarDTO{PublicID: u.Avatar.PublicID, URL: u.Avatar.URL},
		CreatedAt: u.CreatedAt,
	}
}

type registerRequest struct {
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Password string    `json:"password"`
	Avatar   avatarDTO `json:"avatar"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type productRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Currency    string          `json:"currency"`
	Stock       *int32          `json:"stock"`
	Category    string          `json:"category"`
}

func (req productRequest) toDomain() (domain.Product, error) {
	unit, err := parseCurrency(req.Currency)
	if err != nil {
		return domain.Product{}, err
	}

	return domain.Product{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Price:       domain.Money{Amount: req.Price, Currency: unit},
		// a new listing starts with one unit unless told otherwise
		Stock:    lo.FromPtrOr(req.Stock, 1),
		Category: strings.TrimSpace(req.Category),
	}, nil
}

type productDTO struct {
	ID          uuid.UUID       `json:"_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Currency    string          `json:"currency"`
	Stock       int32           `json:"stock"`
	Category    string          `json:"category"`
	User        *uuid.UUID      `json:"user,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

func toProductDTO(p domain.Product) productDTO {
	return productDTO{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.Amount,
		Currency:    p.Price.Currency.String(),
		Stock:       p.Stock,
		Category:    p.Category,
		User:        p.OwnerID,
		CreatedAt:   p.CreatedAt,
	}
}

type propertyDTO struct {
	ID        uuid.UUID       `json:"_id"`
	Name      string          `json:"name"`
	Images    []string        `json:"images"`
	Price     decimal.Decimal `json:"price"`
	Profit    decimal.Decimal `json:"profit"`
	Returns   decimal.Decimal `json:"returns"`
	Investors int32           `json:"investors"`
	CreatedAt time.Time       `json:"createdAt,omitzero"`
}

func toPropertyDTO(p domain.Property) propertyDTO {
	return propertyDTO{
		ID:        p.ID,
		Name:      p.Name,
		Images:    p.Images,
		Price:     p.Price,
		Profit:    p.Profit,
		Returns:   p.Returns,
		Investors: p.Investors,
		CreatedAt: p.CreatedAt,
	}
}

func (p propertyDTO) toDomain() domain.Property {
	return domain.Property{
		Name:      strings.TrimSpace(p.Name),
		Images:    p.Images,
		Price:     p.Price,
		Profit:    p.Profit,
		Returns:   p.Returns,
		Investors: p.Investors,
	}
}
