package httpapi

import (
	"net/http"

	"github.com/nikolayk812/marketplace/internal/auth"
	"github.com/nikolayk812/marketplace/internal/domain"
	"github.com/samber/lo"
)

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.ListProducts(r.Context())
	if err != nil {
		writeDomainError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Success  bool         `json:"success"`
		Products []productDTO `json:"products"`
	}{true, lo.Map(products, func(p domain.Product, _ int) productDTO { return toProductDTO(p) })})
}

func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := pathID(r)
	if err != nil {
		writeDomainError(w, r, h.logger, err)
		return
	}

	product, err := h.catalog.GetProduct(r.Context(), productID)
	if err != nil {
		writeDomainError(w, r, h.logger, err)
		return
	}

	writeProduct(w, http.StatusOK, product)
}

func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.logger, err)
		return
	}

	product, err := req.toDomain()
	if err != nil {
		writeDomainError(w, r, h.logger, err)
		return
	}

	caller, _ := auth.UserFrom(r.Context())

	created, err := h.catalog.CreateProduct(r.Context(), product, caller.ID)
	if err != nil {
		writeDomainError(w, r, h.logger, err)
		return
	}

	writeProduct(w, http.StatusCreated, created)
}

func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := pathID(r)
	if err != nil {
		writeDomainError(w, r, h.logger, err)
		return
	}

	var req productRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.logger, err)
		return
	}

	product, err := req.toDomain()
	if err != nil {
		writeDomainError(w, r, h.logger, err)
		return
	}
	product.ID = productID

	updated, err := h.catalog.UpdateProduct(r.Context(), product)
	if err != nil {
		writeDomainError(w, r, h.logger, err)
		return
	}

	writeProduct(w, http.StatusOK, updated)
}

func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := pathID(r)
	if err != nil {
		writeDomainError(w, r, h.logger, err)
		return
	}

	if err := h.catalog.DeleteProduct(r.Context(), productID); err != nil {
		writeDomainError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Success bool `json:"success"`
	}{true})
}

func writeProduct(w http.ResponseWriter, status int, product domain.Product) {
	writeJSON(w, status, struct {
		Success bool       `json:"success"`
		Product productDTO `json:"product"`
	}{true, toProductDTO(product)})
}

func (h *Handler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	var req propertyDTO
	if err := decodeJSON(w, r, &req); err != nil {
		writeDomainError(w, r, h.logger, err)
		return
	}

	property, err := h.catalog.CreateProperty(r.Context(), req.toDomain())
	if err != nil {
		writeDomainError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, struct {
		Success  bool        `json:"success"`
		Property propertyDTO `json:"property"`
	}{true, toPropertyDTO(property)})
}

func (h *Handler) ListProperties(w http.ResponseWriter, r *http.Request) {
	properties, err := h.catalog.ListProperties(r.Context())
	if err != nil {
		writeDomainError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Success    bool          `json:"success"`
		Properties []propertyDTO `json:"properties"`
	}{true, lo.Map(properties, func(p domain.Property, _ int) propertyDTO { return toPropertyDTO(p) })})
}
