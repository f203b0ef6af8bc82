package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/nikolayk812/marketplace/internal/domain"
)

const APIPrefix = "/api/v1"

func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(WithRequestID)
	r.Use(WithLogging(h.logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.Health)

	r.Route(APIPrefix, func(r chi.Router) {
		r.Post("/order/new", h.CreateOrder)

		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
		r.Get("/logout", h.Logout)

		r.Get("/products", h.ListProducts)
		r.Get("/product/{id}", h.GetProduct)
		r.Get("/property/all", h.ListProperties)

		r.Post("/payment/process", h.ProcessPaytm)
		r.Post("/stripe", h.ProcessStripe)
		r.Post("/nfts", h.ForwardRPC)

		r.Group(func(r chi.Router) {
			r.Use(h.RequireAuth)

			r.Get("/me", h.Me)
			r.Get("/order/{id}", h.GetOrder)
			r.Get("/orders/me", h.ListMyOrders)
			r.Post("/product/new-property", h.CreateProperty)

			r.Group(func(r chi.Router) {
				r.Use(h.RequireRole(domain.RoleAdmin))

				r.Get("/admin/orders", h.ListAllOrders)
				r.Put("/admin/order/{id}", h.UpdateOrderStatus)
				r.Delete("/admin/order/{id}", h.DeleteOrder)

				r.Get("/admin/products", h.ListProducts)
				r.Post("/admin/product/new", h.CreateProduct)
				r.Put("/admin/product/{id}", h.UpdateProduct)
				r.Delete("/admin/product/{id}", h.DeleteProduct)

				r.Delete("/admin/user/{id}", h.DeleteUser)
			})
		})
	})

	return r
}
