package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires the staff-facing API. Everything is scoped by tenant (the
// store identifier); authentication sits in front of this service and is not
// handled here.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Route("/api/v1/{tenant}", func(r chi.Router) {
		r.Route("/catalog", func(r chi.Router) {
			r.Get("/", h.GetCatalog)

			r.Post("/categories", h.CreateCategory)
			r.Put("/categories/reorder", h.ReorderCategories)
			r.Patch("/categories/{categoryID}", h.UpdateCategory)
			r.Delete("/categories/{categoryID}", h.DeleteCategory)
			r.Post("/categories/{categoryID}/toggle", h.ToggleExpanded)
			r.Post("/categories/{categoryID}/products", h.CreateProduct)
			r.Put("/categories/{categoryID}/products/reorder", h.ReorderProducts)

			r.Patch("/products/{productID}", h.UpdateProduct)
			r.Delete("/products/{productID}", h.DeleteProduct)
			r.Post("/products/{productID}/additional-groups", h.CreateAdditionalGroup)
			r.Delete("/products/{productID}/additional-groups/{groupID}", h.DeleteAdditionalGroup)
			r.Post("/additional-groups/copy", h.CopyAdditionalGroup)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Post("/checkout", h.Checkout)
			r.Get("/", h.ListOrders)
			r.Put("/{orderID}/status", h.MoveOrder)
		})
	})

	return r
}
