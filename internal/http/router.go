package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rick465/react-shop/internal/cart"
	"github.com/rick465/react-shop/internal/catalog"
	"github.com/rick465/react-shop/internal/checkout"
	"github.com/rick465/react-shop/internal/identity"
	"github.com/rick465/react-shop/internal/order"
)

// Deps collects the stores the facade exposes.
type Deps struct {
	Catalog  *catalog.Provider
	Cart     *cart.Store
	Orders   *order.Store
	Identity *identity.Manager
	Checkout *checkout.Orchestrator
}

// NewRouter wires the storefront routes. The facade is the stand-in for the
// storefront UI: it renders store return values as JSON and does the same
// required-field checks the forms would.
func NewRouter(deps Deps) http.Handler {
	products := NewProductHandler(deps.Catalog)
	cartHandler := NewCartHandler(deps.Cart, deps.Catalog)
	orders := NewOrdersHandler(deps.Orders, deps.Identity)
	checkoutHandler := NewCheckoutHandler(deps.Checkout)
	auth := NewAuthHandler(deps.Identity)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", products.List)
			r.Get("/{id}", products.Get)
			r.Get("/{id}/related", products.Related)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartHandler.Get)
			r.Delete("/", cartHandler.Clear)
			r.Post("/items", cartHandler.AddItem)
			r.Put("/items/{id}", cartHandler.UpdateQuantity)
			r.Delete("/items/{id}", cartHandler.RemoveItem)
			r.Get("/recommendations", cartHandler.Recommendations)
		})

		r.Post("/checkout", checkoutHandler.PlaceOrder)

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", orders.List)
			r.Get("/{id}", orders.Get)
			r.Put("/{id}/status", orders.UpdateStatus)
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", auth.Login)
			r.Post("/logout", auth.Logout)
			r.Get("/me", auth.Me)
			r.Put("/profile", auth.UpdateProfile)
		})
	})

	return r
}
