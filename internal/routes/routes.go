package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/arnavk09/quickkart-backend/internal/config"
	"github.com/arnavk09/quickkart-backend/internal/handlers"
	"github.com/arnavk09/quickkart-backend/internal/middleware"
)

// Setup registers the route table. Every state-mutating route sits behind the
// auth gate; the diagnostic collection dump/insert routes are only registered
// outside production.
func Setup(r *chi.Mux, h *handlers.Handler, cfg *config.Config) {
	// Public auth routes
	r.Post("/signup", h.Signup)
	r.Post("/login", h.Login)

	// Everything below requires a valid session token cookie
	r.Group(func(pr chi.Router) {
		pr.Use(middleware.RequireAuth(cfg.JWTSecret))

		pr.Post("/logout", h.Logout)

		// Profile
		pr.Get("/api/user/profile", h.Profile)
		pr.Post("/updateprofile", h.UpdateProfile)

		// Cart
		pr.Post("/add-To-Cart", h.AddToCart)
		pr.Get("/CartPage", h.CartPage)
		pr.Post("/remove-From-Cart", h.RemoveFromCart)
		pr.Post("/EmptyCart", h.EmptyCart)
		pr.Post("/checkout", h.Checkout)

		// Orders
		pr.Post("/Order", h.PlaceOrder)
		pr.Get("/Order", h.ListOrders)
		pr.Post("/CancelOrder", h.CancelOrder)

		// Addresses
		pr.Post("/AddAddress", h.AddAddress)
		pr.Put("/EditAddress/{id}", h.EditAddress)
		pr.Delete("/api/address/{id}", h.DeleteAddress)
	})

	// Diagnostic routes: full dump and raw insert. Debug tooling only.
	if !cfg.IsProduction() {
		r.Get("/", h.DumpUsers)
		r.Post("/", h.RawInsert)
	}

	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.NotFound)
}
