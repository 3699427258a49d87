package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/bistro-service/internal/api/http/handlers"
	"github.com/spec-kit/bistro-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Session        *handlers.SessionHandler
	Users          *handlers.UsersHandler
	Catalog        *handlers.CatalogHandler
	Cart           *handlers.CartHandler
	Checkout       *handlers.CheckoutHandler
	Reports        *handlers.ReportsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes. Every privileged route passes through
// credential validation first, then, where required, the directory role
// check.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	authn := cfg.AuthMiddleware.Handle
	admin := cfg.AuthMiddleware.RequireAdmin

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("bistro service is running")
	})
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/session-token", cfg.Session.Issue)

	app.Post("/users", cfg.Users.Register)
	app.Get("/users", authn, admin, cfg.Users.List)
	app.Get("/users/admin-check/:email", authn, cfg.Users.AdminCheck)
	app.Patch("/users/admin/:id", authn, admin, cfg.Users.Promote)
	app.Delete("/users/:id", authn, admin, cfg.Users.Delete)

	app.Get("/menu", cfg.Catalog.ListMenu)
	app.Post("/menu", authn, admin, cfg.Catalog.CreateMenuItem)
	app.Delete("/menu/:id", authn, admin, cfg.Catalog.DeleteMenuItem)
	app.Get("/reviews", cfg.Catalog.ListReviews)

	app.Get("/cart", authn, cfg.Cart.List)
	app.Post("/cart", authn, cfg.Cart.Add)
	app.Delete("/cart/:id", authn, cfg.Cart.Remove)

	app.Post("/checkout/payment-intent", authn, cfg.Checkout.PaymentIntent)
	app.Post("/checkout/payments", authn, cfg.Checkout.Finalize)

	app.Get("/reports/order-stats", authn, admin, cfg.Reports.OrderStats)
	app.Get("/reports/admin-stats", authn, admin, cfg.Reports.AdminStats)
}
