package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/matrimony-service/internal/api/http/handlers"
	"github.com/spec-kit/matrimony-service/internal/auth"
)

// Route binds one operation to its ordered guard chain. Guards run in
// declared order and short-circuit on first failure; an empty chain is
// public.
type Route struct {
	Method  string
	Path    string
	Guards  []auth.Guard
	Handler fiber.Handler
}

// GuardSet holds the three guard kinds used across the table.
type GuardSet struct {
	VerifyToken  auth.Guard
	RequireAdmin auth.Guard
	RequireSelf  auth.Guard
}

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health     *handlers.HealthHandler
	Auth       *handlers.AuthHandler
	Users      *handlers.UsersHandler
	Biodata    *handlers.BiodataHandler
	Favourites *handlers.FavouritesHandler
	Payments   *handlers.PaymentsHandler
	Premium    *handlers.PremiumHandler
	Stories    *handlers.StoriesHandler
	Stats      *handlers.StatsHandler
	Guards     GuardSet
	StatsCache fiber.Handler
}

// RouteTable returns the authorization matrix as data: every operation
// with its guard chain, in registration order.
func RouteTable(cfg RouteConfig) []Route {
	verify := cfg.Guards.VerifyToken
	admin := cfg.Guards.RequireAdmin
	self := cfg.Guards.RequireSelf

	public := []auth.Guard{}
	identified := []auth.Guard{verify}
	adminOnly := []auth.Guard{verify, admin}
	selfOnly := []auth.Guard{verify, self}

	return []Route{
		{fiber.MethodGet, "/health/live", public, cfg.Health.Live},
		{fiber.MethodGet, "/health/ready", public, cfg.Health.Ready},

		{fiber.MethodPost, "/auth/token", public, cfg.Auth.Token},

		{fiber.MethodGet, "/users", adminOnly, cfg.Users.List},
		{fiber.MethodGet, "/users/admin/:email", selfOnly, cfg.Users.AdminStatus},
		{fiber.MethodPost, "/users", public, cfg.Users.Register},
		{fiber.MethodPatch, "/users/admin/:id", adminOnly, cfg.Users.PromoteAdmin},
		{fiber.MethodPatch, "/users/premium/:id", adminOnly, cfg.Users.PromotePremium},
		{fiber.MethodDelete, "/users/:id", adminOnly, cfg.Users.Delete},

		{fiber.MethodGet, "/biodatas", public, cfg.Biodata.List},
		{fiber.MethodGet, "/biodatas/filtered", public, cfg.Biodata.Filtered},
		{fiber.MethodGet, "/biodatas/:id", public, cfg.Biodata.Get},
		{fiber.MethodPost, "/biodatas", identified, cfg.Biodata.Create},
		{fiber.MethodDelete, "/biodatas/:id", adminOnly, cfg.Biodata.Delete},
		{fiber.MethodGet, "/checkout/:id", identified, cfg.Biodata.Get},

		{fiber.MethodGet, "/favourites", adminOnly, cfg.Favourites.List},
		{fiber.MethodGet, "/favourites/by-email/:email", selfOnly, cfg.Favourites.ListByEmail},
		{fiber.MethodGet, "/favourites/:id", identified, cfg.Favourites.Get},
		{fiber.MethodPost, "/favourites", identified, cfg.Favourites.Create},
		{fiber.MethodDelete, "/favourites/:id", identified, cfg.Favourites.Delete},

		{fiber.MethodPost, "/payments/create-intent", identified, cfg.Payments.CreateIntent},
		{fiber.MethodGet, "/payments", adminOnly, cfg.Payments.List},
		{fiber.MethodGet, "/payments/by-email/:email", selfOnly, cfg.Payments.ListByEmail},
		{fiber.MethodPost, "/payments", identified, cfg.Payments.Record},
		{fiber.MethodPatch, "/payments/approve/:id", adminOnly, cfg.Payments.Approve},
		{fiber.MethodDelete, "/payments/:id", adminOnly, cfg.Payments.Delete},

		{fiber.MethodGet, "/premium-requests", adminOnly, cfg.Premium.List},
		{fiber.MethodGet, "/premium-requests/by-email/:email", selfOnly, cfg.Premium.ListByEmail},
		{fiber.MethodGet, "/premium-requests/:id", identified, cfg.Premium.Get},
		{fiber.MethodPost, "/premium-requests", identified, cfg.Premium.Create},
		{fiber.MethodPatch, "/premium-requests/approve/:id", adminOnly, cfg.Premium.Approve},
		{fiber.MethodDelete, "/premium-requests/:id", adminOnly, cfg.Premium.Delete},

		{fiber.MethodGet, "/success-stories", public, cfg.Stories.List},
		{fiber.MethodPost, "/success-stories", identified, cfg.Stories.Create},
		{fiber.MethodDelete, "/success-stories/:id", adminOnly, cfg.Stories.Delete},

		{fiber.MethodGet, "/stats/counters", public, cfg.Stats.Counters},
		{fiber.MethodGet, "/stats/biodata", public, cfg.Stats.Stats},
	}
}

// RegisterRoutes wires HTTP routes from the route table.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	if cfg.StatsCache != nil {
		app.Use("/stats", cfg.StatsCache)
	}

	for _, route := range RouteTable(cfg) {
		chain := make([]fiber.Handler, 0, len(route.Guards)+1)
		for _, guard := range route.Guards {
			chain = append(chain, guard.Handle)
		}
		chain = append(chain, route.Handler)
		app.Add(route.Method, route.Path, chain...)
	}
}
