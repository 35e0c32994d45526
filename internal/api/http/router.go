package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/route-service/internal/api/http/handlers"
	"github.com/spec-kit/route-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health      *handlers.HealthHandler
	Auth        *handlers.AuthHandler
	Users       *handlers.UsersHandler
	Routes      *handlers.RoutesHandler
	RoutePoints *handlers.RoutePointsHandler
	Comments    *handlers.CommentsHandler
	Favorites   *handlers.FavoritesHandler
	Gate        *auth.Gate
}

// RegisterRoutes wires HTTP routes. Every /api request passes through the
// JWT gate first; routes stay open unless guarded, matching the historical
// access rules. The /api/:username catch-all must be registered last.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/health/metrics", cfg.Health.Metrics)

	api := app.Group("/api", cfg.Gate.Handle)

	api.Post("/login", cfg.Auth.Login)
	api.Get("/me", auth.RequireAuthenticated(), cfg.Auth.Me)

	api.Post("/save-user", cfg.Users.Register)
	api.Get("/check/:username", cfg.Users.Check)
	api.Get("/user/:idUser", cfg.Users.ByID)
	api.Get("/role/:username", cfg.Users.Role)

	api.Get("/route/search", cfg.Routes.Search)
	api.Get("/route/details/:routeId", cfg.Routes.Details)
	api.Get("/route/:routeId/image", cfg.Routes.Image)
	api.Get("/route/:userId", cfg.Routes.ByUser)
	api.Get("/all-route", cfg.Routes.All)
	api.Post("/save-route", cfg.Routes.Save)
	api.Put("/put/:idRoute", cfg.Routes.Update)
	api.Delete("/delete-route/:routeId", cfg.Routes.Delete)

	api.Get("/point/:routeId", cfg.RoutePoints.ByRoute)
	api.Post("/set-point", cfg.RoutePoints.Set)

	api.Get("/get-comment/:routeId", cfg.Comments.ByRoute)
	api.Post("/create-comment", cfg.Comments.Create)
	api.Delete("/del/:idComment", cfg.Comments.Delete)

	api.Post("/add", cfg.Favorites.Add)
	api.Delete("/delete", cfg.Favorites.Delete)
	api.Get("/list", cfg.Favorites.List)
	api.Get("/routes-by-ids", cfg.Favorites.RoutesByIDs)

	api.Get("/:username", cfg.Users.ByUsername)
}
