// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"net/http"
	"time"

	"trailpack/config"
	"trailpack/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

// rateLimitIdleExpiry drops per-client buckets that have been idle this long.
const rateLimitIdleExpiry = 3 * time.Minute

type RouterParams struct {
	fx.In

	DestinationHandler *handler.DestinationHandler
	CatalogHandler     *handler.CatalogHandler
	PackageHandler     *handler.PackageHandler
	Config             *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	destinationHandler *handler.DestinationHandler
	catalogHandler     *handler.CatalogHandler
	packageHandler     *handler.PackageHandler
	config             *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		destinationHandler: params.DestinationHandler,
		catalogHandler:     params.CatalogHandler,
		packageHandler:     params.PackageHandler,
		config:             params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	r.registerAdminRoutes(e.Group(""))

	// Public reads are served at the root and under /api/v1
	limiter := r.rateLimiter()
	r.registerPublicRoutes(e.Group("", limiter...))
	r.registerPublicRoutes(e.Group("/api/v1", limiter...))
}

func (r *router) registerAdminRoutes(g *echo.Group) {
	destinations := g.Group("/destination")
	{
		destinations.POST("", r.destinationHandler.CreateDestination)
		destinations.PUT("/:id", r.destinationHandler.UpdateDestination)
		destinations.DELETE("/:id", r.destinationHandler.DeleteDestination)
	}

	foodSpots := g.Group("/foodspot")
	{
		foodSpots.POST("", r.catalogHandler.CreateFoodSpot)
		foodSpots.PUT("/:id", r.catalogHandler.UpdateFoodSpot)
		foodSpots.DELETE("/:id", r.catalogHandler.DeleteFoodSpot)
	}

	stays := g.Group("/stay")
	{
		stays.POST("", r.catalogHandler.CreateStay)
		stays.PUT("/:id", r.catalogHandler.UpdateStay)
		stays.DELETE("/:id", r.catalogHandler.DeleteStay)
	}

	localGems := g.Group("/localgem")
	{
		localGems.POST("", r.catalogHandler.CreateLocalGem)
		localGems.PUT("/:id", r.catalogHandler.UpdateLocalGem)
		localGems.DELETE("/:id", r.catalogHandler.DeleteLocalGem)
	}

	activities := g.Group("/activity")
	{
		activities.POST("", r.catalogHandler.CreateActivity)
		activities.PUT("/:id", r.catalogHandler.UpdateActivity)
		activities.DELETE("/:id", r.catalogHandler.DeleteActivity)
	}

	packages := g.Group("/package")
	{
		packages.POST("", r.packageHandler.CreatePackage)
		packages.PUT("/:id", r.packageHandler.UpdatePackage)
		packages.DELETE("/:id", r.packageHandler.DeletePackage)
	}
}

func (r *router) registerPublicRoutes(g *echo.Group) {
	packages := g.Group("/packages")
	{
		packages.GET("/destination/:destinationId", r.packageHandler.ListByDestination)
		packages.GET("/:id", r.packageHandler.GetDetail)
		packages.GET("/:id/qr", r.packageHandler.GetShareQR)
	}
}

// rateLimiter returns the per-IP limiter for public reads, or nothing when disabled.
func (r *router) rateLimiter() []echo.MiddlewareFunc {
	cfg := r.config.HTTP.RateLimit
	if cfg == nil || !cfg.Enabled || cfg.RequestsPerSecond <= 0 {
		return nil
	}

	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(cfg.RequestsPerSecond),
		Burst:     cfg.Burst,
		ExpiresIn: rateLimitIdleExpiry,
	})

	return []echo.MiddlewareFunc{middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusForbidden, "unable to identify client")
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return echo.NewHTTPError(http.StatusTooManyRequests, "Too many requests")
		},
	})}
}
