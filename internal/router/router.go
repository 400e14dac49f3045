package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // Echo web framework handles routing
	"github.com/redis/go-redis/v9"

	"github.com/arvele/storefront-api/internal/config"
	"github.com/arvele/storefront-api/internal/handler"
	"github.com/arvele/storefront-api/internal/middleware"
)

// Handlers groups everything the router mounts. The Redis client is
// optional; when nil the cache and rate-limit middlewares become
// pass-throughs.
type Handlers struct {
	Auth     *handler.AuthHandler
	Catalog  *handler.CatalogHandler
	Cart     *handler.ItemsHandler
	Wishlist *handler.ItemsHandler
}

// Register mounts the whole HTTP surface.
//
//	public:    /healthz, GET /api/product(s) (Redis-cached)
//	auth:      POST /api/auth/register, POST /api/auth/login (rate limited)
//	protected: /api/me, /api/cart..., /api/wishlist... behind the JWT gate
func Register(e *echo.Echo, h Handlers, cfg config.Config, rdb *redis.Client) {
	// Health check used by load balancers and monitoring.
	e.GET("/healthz", handler.Health)

	// Public catalog. Both singular and plural paths are served because
	// clients in the wild use either. Responses are cached in Redis.
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	e.GET("/api/product", h.Catalog.ListProducts, cache)
	e.GET("/api/products", h.Catalog.ListProducts, cache)

	// Registration and login do bcrypt work, so they get the token bucket.
	authGroup := e.Group("/api/auth")
	authGroup.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	authGroup.POST("/register", h.Auth.Register)
	authGroup.POST("/login", h.Auth.Login)

	// Everything below requires a verified bearer token. The gate stores
	// the claims in context; handlers trust only those, never the body.
	api := e.Group("/api")
	api.Use(middleware.JWTAuth(cfg.JWTSecret))
	api.GET("/me", h.Auth.Me)

	api.POST("/cart", h.Cart.Add)
	api.GET("/cart", h.Cart.List)
	api.DELETE("/cart/:id", h.Cart.Remove)

	api.POST("/wishlist", h.Wishlist.Add)
	api.GET("/wishlist", h.Wishlist.List)
	api.DELETE("/wishlist/:id", h.Wishlist.Remove)
}
