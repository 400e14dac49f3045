package main // Entry point package

import (
	"context"
	"log" // Logging library

	"github.com/joho/godotenv"    // .env loading for local development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/arvele/storefront-api/internal/config"
	"github.com/arvele/storefront-api/internal/database"
	"github.com/arvele/storefront-api/internal/handler"
	"github.com/arvele/storefront-api/internal/queue"
	"github.com/arvele/storefront-api/internal/repository"
	"github.com/arvele/storefront-api/internal/router"
	queue_publisher "github.com/arvele/storefront-api/internal/service"
)

func main() {
	_ = godotenv.Load() // .env is optional; real deployments set env directly

	cfg := config.Load() // Load environment config

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	users := repository.NewUserRepo(db)
	products := repository.NewProductRepo(db)
	cart := repository.NewCartRepo(db)
	wishlist := repository.NewWishlistRepo(db)

	// Seed the demo catalog on first boot so a fresh install has products.
	if err := products.EnsureSeed(context.Background()); err != nil {
		log.Printf("catalog seed skipped: %v", err)
	}

	// Redis is optional infrastructure: when it cannot be reached the
	// response cache and rate limiter degrade to pass-throughs.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; cache and rate limiting disabled")
	}

	// Best-effort publisher for cart activity; failures are logged inside
	// and never surface to the request.
	publish := func(c echo.Context, ev queue.CartActivityEvent) {
		_ = queue_publisher.PublishCartActivity(c.Request().Context(), ev)
	}

	h := router.Handlers{
		Auth:     handler.NewAuthHandler(cfg, users),
		Catalog:  handler.NewCatalogHandler(products),
		Cart:     handler.NewCartHandler(cart, publish),
		Wishlist: handler.NewWishlistHandler(wishlist),
	}

	// Background consumer appends cart activity to logs/cart.log and keeps
	// reconnecting on its own.
	go func() {
		if err := queue.StartCartConsumer(); err != nil {
			log.Printf("cart consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	router.Register(e, h, cfg, rdb)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
