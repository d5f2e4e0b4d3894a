package main

import (
	"context"
	"log"

	"StorefrontAPI/external/shopapi"
	"StorefrontAPI/internal/cache"
	"StorefrontAPI/internal/config"
	"StorefrontAPI/internal/db"
	"StorefrontAPI/internal/middleware"
	"StorefrontAPI/internal/poller"
	"StorefrontAPI/internal/repository"
	"StorefrontAPI/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	// ======================
	// INFRA
	// ======================
	if err := db.Migrate(cfg.DatabaseDSN); err != nil {
		log.Fatal(err)
	}
	pool, err := db.Connect(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer redisClient.Close()

	// ======================
	// EXTERNALS
	// ======================
	shopClient := shopapi.NewClient(cfg.ShopAPIURL, cfg.UpstreamTimeout)

	// ======================
	// STORES
	// ======================
	sessionRepo := repository.NewSessionRepository(pool)
	sessionCache := cache.NewRedisCache(redisClient, cfg.SessionTTL)
	sessionSvc := services.NewSessionService(sessionRepo, sessionCache)
	cartSvc := services.NewCartService()

	// ======================
	// SERVICES
	// ======================
	authSvc := services.NewAuthService(shopClient, sessionSvc)
	productSvc := services.NewProductService(shopClient)
	orderSvc := services.NewOrderService(shopClient)
	checkoutSvc := services.NewCheckoutService(shopClient, cartSvc)
	statusWatcher := poller.NewWatcher(shopClient, cartSvc, 0, 0)

	// ======================
	// ECHO
	// ======================
	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSAllowOrigins,
	}))

	api := e.Group("/api")
	protect := middleware.SessionMiddleware(sessionSvc)

	// ======================
	// ROUTES (ONLY REGISTRATION)
	// ======================
	registerAuthRoutes(api, authSvc, protect)
	registerProductRoutes(api, productSvc, protect)
	registerCartRoutes(api, cartSvc, protect)
	registerCheckoutRoutes(api, checkoutSvc, protect)
	registerOrderRoutes(api, orderSvc, protect)
	registerPaymentRoutes(ctx, api, statusWatcher, protect)

	// ======================
	// SERVER
	// ======================
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
