package main

import (
	"context"
	"log"
	"net/http"

	"storefront/docs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"storefront/internal/auth"
	"storefront/internal/cache"
	"storefront/internal/config"
	"storefront/internal/db"
	"storefront/internal/handler"
	"storefront/internal/repository"
	"storefront/internal/router"
	"storefront/internal/service"
)

// @title Storefront API
// @version 1.0
// @description E-commerce storefront backend with catalog, portfolio, orders and JWT authentication.
// @host localhost:8080
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	productRepo := repository.NewProductRepository(gormDB)
	categoryRepo := repository.NewCategoryRepository(gormDB)
	companyRepo := repository.NewCompanyRepository(gormDB)
	projectRepo := repository.NewProjectRepository(gormDB)
	orderRepo := repository.NewOrderRepository(gormDB)

	// Initialize services
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	authService := service.NewAuthService(userRepo, jwtService)
	orderService := service.NewOrderService(orderRepo, productRepo)
	catalogService := service.NewCatalogService(productRepo, categoryRepo)
	portfolioService := service.NewPortfolioService(companyRepo, projectRepo, cacheClient)
	seedService := service.NewSeedService(categoryRepo, userRepo, authService)

	// Seed default categories on a fresh database
	if created, err := seedService.SeedDefaultCategories(context.Background()); err != nil {
		log.Printf("Warning: category seed failed: %v", err)
	} else if created > 0 {
		log.Printf("Seeded %d default categories", created)
	}

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, cfg.SecureCookies)
	orderHandler := handler.NewOrderHandler(orderService)
	productHandler := handler.NewProductHandler(catalogService)
	categoryHandler := handler.NewCategoryHandler(catalogService)
	companyHandler := handler.NewCompanyHandler(portfolioService)
	projectHandler := handler.NewProjectHandler(portfolioService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		orderHandler,
		productHandler,
		categoryHandler,
		companyHandler,
		projectHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
