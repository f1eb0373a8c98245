package main

import (
	"context"
	"log"

	"storefront/internal/auth"
	"storefront/internal/config"
	"storefront/internal/db"
	"storefront/internal/repository"
	"storefront/internal/service"
)

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	categoryRepo := repository.NewCategoryRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)
	authService := service.NewAuthService(userRepo, auth.NewJWTService(cfg.JWTSecret))
	seedService := service.NewSeedService(categoryRepo, userRepo, authService)

	ctx := context.Background()

	created, err := seedService.SeedDefaultCategories(ctx)
	if err != nil {
		log.Fatalf("Failed to seed categories: %v", err)
	}
	if created > 0 {
		log.Printf("  - Default categories created: %d", created)
	} else {
		log.Println("  - Categories already present, skipped")
	}

	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("  - ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin user")
	} else {
		createdAdmin, err := seedService.SeedAdminUser(ctx, cfg.AdminEmail, cfg.AdminPassword)
		if err != nil {
			log.Fatalf("Failed to seed admin user: %v", err)
		}
		if createdAdmin {
			log.Printf("  - Admin user created: %s", cfg.AdminEmail)
		} else {
			log.Printf("  - Admin user already exists: %s", cfg.AdminEmail)
		}
	}

	log.Println("Seed completed successfully!")
}
