package service

import (
	"context"
	"fmt"

	"storefront/internal/model"
	"storefront/internal/repository"
)

// Default categories installed on an empty catalog.
var defaultCategories = []model.Category{
	{Name: "Bảng hiệu trọn gói", Slug: "bang-hieu-tron-goi"},
	{Name: "Vật tư quảng cáo", Slug: "vat-tu-quang-cao"},
	{Name: "Standee/Kệ X", Slug: "standee-ke-x"},
	{Name: "Đèn Neon", Slug: "den-neon"},
}

// SeedService installs baseline data on fresh deployments.
type SeedService interface {
	SeedDefaultCategories(ctx context.Context) (int, error)
	SeedAdminUser(ctx context.Context, email, password string) (bool, error)
}

type seedService struct {
	categoryRepo repository.CategoryRepository
	authService  AuthService
	userRepo     repository.UserRepository
}

// NewSeedService creates a new seed service.
func NewSeedService(categoryRepo repository.CategoryRepository, userRepo repository.UserRepository, authService AuthService) SeedService {
	return &seedService{
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
		authService:  authService,
	}
}

// SeedDefaultCategories inserts the default category set when the table
// is empty. Returns the number of categories created.
func (s *seedService) SeedDefaultCategories(ctx context.Context) (int, error) {
	count, err := s.categoryRepo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count categories: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	created := 0
	for _, cat := range defaultCategories {
		category := cat
		if err := s.categoryRepo.Create(ctx, &category); err != nil {
			return created, fmt.Errorf("seed category %s: %w", cat.Slug, err)
		}
		created++
	}
	return created, nil
}

// SeedAdminUser registers an admin account unless the email is already
// taken. Returns whether a new account was created.
func (s *seedService) SeedAdminUser(ctx context.Context, email, password string) (bool, error) {
	if email == "" || password == "" {
		return false, nil
	}

	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return false, nil
	}

	if _, err := s.authService.Register(ctx, email, password, "Admin", model.RoleAdmin); err != nil {
		return false, fmt.Errorf("register admin: %w", err)
	}
	return true, nil
}
