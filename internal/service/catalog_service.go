package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"storefront/internal/errors"
	"storefront/internal/model"
	"storefront/internal/repository"
)

// ProductUpdate carries a partial product update; nil fields are left
// untouched.
type ProductUpdate struct {
	Name        *string
	Price       *decimal.Decimal
	Category    *string
	CategoryID  *uuid.UUID
	Description *string
	Type        *model.ProductType
	Images      *[]string
	Options     *[]model.ProductOptionGroup
}

// CategoryUpdate carries a partial category update.
type CategoryUpdate struct {
	Name *string
	Slug *string
}

// CategoryWithCount is a category annotated with its product count.
type CategoryWithCount struct {
	model.Category
	ProductCount int64 `json:"product_count"`
}

// CatalogService handles product and category management.
type CatalogService interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*model.Product, error)
	CreateProduct(ctx context.Context, product *model.Product) error
	UpdateProduct(ctx context.Context, id uuid.UUID, update ProductUpdate) (*model.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error

	ListCategories(ctx context.Context) ([]CategoryWithCount, error)
	CreateCategory(ctx context.Context, category *model.Category) error
	UpdateCategory(ctx context.Context, id uuid.UUID, update CategoryUpdate) (*model.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}

type catalogService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) CatalogService {
	return &catalogService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

func (s *catalogService) ListProducts(ctx context.Context) ([]model.Product, error) {
	return s.productRepo.List(ctx)
}

func (s *catalogService) GetProduct(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return product, nil
}

func (s *catalogService) CreateProduct(ctx context.Context, product *model.Product) error {
	if product.Type == "" {
		product.Type = model.ProductTypeReady
	}
	if !product.Type.Valid() {
		return fmt.Errorf("unknown product type %q", product.Type)
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}

func (s *catalogService) UpdateProduct(ctx context.Context, id uuid.UUID, update ProductUpdate) (*model.Product, error) {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		product.Name = *update.Name
	}
	if update.Price != nil {
		product.Price = *update.Price
	}
	if update.Category != nil {
		product.Category = *update.Category
	}
	if update.CategoryID != nil {
		product.CategoryID = update.CategoryID
	}
	if update.Description != nil {
		product.Description = *update.Description
	}
	if update.Type != nil {
		if !update.Type.Valid() {
			return nil, fmt.Errorf("unknown product type %q", *update.Type)
		}
		product.Type = *update.Type
	}
	if update.Images != nil {
		product.Images = *update.Images
	}
	if update.Options != nil {
		product.Options = *update.Options
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	return product, nil
}

func (s *catalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetProduct(ctx, id); err != nil {
		return err
	}
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// ListCategories returns every category annotated with the number of
// products referencing it.
func (s *catalogService) ListCategories(ctx context.Context) ([]CategoryWithCount, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	counts, err := s.productRepo.CountPerCategory(ctx)
	if err != nil {
		return nil, fmt.Errorf("count products: %w", err)
	}

	result := make([]CategoryWithCount, 0, len(categories))
	for _, cat := range categories {
		result = append(result, CategoryWithCount{
			Category:     cat,
			ProductCount: counts[cat.ID],
		})
	}
	return result, nil
}

func (s *catalogService) CreateCategory(ctx context.Context, category *model.Category) error {
	existing, err := s.categoryRepo.FindBySlug(ctx, category.Slug)
	if err == nil && existing != nil {
		return errors.ErrSlugTaken
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return fmt.Errorf("check category slug: %w", err)
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return fmt.Errorf("create category: %w", err)
	}
	return nil
}

func (s *catalogService) UpdateCategory(ctx context.Context, id uuid.UUID, update CategoryUpdate) (*model.Category, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("find category: %w", err)
	}

	if update.Slug != nil && *update.Slug != category.Slug {
		existing, err := s.categoryRepo.FindBySlug(ctx, *update.Slug)
		if err == nil && existing != nil {
			return nil, errors.ErrSlugTaken
		}
		if err != nil && err != gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("check category slug: %w", err)
		}
		category.Slug = *update.Slug
	}
	if update.Name != nil {
		category.Name = *update.Name
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}
	return category, nil
}

// DeleteCategory removes a category unless products still reference it.
func (s *catalogService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrCategoryNotFound
		}
		return fmt.Errorf("find category: %w", err)
	}

	count, err := s.productRepo.CountByCategory(ctx, category.ID)
	if err != nil {
		return fmt.Errorf("count products in category: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("%w: %d products remain", errors.ErrCategoryInUse, count)
	}

	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
