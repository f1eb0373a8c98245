package repository

import (
	"context"

	"gorm.io/gorm"

	"storefront/internal/model"
)

// CompanyRepository defines company persistence operations.
type CompanyRepository interface {
	Create(ctx context.Context, company *model.Company) error
	FindBySlug(ctx context.Context, slug string) (*model.Company, error)
	List(ctx context.Context) ([]model.Company, error)
}

type companyRepository struct {
	db *gorm.DB
}

// NewCompanyRepository builds a GORM-backed repository.
func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &companyRepository{db: db}
}

func (r *companyRepository) Create(ctx context.Context, company *model.Company) error {
	return r.db.WithContext(ctx).Create(company).Error
}

func (r *companyRepository) FindBySlug(ctx context.Context, slug string) (*model.Company, error) {
	var company model.Company
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&company).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *companyRepository) List(ctx context.Context) ([]model.Company, error) {
	var companies []model.Company
	if err := r.db.WithContext(ctx).Find(&companies).Error; err != nil {
		return nil, err
	}
	return companies, nil
}
