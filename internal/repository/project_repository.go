package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"storefront/internal/model"
)

// ProjectRepository defines project persistence operations.
type ProjectRepository interface {
	Create(ctx context.Context, project *model.Project) error
	Update(ctx context.Context, project *model.Project) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Project, error)
	FindBySlug(ctx context.Context, slug string) (*model.Project, error)
	List(ctx context.Context) ([]model.Project, error)
	ListByCompanySlug(ctx context.Context, companySlug string) ([]model.Project, error)
	ListFeatured(ctx context.Context, limit int) ([]model.Project, error)
}

type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository builds a GORM-backed repository.
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) Create(ctx context.Context, project *model.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

func (r *projectRepository) Update(ctx context.Context, project *model.Project) error {
	return r.db.WithContext(ctx).Save(project).Error
}

func (r *projectRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	var project model.Project
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *projectRepository) FindBySlug(ctx context.Context, slug string) (*model.Project, error) {
	var project model.Project
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *projectRepository) List(ctx context.Context) ([]model.Project, error) {
	var projects []model.Project
	if err := r.db.WithContext(ctx).Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *projectRepository) ListByCompanySlug(ctx context.Context, companySlug string) ([]model.Project, error) {
	var projects []model.Project
	if err := r.db.WithContext(ctx).Where("company_slug = ?", companySlug).Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *projectRepository) ListFeatured(ctx context.Context, limit int) ([]model.Project, error) {
	var projects []model.Project
	if err := r.db.WithContext(ctx).Where("is_featured = ?", true).Limit(limit).Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}
