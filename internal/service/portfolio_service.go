package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"storefront/internal/cache"
	"storefront/internal/errors"
	"storefront/internal/model"
	"storefront/internal/repository"
)

const (
	projectsCacheKey = "all_projects"
	projectsCacheTTL = time.Hour
	featuredLimit    = 6
)

// ProjectUpdate carries a partial project update; nil fields are left
// untouched.
type ProjectUpdate struct {
	Name           *string
	Slug           *string
	CompanySlug    *string
	Address        *string
	CompletionDate *time.Time
	ImageURLs      *[]string
	IsFeatured     *bool
}

// PortfolioService handles companies and their showcased projects.
type PortfolioService interface {
	ListCompanies(ctx context.Context) ([]model.Company, error)
	CreateCompany(ctx context.Context, company *model.Company) error

	ListProjects(ctx context.Context, companySlug string) ([]model.Project, error)
	ListFeaturedProjects(ctx context.Context) ([]model.Project, error)
	GetProjectBySlug(ctx context.Context, slug string) (*model.Project, error)
	CreateProject(ctx context.Context, project *model.Project) error
	UpdateProject(ctx context.Context, id uuid.UUID, update ProjectUpdate) (*model.Project, error)
}

type portfolioService struct {
	companyRepo repository.CompanyRepository
	projectRepo repository.ProjectRepository
	cache       *cache.Client
}

// NewPortfolioService creates a new portfolio service.
func NewPortfolioService(companyRepo repository.CompanyRepository, projectRepo repository.ProjectRepository, cache *cache.Client) PortfolioService {
	return &portfolioService{
		companyRepo: companyRepo,
		projectRepo: projectRepo,
		cache:       cache,
	}
}

func (s *portfolioService) ListCompanies(ctx context.Context) ([]model.Company, error) {
	return s.companyRepo.List(ctx)
}

func (s *portfolioService) CreateCompany(ctx context.Context, company *model.Company) error {
	existing, err := s.companyRepo.FindBySlug(ctx, company.Slug)
	if err == nil && existing != nil {
		return errors.ErrSlugTaken
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return fmt.Errorf("check company slug: %w", err)
	}

	if err := s.companyRepo.Create(ctx, company); err != nil {
		return fmt.Errorf("create company: %w", err)
	}
	return nil
}

// ListProjects returns projects for one company, or the full listing.
// The full listing is memoized in the cache for an hour; cache failures
// fall through to the database.
func (s *portfolioService) ListProjects(ctx context.Context, companySlug string) ([]model.Project, error) {
	if companySlug != "" {
		if _, err := s.companyRepo.FindBySlug(ctx, companySlug); err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, errors.ErrCompanyNotFound
			}
			return nil, fmt.Errorf("find company: %w", err)
		}
		return s.projectRepo.ListByCompanySlug(ctx, companySlug)
	}

	var cached []model.Project
	if s.cache.GetJSON(ctx, projectsCacheKey, &cached) {
		return cached, nil
	}

	projects, err := s.projectRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	s.cache.SetJSON(ctx, projectsCacheKey, projects, projectsCacheTTL)
	return projects, nil
}

func (s *portfolioService) ListFeaturedProjects(ctx context.Context) ([]model.Project, error) {
	return s.projectRepo.ListFeatured(ctx, featuredLimit)
}

func (s *portfolioService) GetProjectBySlug(ctx context.Context, slug string) (*model.Project, error) {
	project, err := s.projectRepo.FindBySlug(ctx, slug)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("find project: %w", err)
	}
	return project, nil
}

func (s *portfolioService) CreateProject(ctx context.Context, project *model.Project) error {
	if _, err := s.companyRepo.FindBySlug(ctx, project.CompanySlug); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrCompanyNotFound
		}
		return fmt.Errorf("find company: %w", err)
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return fmt.Errorf("create project: %w", err)
	}

	_ = s.cache.Delete(ctx, projectsCacheKey)
	return nil
}

func (s *portfolioService) UpdateProject(ctx context.Context, id uuid.UUID, update ProjectUpdate) (*model.Project, error) {
	project, err := s.projectRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("find project: %w", err)
	}

	if update.CompanySlug != nil && *update.CompanySlug != "" {
		if _, err := s.companyRepo.FindBySlug(ctx, *update.CompanySlug); err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, errors.ErrCompanyNotFound
			}
			return nil, fmt.Errorf("find company: %w", err)
		}
		project.CompanySlug = *update.CompanySlug
	}
	if update.Name != nil {
		project.Name = *update.Name
	}
	if update.Slug != nil {
		project.Slug = *update.Slug
	}
	if update.Address != nil {
		project.Address = *update.Address
	}
	if update.CompletionDate != nil {
		project.CompletionDate = update.CompletionDate
	}
	if update.ImageURLs != nil {
		project.ImageURLs = *update.ImageURLs
	}
	if update.IsFeatured != nil {
		project.IsFeatured = *update.IsFeatured
	}

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}

	_ = s.cache.Delete(ctx, projectsCacheKey)
	return project, nil
}
