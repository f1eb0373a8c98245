package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"storefront/internal/cache"
	"storefront/internal/errors"
	"storefront/internal/model"
)

// Tests run with a nil cache client: it behaves as a permanent miss, so
// every listing falls through to the repository.
var noCache *cache.Client

func TestPortfolioService_ListProjects(t *testing.T) {
	t.Run("full listing without cache", func(t *testing.T) {
		mockCompanies := new(MockCompanyRepository)
		mockProjects := new(MockProjectRepository)

		mockProjects.On("List", mock.Anything).Return([]model.Project{
			{Name: "Landmark Sign", Slug: "landmark-sign", CompanySlug: "vingroup"},
		}, nil)

		service := NewPortfolioService(mockCompanies, mockProjects, noCache)
		projects, err := service.ListProjects(context.Background(), "")

		assert.NoError(t, err)
		assert.Len(t, projects, 1)
		mockProjects.AssertExpectations(t)
	})

	t.Run("company filter requires an existing company", func(t *testing.T) {
		mockCompanies := new(MockCompanyRepository)
		mockProjects := new(MockProjectRepository)

		mockCompanies.On("FindBySlug", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

		service := NewPortfolioService(mockCompanies, mockProjects, noCache)
		_, err := service.ListProjects(context.Background(), "ghost")

		assert.ErrorIs(t, err, errors.ErrCompanyNotFound)
		mockProjects.AssertNotCalled(t, "ListByCompanySlug", mock.Anything, mock.Anything)
	})

	t.Run("company filter lists that company's projects", func(t *testing.T) {
		mockCompanies := new(MockCompanyRepository)
		mockProjects := new(MockProjectRepository)

		mockCompanies.On("FindBySlug", mock.Anything, "vingroup").Return(&model.Company{Slug: "vingroup"}, nil)
		mockProjects.On("ListByCompanySlug", mock.Anything, "vingroup").Return([]model.Project{
			{Name: "Landmark Sign", Slug: "landmark-sign", CompanySlug: "vingroup"},
		}, nil)

		service := NewPortfolioService(mockCompanies, mockProjects, noCache)
		projects, err := service.ListProjects(context.Background(), "vingroup")

		assert.NoError(t, err)
		assert.Len(t, projects, 1)
		assert.Equal(t, "vingroup", projects[0].CompanySlug)
	})
}

func TestPortfolioService_CreateProject(t *testing.T) {
	t.Run("project requires an existing company", func(t *testing.T) {
		mockCompanies := new(MockCompanyRepository)
		mockProjects := new(MockProjectRepository)

		mockCompanies.On("FindBySlug", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

		service := NewPortfolioService(mockCompanies, mockProjects, noCache)
		err := service.CreateProject(context.Background(), &model.Project{
			Name:        "Landmark Sign",
			Slug:        "landmark-sign",
			CompanySlug: "ghost",
		})

		assert.ErrorIs(t, err, errors.ErrCompanyNotFound)
		mockProjects.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("project is created for a known company", func(t *testing.T) {
		mockCompanies := new(MockCompanyRepository)
		mockProjects := new(MockProjectRepository)

		mockCompanies.On("FindBySlug", mock.Anything, "vingroup").Return(&model.Company{Slug: "vingroup"}, nil)
		mockProjects.On("Create", mock.Anything, mock.AnythingOfType("*model.Project")).Return(nil)

		service := NewPortfolioService(mockCompanies, mockProjects, noCache)
		err := service.CreateProject(context.Background(), &model.Project{
			Name:        "Landmark Sign",
			Slug:        "landmark-sign",
			CompanySlug: "vingroup",
		})

		assert.NoError(t, err)
		mockProjects.AssertExpectations(t)
	})
}

func TestPortfolioService_CreateCompany(t *testing.T) {
	mockCompanies := new(MockCompanyRepository)
	mockProjects := new(MockProjectRepository)

	mockCompanies.On("FindBySlug", mock.Anything, "vingroup").Return(&model.Company{Slug: "vingroup"}, nil)

	service := NewPortfolioService(mockCompanies, mockProjects, noCache)
	err := service.CreateCompany(context.Background(), &model.Company{Name: "Vingroup", Slug: "vingroup"})

	assert.ErrorIs(t, err, errors.ErrSlugTaken)
	mockCompanies.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPortfolioService_ListFeaturedProjects(t *testing.T) {
	mockCompanies := new(MockCompanyRepository)
	mockProjects := new(MockProjectRepository)

	mockProjects.On("ListFeatured", mock.Anything, featuredLimit).Return([]model.Project{
		{Name: "Landmark Sign", Slug: "landmark-sign", IsFeatured: true},
	}, nil)

	service := NewPortfolioService(mockCompanies, mockProjects, noCache)
	projects, err := service.ListFeaturedProjects(context.Background())

	assert.NoError(t, err)
	assert.Len(t, projects, 1)
	mockProjects.AssertExpectations(t)
}
