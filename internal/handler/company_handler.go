package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront/internal/errors"
	"storefront/internal/model"
	"storefront/internal/service"
)

// CompanyHandler handles company endpoints.
type CompanyHandler struct {
	portfolioService service.PortfolioService
}

// NewCompanyHandler creates a new company handler.
func NewCompanyHandler(portfolioService service.PortfolioService) *CompanyHandler {
	return &CompanyHandler{portfolioService: portfolioService}
}

// CreateCompanyRequest represents a company creation request.
type CreateCompanyRequest struct {
	Name    string `json:"name" validate:"required"`
	Slug    string `json:"slug" validate:"required"`
	LogoURL string `json:"logo_url"`
}

// ListCompanies godoc
// @Summary List companies
// @Tags companies
// @Produce json
// @Success 200 {array} model.Company
// @Router /companies [get]
func (h *CompanyHandler) ListCompanies(c echo.Context) error {
	companies, err := h.portfolioService.ListCompanies(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, companies)
}

// CreateCompany godoc
// @Summary Create company
// @Tags companies
// @Accept json
// @Produce json
// @Param request body CreateCompanyRequest true "Company data"
// @Success 201 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Router /companies [post]
func (h *CompanyHandler) CreateCompany(c echo.Context) error {
	var req CreateCompanyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	company := &model.Company{Name: req.Name, Slug: req.Slug, LogoURL: req.LogoURL}
	if err := h.portfolioService.CreateCompany(c.Request().Context(), company); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, map[string]string{
		"message": "company created successfully",
		"id":      company.ID.String(),
	})
}

// ListCompanyProjects godoc
// @Summary List projects for a company
// @Tags companies
// @Produce json
// @Param slug path string true "Company slug"
// @Success 200 {array} model.Project
// @Failure 404 {object} errors.ErrorResponse
// @Router /companies/{slug}/projects [get]
func (h *CompanyHandler) ListCompanyProjects(c echo.Context) error {
	projects, err := h.portfolioService.ListProjects(c.Request().Context(), c.Param("slug"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, projects)
}
