package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"storefront/internal/errors"
	"storefront/internal/model"
	"storefront/internal/service"
)

// ProjectHandler handles project endpoints.
type ProjectHandler struct {
	portfolioService service.PortfolioService
}

// NewProjectHandler creates a new project handler.
func NewProjectHandler(portfolioService service.PortfolioService) *ProjectHandler {
	return &ProjectHandler{portfolioService: portfolioService}
}

// CreateProjectRequest represents a project creation request.
type CreateProjectRequest struct {
	Name           string     `json:"name" validate:"required"`
	Slug           string     `json:"slug" validate:"required"`
	CompanySlug    string     `json:"company_slug" validate:"required"`
	Address        string     `json:"address"`
	CompletionDate *time.Time `json:"completion_date"`
	ImageURLs      []string   `json:"image_urls"`
	IsFeatured     bool       `json:"is_featured"`
}

// UpdateProjectRequest represents a partial project update.
type UpdateProjectRequest struct {
	Name           *string    `json:"name"`
	Slug           *string    `json:"slug"`
	CompanySlug    *string    `json:"company_slug"`
	Address        *string    `json:"address"`
	CompletionDate *time.Time `json:"completion_date"`
	ImageURLs      *[]string  `json:"image_urls"`
	IsFeatured     *bool      `json:"is_featured"`
}

// FeaturedProjectResponse trims a project down to showcase fields.
type FeaturedProjectResponse struct {
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	Address     string   `json:"address,omitempty"`
	CompanySlug string   `json:"company_slug"`
	ImageURLs   []string `json:"image_urls"`
}

// ListProjects godoc
// @Summary List projects
// @Description The full listing is served from cache when available.
// @Tags projects
// @Produce json
// @Param company_slug query string false "Filter by company slug"
// @Success 200 {array} model.Project
// @Failure 404 {object} errors.ErrorResponse
// @Router /projects [get]
func (h *ProjectHandler) ListProjects(c echo.Context) error {
	projects, err := h.portfolioService.ListProjects(c.Request().Context(), c.QueryParam("company_slug"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, projects)
}

// ListFeaturedProjects godoc
// @Summary List featured projects
// @Tags projects
// @Produce json
// @Success 200 {array} FeaturedProjectResponse
// @Router /projects/featured [get]
func (h *ProjectHandler) ListFeaturedProjects(c echo.Context) error {
	projects, err := h.portfolioService.ListFeaturedProjects(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	out := make([]FeaturedProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, FeaturedProjectResponse{
			Name:        p.Name,
			Slug:        p.Slug,
			Address:     p.Address,
			CompanySlug: p.CompanySlug,
			ImageURLs:   p.ImageURLs,
		})
	}
	return c.JSON(http.StatusOK, out)
}

// GetProject godoc
// @Summary Get project by slug
// @Tags projects
// @Produce json
// @Param slug path string true "Project slug"
// @Success 200 {object} model.Project
// @Failure 404 {object} errors.ErrorResponse
// @Router /projects/{slug} [get]
func (h *ProjectHandler) GetProject(c echo.Context) error {
	project, err := h.portfolioService.GetProjectBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, project)
}

// CreateProject godoc
// @Summary Create project
// @Tags projects
// @Accept json
// @Produce json
// @Param request body CreateProjectRequest true "Project data"
// @Success 201 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /projects [post]
func (h *ProjectHandler) CreateProject(c echo.Context) error {
	var req CreateProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	project := &model.Project{
		Name:           req.Name,
		Slug:           req.Slug,
		CompanySlug:    req.CompanySlug,
		Address:        req.Address,
		CompletionDate: req.CompletionDate,
		ImageURLs:      req.ImageURLs,
		IsFeatured:     req.IsFeatured,
	}

	if err := h.portfolioService.CreateProject(c.Request().Context(), project); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, map[string]string{
		"message": "project created successfully",
		"id":      project.ID.String(),
	})
}

// UpdateProject godoc
// @Summary Update project
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param request body UpdateProjectRequest true "Fields to update"
// @Success 200 {object} model.Project
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /projects/{id} [put]
func (h *ProjectHandler) UpdateProject(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidUUID(c.Param("id"))
	}

	var req UpdateProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	project, err := h.portfolioService.UpdateProject(c.Request().Context(), id, service.ProjectUpdate{
		Name:           req.Name,
		Slug:           req.Slug,
		CompanySlug:    req.CompanySlug,
		Address:        req.Address,
		CompletionDate: req.CompletionDate,
		ImageURLs:      req.ImageURLs,
		IsFeatured:     req.IsFeatured,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, project)
}
