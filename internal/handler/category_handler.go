package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"storefront/internal/errors"
	"storefront/internal/model"
	"storefront/internal/service"
)

// CategoryHandler handles category endpoints.
type CategoryHandler struct {
	catalogService service.CatalogService
}

// NewCategoryHandler creates a new category handler.
func NewCategoryHandler(catalogService service.CatalogService) *CategoryHandler {
	return &CategoryHandler{catalogService: catalogService}
}

// CreateCategoryRequest represents a category creation request.
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required"`
	Slug string `json:"slug" validate:"required"`
}

// UpdateCategoryRequest represents a partial category update.
type UpdateCategoryRequest struct {
	Name *string `json:"name"`
	Slug *string `json:"slug"`
}

// ListCategories godoc
// @Summary List categories with product counts
// @Tags categories
// @Produce json
// @Success 200 {array} service.CategoryWithCount
// @Router /categories [get]
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	categories, err := h.catalogService.ListCategories(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, categories)
}

// CreateCategory godoc
// @Summary Create category
// @Tags categories
// @Accept json
// @Produce json
// @Param request body CreateCategoryRequest true "Category data"
// @Success 201 {object} model.Category
// @Failure 400 {object} errors.ErrorResponse
// @Router /categories [post]
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var req CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	category := &model.Category{Name: req.Name, Slug: req.Slug}
	if err := h.catalogService.CreateCategory(c.Request().Context(), category); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, category)
}

// UpdateCategory godoc
// @Summary Update category
// @Tags categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param request body UpdateCategoryRequest true "Fields to update"
// @Success 200 {object} model.Category
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /categories/{id} [put]
func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidUUID(c.Param("id"))
	}

	var req UpdateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	category, err := h.catalogService.UpdateCategory(c.Request().Context(), id, service.CategoryUpdate{
		Name: req.Name,
		Slug: req.Slug,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, category)
}

// DeleteCategory godoc
// @Summary Delete category
// @Description Fails while products still reference the category.
// @Tags categories
// @Param id path string true "Category ID"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidUUID(c.Param("id"))
	}

	if err := h.catalogService.DeleteCategory(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}
