package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"storefront/internal/errors"
	"storefront/internal/model"
	"storefront/internal/service"
)

// ProductHandler handles product endpoints.
type ProductHandler struct {
	catalogService service.CatalogService
}

// NewProductHandler creates a new product handler.
func NewProductHandler(catalogService service.CatalogService) *ProductHandler {
	return &ProductHandler{catalogService: catalogService}
}

// CreateProductRequest represents a product creation request.
type CreateProductRequest struct {
	Name        string                     `json:"name" validate:"required"`
	Slug        string                     `json:"slug" validate:"required"`
	Price       decimal.Decimal            `json:"price" validate:"required"`
	Category    string                     `json:"category"`
	CategoryID  *uuid.UUID                 `json:"category_id"`
	Description string                     `json:"description"`
	Type        model.ProductType          `json:"type" validate:"omitempty,oneof=ready custom"`
	Images      []string                   `json:"images"`
	Options     []model.ProductOptionGroup `json:"options"`
}

// UpdateProductRequest represents a partial product update. Absent
// fields are left unchanged.
type UpdateProductRequest struct {
	Name        *string                     `json:"name"`
	Price       *decimal.Decimal            `json:"price"`
	Category    *string                     `json:"category"`
	CategoryID  *uuid.UUID                  `json:"category_id"`
	Description *string                     `json:"description"`
	Type        *model.ProductType          `json:"type" validate:"omitempty,oneof=ready custom"`
	Images      *[]string                   `json:"images"`
	Options     *[]model.ProductOptionGroup `json:"options"`
}

// ListProducts godoc
// @Summary List products
// @Tags products
// @Produce json
// @Success 200 {array} model.Product
// @Router /products [get]
func (h *ProductHandler) ListProducts(c echo.Context) error {
	products, err := h.catalogService.ListProducts(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, products)
}

// GetProduct godoc
// @Summary Get product by id
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} model.Product
// @Failure 404 {object} errors.ErrorResponse
// @Router /products/{id} [get]
func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidUUID(c.Param("id"))
	}

	product, err := h.catalogService.GetProduct(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, product)
}

// CreateProduct godoc
// @Summary Create product
// @Tags products
// @Accept json
// @Produce json
// @Param request body CreateProductRequest true "Product data"
// @Success 201 {object} model.Product
// @Failure 400 {object} errors.ErrorResponse
// @Router /products [post]
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product := &model.Product{
		Name:        req.Name,
		Slug:        req.Slug,
		Price:       req.Price,
		Category:    req.Category,
		CategoryID:  req.CategoryID,
		Description: req.Description,
		Type:        req.Type,
		Images:      req.Images,
		Options:     req.Options,
	}

	if err := h.catalogService.CreateProduct(c.Request().Context(), product); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, product)
}

// UpdateProduct godoc
// @Summary Update product
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body UpdateProductRequest true "Fields to update"
// @Success 200 {object} model.Product
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /products/{id} [put]
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidUUID(c.Param("id"))
	}

	var req UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	update := service.ProductUpdate{
		Name:        req.Name,
		Price:       req.Price,
		Category:    req.Category,
		CategoryID:  req.CategoryID,
		Description: req.Description,
		Type:        req.Type,
		Images:      req.Images,
		Options:     req.Options,
	}

	product, err := h.catalogService.UpdateProduct(c.Request().Context(), id, update)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, product)
}

// DeleteProduct godoc
// @Summary Delete product
// @Tags products
// @Param id path string true "Product ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Router /products/{id} [delete]
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidUUID(c.Param("id"))
	}

	if err := h.catalogService.DeleteProduct(c.Request().Context(), id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.NoContent(http.StatusNoContent)
}

func invalidUUID(raw string) error {
	return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
		Error: "invalid ID: " + raw,
		Code:  "INVALID_UUID",
	})
}
