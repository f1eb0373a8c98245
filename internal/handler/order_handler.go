package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"storefront/internal/errors"
	"storefront/internal/model"
	"storefront/internal/service"
)

// OrderHandler handles order endpoints.
type OrderHandler struct {
	orderService service.OrderService
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// CustomerInfoRequest carries the customer details for an order.
type CustomerInfoRequest struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Address string `json:"address" validate:"required"`
	Note    string `json:"note"`
}

// OrderItemRequest references a product and quantity to purchase.
type OrderItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

// CreateOrderRequest represents an order intake request.
type CreateOrderRequest struct {
	CustomerInfo CustomerInfoRequest `json:"customer_info" validate:"required"`
	Items        []OrderItemRequest  `json:"items" validate:"required,dive"`
}

// CreateOrder godoc
// @Summary Create an order
// @Description Snapshots current product names and prices into the order.
// @Tags orders
// @Accept json
// @Produce json
// @Param request body CreateOrderRequest true "Order data"
// @Success 201 {object} model.Order
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /orders [post]
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	items := make([]service.OrderItemRequest, 0, len(req.Items))
	for _, item := range req.Items {
		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
				Error: "invalid product ID: " + item.ProductID,
				Code:  "INVALID_UUID",
			})
		}
		items = append(items, service.OrderItemRequest{
			ProductID: productID,
			Quantity:  item.Quantity,
		})
	}

	customer := service.CustomerInfo{
		Name:    req.CustomerInfo.Name,
		Phone:   req.CustomerInfo.Phone,
		Email:   req.CustomerInfo.Email,
		Address: req.CustomerInfo.Address,
		Note:    req.CustomerInfo.Note,
	}

	order, err := h.orderService.CreateOrder(c.Request().Context(), customer, items)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, order)
}

// ListOrders godoc
// @Summary List orders
// @Tags orders
// @Produce json
// @Param status query string false "Filter by status"
// @Param search query string false "Search by customer name or phone"
// @Success 200 {array} model.Order
// @Failure 400 {object} errors.ErrorResponse
// @Router /orders [get]
func (h *OrderHandler) ListOrders(c echo.Context) error {
	status := model.OrderStatus(c.QueryParam("status"))
	if status != "" && !status.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "unknown order status: " + string(status),
			Code:  "INVALID_STATUS",
		})
	}

	orders, err := h.orderService.ListOrders(c.Request().Context(), status, c.QueryParam("search"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, orders)
}
