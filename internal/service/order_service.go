package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"storefront/internal/errors"
	"storefront/internal/model"
	"storefront/internal/repository"
)

// CustomerInfo carries the customer details captured with an order.
type CustomerInfo struct {
	Name    string
	Phone   string
	Email   string
	Address string
	Note    string
}

// OrderItemRequest references a catalog product and a quantity.
type OrderItemRequest struct {
	ProductID uuid.UUID
	Quantity  int
}

// OrderService handles order intake and listing.
type OrderService interface {
	CreateOrder(ctx context.Context, customer CustomerInfo, items []OrderItemRequest) (*model.Order, error)
	ListOrders(ctx context.Context, status model.OrderStatus, search string) ([]model.Order, error)
}

type orderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
}

// NewOrderService creates a new order service.
func NewOrderService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository) OrderService {
	return &orderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

// CreateOrder resolves each requested item against the live catalog, in
// input order, and snapshots name and price at this moment. Any
// unresolved product aborts the whole operation before anything is
// persisted. The total is the sum of price_at_purchase x quantity and is
// never recomputed afterwards.
func (s *orderService) CreateOrder(ctx context.Context, customer CustomerInfo, items []OrderItemRequest) (*model.Order, error) {
	orderItems := make([]model.OrderItem, 0, len(items))
	total := decimal.Zero

	for _, item := range items {
		product, err := s.productRepo.FindByID(ctx, item.ProductID)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, fmt.Errorf("%w: %s", errors.ErrProductNotFound, item.ProductID)
			}
			return nil, fmt.Errorf("resolve product %s: %w", item.ProductID, err)
		}

		orderItems = append(orderItems, model.OrderItem{
			ProductName:     product.Name,
			ProductID:       product.ID,
			Quantity:        item.Quantity,
			PriceAtPurchase: product.Price,
		})
		total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	order := &model.Order{
		CustomerName:    customer.Name,
		CustomerPhone:   customer.Phone,
		CustomerEmail:   customer.Email,
		CustomerAddress: customer.Address,
		CustomerNote:    customer.Note,
		Items:           orderItems,
		TotalAmount:     total,
		Status:          model.OrderStatusPending,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	return order, nil
}

// ListOrders returns orders, optionally filtered by status and by a
// case-insensitive substring match on customer name or phone.
func (s *orderService) ListOrders(ctx context.Context, status model.OrderStatus, search string) ([]model.Order, error) {
	if status != "" && !status.Valid() {
		return nil, fmt.Errorf("unknown order status %q", status)
	}

	filter := repository.OrderFilter{
		Status: status,
		Search: strings.ToLower(search),
	}

	orders, err := s.orderRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}
