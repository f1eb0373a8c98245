package repository

import (
	"context"

	"gorm.io/gorm"

	"storefront/internal/model"
)

// OrderFilter narrows order listings. Status is matched exactly; Search
// is a case-insensitive substring match on customer name or phone.
type OrderFilter struct {
	Status model.OrderStatus
	Search string
}

// OrderRepository defines order persistence operations.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	List(ctx context.Context, filter OrderFilter) ([]model.Order, error)
}

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository builds a GORM-backed repository.
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// Create persists the order and its items in one transaction, so a
// failure leaves no partial order behind.
func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(order).Error
	})
}

func (r *orderRepository) List(ctx context.Context, filter OrderFilter) ([]model.Order, error) {
	query := r.db.WithContext(ctx).Model(&model.Order{}).Preload("Items")

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"LOWER(customer_name) LIKE ? OR LOWER(customer_phone) LIKE ?",
			pattern, pattern,
		)
	}

	var orders []model.Order
	if err := query.Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}
