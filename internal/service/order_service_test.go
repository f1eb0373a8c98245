package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"storefront/internal/errors"
	"storefront/internal/model"
	"storefront/internal/repository"
)

func TestOrderService_CreateOrder(t *testing.T) {
	signID := uuid.New()
	standeeID := uuid.New()

	sign := &model.Product{ID: signID, Name: "Neon Sign", Price: decimal.NewFromInt(100)}
	standee := &model.Product{ID: standeeID, Name: "Standee", Price: decimal.NewFromInt(50)}

	customer := CustomerInfo{
		Name:    "Nguyen Van A",
		Phone:   "0901234567",
		Email:   "a@example.com",
		Address: "1 Le Loi",
	}

	t.Run("total is the sum of snapshotted prices in input order", func(t *testing.T) {
		mockProducts := new(MockProductRepository)
		mockOrders := new(MockOrderRepository)

		mockProducts.On("FindByID", mock.Anything, signID).Return(sign, nil)
		mockProducts.On("FindByID", mock.Anything, standeeID).Return(standee, nil)
		mockOrders.On("Create", mock.Anything, mock.AnythingOfType("*model.Order")).Return(nil)

		service := NewOrderService(mockOrders, mockProducts)
		order, err := service.CreateOrder(context.Background(), customer, []OrderItemRequest{
			{ProductID: signID, Quantity: 2},
			{ProductID: standeeID, Quantity: 3},
		})

		assert.NoError(t, err)
		assert.True(t, decimal.NewFromInt(350).Equal(order.TotalAmount), "expected 350, got %s", order.TotalAmount)
		assert.Equal(t, model.OrderStatusPending, order.Status)
		assert.Equal(t, "Nguyen Van A", order.CustomerName)

		assert.Len(t, order.Items, 2)
		assert.Equal(t, "Neon Sign", order.Items[0].ProductName)
		assert.Equal(t, 2, order.Items[0].Quantity)
		assert.True(t, decimal.NewFromInt(100).Equal(order.Items[0].PriceAtPurchase))
		assert.Equal(t, "Standee", order.Items[1].ProductName)
		assert.Equal(t, 3, order.Items[1].Quantity)
		assert.True(t, decimal.NewFromInt(50).Equal(order.Items[1].PriceAtPurchase))

		mockOrders.AssertExpectations(t)
	})

	t.Run("missing product aborts without persisting anything", func(t *testing.T) {
		mockProducts := new(MockProductRepository)
		mockOrders := new(MockOrderRepository)

		missingID := uuid.New()
		mockProducts.On("FindByID", mock.Anything, signID).Return(sign, nil)
		mockProducts.On("FindByID", mock.Anything, missingID).Return(nil, gorm.ErrRecordNotFound)

		service := NewOrderService(mockOrders, mockProducts)
		order, err := service.CreateOrder(context.Background(), customer, []OrderItemRequest{
			{ProductID: signID, Quantity: 1},
			{ProductID: missingID, Quantity: 1},
		})

		assert.ErrorIs(t, err, errors.ErrProductNotFound)
		assert.Nil(t, order)
		mockOrders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("empty item list yields a zero-total order", func(t *testing.T) {
		mockProducts := new(MockProductRepository)
		mockOrders := new(MockOrderRepository)
		mockOrders.On("Create", mock.Anything, mock.AnythingOfType("*model.Order")).Return(nil)

		service := NewOrderService(mockOrders, mockProducts)
		order, err := service.CreateOrder(context.Background(), customer, nil)

		assert.NoError(t, err)
		assert.True(t, decimal.Zero.Equal(order.TotalAmount))
		assert.Empty(t, order.Items)
	})
}

func TestOrderService_ListOrders(t *testing.T) {
	matching := model.Order{CustomerName: "Nguyen Van A", CustomerPhone: "0901234567"}

	t.Run("search term is lowercased before filtering", func(t *testing.T) {
		mockProducts := new(MockProductRepository)
		mockOrders := new(MockOrderRepository)

		mockOrders.On("List", mock.Anything, repository.OrderFilter{Search: "van a"}).
			Return([]model.Order{matching}, nil)

		service := NewOrderService(mockOrders, mockProducts)
		orders, err := service.ListOrders(context.Background(), "", "Van A")

		assert.NoError(t, err)
		assert.Len(t, orders, 1)
		assert.Equal(t, "Nguyen Van A", orders[0].CustomerName)
		mockOrders.AssertExpectations(t)
	})

	t.Run("status filter is passed through", func(t *testing.T) {
		mockProducts := new(MockProductRepository)
		mockOrders := new(MockOrderRepository)

		mockOrders.On("List", mock.Anything, repository.OrderFilter{Status: model.OrderStatusPending}).
			Return([]model.Order{matching}, nil)

		service := NewOrderService(mockOrders, mockProducts)
		orders, err := service.ListOrders(context.Background(), model.OrderStatusPending, "")

		assert.NoError(t, err)
		assert.Len(t, orders, 1)
		mockOrders.AssertExpectations(t)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		mockProducts := new(MockProductRepository)
		mockOrders := new(MockOrderRepository)

		service := NewOrderService(mockOrders, mockProducts)
		_, err := service.ListOrders(context.Background(), "shipped-to-mars", "")

		assert.Error(t, err)
		mockOrders.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	})
}
