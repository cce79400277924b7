package services_test

import (
	"fmt"
	"testing"

	"canteen/internal/models"
	"canteen/internal/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockOrderRepository is a mock implementation of repositories.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) GetAll() ([]models.Order, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByID(id uint) (*models.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) Create(order *models.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateStatus(id uint, status models.OrderStatus) error {
	args := m.Called(id, status)
	return args.Error(0)
}

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll(belowStock *int) ([]models.Product, error) {
	args := m.Called(belowStock)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(id uint) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestOrderService_PlaceOrder_ComputesTotal(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	service := services.NewOrderService(orderRepo, productRepo, nil)

	productRepo.On("GetByID", uint(1)).Return(&models.Product{ProductID: 1, Name: "Chow Mein", Stock: 30}, nil).Once()
	productRepo.On("GetByID", uint(5)).Return(&models.Product{ProductID: 5, Name: "Coke", Stock: 100}, nil).Once()
	orderRepo.On("Create", mock.AnythingOfType("*models.Order")).Return(nil).Once()

	order, err := service.PlaceOrder(models.Order{
		Items: []models.OrderItem{
			{ProductID: 1, Quantity: 2, Price: price("80.00")},
			{ProductID: 5, Quantity: 1, Price: price("30.00")},
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, "190.00", order.Total.StringFixed(2))
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.False(t, order.OrderDate.IsZero())
	// Items pass through verbatim; the catalog price is never substituted.
	assert.Len(t, order.Items, 2)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Equal(t, "80.00", order.Items[0].Price.StringFixed(2))
	assert.Equal(t, 1, order.Items[1].Quantity)
	assert.Equal(t, "30.00", order.Items[1].Price.StringFixed(2))
	orderRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
}

func TestOrderService_PlaceOrder_RoundsTotalToTwoPlaces(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	service := services.NewOrderService(orderRepo, productRepo, nil)

	productRepo.On("GetByID", uint(3)).Return(&models.Product{ProductID: 3}, nil).Once()
	orderRepo.On("Create", mock.AnythingOfType("*models.Order")).Return(nil).Once()

	// 3 × 9.995 = 29.985, rounds half away from zero to 29.99.
	order, err := service.PlaceOrder(models.Order{
		Items: []models.OrderItem{
			{ProductID: 3, Quantity: 3, Price: price("9.995")},
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, "29.99", order.Total.StringFixed(2))
	// The item keeps its unrounded unit price.
	assert.Equal(t, "9.995", order.Items[0].Price.String())
}

func TestOrderService_PlaceOrder_EmptyItems(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	service := services.NewOrderService(orderRepo, productRepo, nil)

	order, err := service.PlaceOrder(models.Order{})

	assert.Nil(t, order)
	assert.ErrorIs(t, err, models.ErrValidation)
	orderRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestOrderService_PlaceOrder_InvalidItems(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	service := services.NewOrderService(orderRepo, productRepo, nil)

	// Zero quantity
	_, err := service.PlaceOrder(models.Order{
		Items: []models.OrderItem{{ProductID: 1, Quantity: 0, Price: price("80.00")}},
	})
	assert.ErrorIs(t, err, models.ErrValidation)

	// Negative price
	_, err = service.PlaceOrder(models.Order{
		Items: []models.OrderItem{{ProductID: 1, Quantity: 1, Price: price("-1.00")}},
	})
	assert.ErrorIs(t, err, models.ErrValidation)

	// Missing product id
	_, err = service.PlaceOrder(models.Order{
		Items: []models.OrderItem{{Quantity: 1, Price: price("1.00")}},
	})
	assert.ErrorIs(t, err, models.ErrValidation)

	// Unknown status
	_, err = service.PlaceOrder(models.Order{
		Status: "Shipped",
		Items:  []models.OrderItem{{ProductID: 1, Quantity: 1, Price: price("1.00")}},
	})
	assert.ErrorIs(t, err, models.ErrValidation)

	orderRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestOrderService_PlaceOrder_UnknownProduct(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	service := services.NewOrderService(orderRepo, productRepo, nil)

	productRepo.On("GetByID", uint(99)).
		Return(nil, fmt.Errorf("%w: id 99", models.ErrProductNotFound)).Once()

	order, err := service.PlaceOrder(models.Order{
		Items: []models.OrderItem{{ProductID: 99, Quantity: 1, Price: price("10.00")}},
	})

	assert.Nil(t, order)
	assert.ErrorIs(t, err, models.ErrProductNotFound)
	orderRepo.AssertNotCalled(t, "Create", mock.Anything)
	productRepo.AssertExpectations(t)
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	productRepo := new(MockProductRepository)
	service := services.NewOrderService(orderRepo, productRepo, nil)

	// Valid transition passes through to the repository.
	orderRepo.On("UpdateStatus", uint(1), models.OrderStatusCancelled).Return(nil).Once()
	err := service.UpdateOrderStatus(1, models.OrderStatusCancelled)
	assert.NoError(t, err)
	orderRepo.AssertExpectations(t)

	// Unknown status is rejected before the repository is touched.
	err = service.UpdateOrderStatus(1, "Archived")
	assert.ErrorIs(t, err, models.ErrValidation)
	orderRepo.AssertNumberOfCalls(t, "UpdateStatus", 1)
}
