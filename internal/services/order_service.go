package services

import (
	"fmt"
	"log"
	"time"

	"canteen/internal/models"
	"canteen/internal/repositories"
	"canteen/pkg/rabbitmq"

	"github.com/shopspring/decimal"
)

// OrderService is the order transaction manager: it validates the requested
// line items, computes the order total, and delegates the atomic write
// (order + items + stock decrements) to the repository.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
	mqClient    *rabbitmq.Client
}

// NewOrderService creates a new OrderService. mqClient may be nil, in which
// case event publication is skipped.
func NewOrderService(orderRepo repositories.OrderRepository, productRepo repositories.ProductRepository, mqClient *rabbitmq.Client) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		mqClient:    mqClient,
	}
}

// GetAllOrders retrieves all orders with customer names and items.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(id uint) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// PlaceOrder places an order for the given items. The caller supplies each
// item's unit price verbatim (historical pricing is preserved, the catalog is
// not consulted for prices). Items, stock decrements, and the order row are
// committed as one atomic unit; on any failure nothing is persisted.
//
// The returned order carries the store-assigned ID and the total, which is
// the sum of quantity×price over all items rounded to 2 decimal places.
func (s *OrderService) PlaceOrder(order models.Order) (*models.Order, error) {
	if len(order.Items) == 0 {
		return nil, fmt.Errorf("%w: an order needs at least one item", models.ErrValidation)
	}

	if order.Status == "" {
		order.Status = models.OrderStatusPending
	}
	if !order.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown order status %q", models.ErrValidation, order.Status)
	}

	total := decimal.Zero
	for i, item := range order.Items {
		if item.ProductID == 0 {
			return nil, fmt.Errorf("%w: item %d is missing a product id", models.ErrValidation, i)
		}
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("%w: item %d has non-positive quantity %d", models.ErrValidation, i, item.Quantity)
		}
		if item.Price.IsNegative() {
			return nil, fmt.Errorf("%w: item %d has negative price %s", models.ErrValidation, i, item.Price)
		}

		if _, err := s.productRepo.GetByID(item.ProductID); err != nil {
			return nil, err
		}

		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	order.Total = total.Round(2)
	order.OrderDate = time.Now()

	if err := s.orderRepo.Create(&order); err != nil {
		return nil, err
	}

	s.publish(rabbitmq.EventOrderCreated, map[string]interface{}{
		"order_id": order.OrderID,
		"total":    order.Total.StringFixed(2),
		"status":   order.Status,
	})

	return &order, nil
}

// UpdateOrderStatus updates the status of an existing order. This is the
// external path for cancelling an order; completions normally happen through
// payment recording.
func (s *OrderService) UpdateOrderStatus(id uint, status models.OrderStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: unknown order status %q", models.ErrValidation, status)
	}
	if err := s.orderRepo.UpdateStatus(id, status); err != nil {
		return err
	}
	return nil
}

// publish sends an event to the message queue, best effort. Placement has
// already committed by the time this runs, so failures only get logged.
func (s *OrderService) publish(eventType string, payload map[string]interface{}) {
	if s.mqClient == nil {
		return
	}
	if err := s.mqClient.PublishEvent(eventType, payload); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", eventType, err)
	}
}
