package repositories

import (
	"canteen/internal/models"
)

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	// GetAll lists orders newest-first with customer names and items
	// (including product names) joined in.
	GetAll() ([]models.Order, error)
	GetByID(id uint) (*models.Order, error)
	// Create persists the order, its items, and the clamped stock decrement
	// for every item as a single atomic unit. A missing product aborts the
	// whole write with models.ErrProductNotFound and nothing is persisted.
	Create(order *models.Order) error
	UpdateStatus(id uint, status models.OrderStatus) error
}
