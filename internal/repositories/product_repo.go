package repositories

import (
	"canteen/internal/models"
)

// ProductRepository defines the interface for product data access. Stock is
// never mutated through Update by the order flow; order placement adjusts it
// inside its own transaction (see OrderRepository.Create).
type ProductRepository interface {
	// GetAll lists products with their category name joined in. A non-nil
	// belowStock filters to products with stock strictly below the value.
	GetAll(belowStock *int) ([]models.Product, error)
	GetByID(id uint) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id uint) error
}
