package services

import (
	"fmt"

	"canteen/internal/models"
	"canteen/internal/repositories"
)

// ProductService handles business logic related to products.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// GetAllProducts retrieves all products. A non-nil belowStock filters to
// products running low (stock strictly below the value).
func (s *ProductService) GetAllProducts(belowStock *int) ([]models.Product, error) {
	return s.repo.GetAll(belowStock)
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id uint) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct creates a new product.
func (s *ProductService) CreateProduct(product *models.Product) error {
	if product.Price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", models.ErrValidation)
	}
	if product.Stock < 0 {
		return fmt.Errorf("%w: stock must not be negative", models.ErrValidation)
	}
	return s.repo.Create(product)
}

// UpdateProduct updates an existing product.
func (s *ProductService) UpdateProduct(product *models.Product) error {
	if product.Price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", models.ErrValidation)
	}
	if product.Stock < 0 {
		return fmt.Errorf("%w: stock must not be negative", models.ErrValidation)
	}
	return s.repo.Update(product)
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(id uint) error {
	return s.repo.Delete(id)
}
