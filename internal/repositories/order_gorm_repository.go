package repositories

import (
	"errors"
	"fmt"

	"canteen/internal/models"

	"gorm.io/gorm"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// joinProductNames decorates an item preload with the product name.
func joinProductNames(db *gorm.DB) *gorm.DB {
	return db.
		Select("orderitems.*, COALESCE(products.product_name, '') AS product_name").
		Joins("LEFT JOIN products ON products.product_id = orderitems.product_id")
}

// GetAll retrieves all orders newest-first with customer names and items.
func (r *GORMOrderRepository) GetAll() ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Model(&models.Order{}).
		Select("orders.*, COALESCE(customers.first_name || ' ' || customers.last_name, '') AS customer_name").
		Joins("LEFT JOIN customers ON customers.customer_id = orders.customer_id").
		Order("orders.order_date DESC").
		Preload("Items", joinProductNames).
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all orders: %w", err)
	}
	return orders, nil
}

// GetByID retrieves a single order with its items by its ID.
func (r *GORMOrderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Items", joinProductNames).
		First(&order, "order_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", models.ErrOrderNotFound, id)
		}
		return nil, fmt.Errorf("failed to get order by ID %d: %w", id, err)
	}
	return &order, nil
}

// Create persists the order, its items, and the stock effects atomically.
// Stock decrements are clamped at zero: ordering more than is available
// still succeeds and leaves the product at zero stock. Two concurrent orders
// on the same product can therefore jointly report more sales than there was
// stock; isolation is whatever the underlying store provides.
func (r *GORMOrderRepository) Create(order *models.Order) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		// Creates the orderitems rows through the association in one go.
		if err := tx.Create(order).Error; err != nil {
			return err
		}

		for _, item := range order.Items {
			res := tx.Model(&models.Product{}).
				Where("product_id = ?", item.ProductID).
				Update("stock", gorm.Expr(
					"CASE WHEN stock - ? < 0 THEN 0 ELSE stock - ? END",
					item.Quantity, item.Quantity,
				))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("%w: id %d", models.ErrProductNotFound, item.ProductID)
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			return err
		}
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// UpdateStatus updates the status of an order.
func (r *GORMOrderRepository) UpdateStatus(id uint, status models.OrderStatus) error {
	res := r.db.Model(&models.Order{}).
		Where("order_id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("failed to update order status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: id %d", models.ErrOrderNotFound, id)
	}
	return nil
}
