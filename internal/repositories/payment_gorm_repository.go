package repositories

import (
	"fmt"

	"canteen/internal/models"

	"gorm.io/gorm"
)

// GORMPaymentRepository is a GORM implementation of PaymentRepository.
type GORMPaymentRepository struct {
	db *gorm.DB
}

// NewGORMPaymentRepository creates a new instance of GORMPaymentRepository.
func NewGORMPaymentRepository(db *gorm.DB) *GORMPaymentRepository {
	return &GORMPaymentRepository{
		db: db,
	}
}

// GetAll retrieves payments newest-first with the order's customer joined in.
func (r *GORMPaymentRepository) GetAll(status models.PaymentStatus) ([]models.Payment, error) {
	var payments []models.Payment
	query := r.db.Model(&models.Payment{}).
		Select("payments.*, orders.customer_id AS customer_id").
		Joins("LEFT JOIN orders ON orders.order_id = payments.order_id").
		Order("payments.payment_date DESC")
	if status != "" {
		query = query.Where("payments.status = ?", status)
	}
	if err := query.Find(&payments).Error; err != nil {
		return nil, fmt.Errorf("failed to get all payments: %w", err)
	}
	return payments, nil
}

// Create inserts the payment and, for a successful payment, moves the order
// to Completed in the same atomic unit. The transition is unconditional:
// whatever state the order was in before (Cancelled included), a successful
// payment marks it Completed.
func (r *GORMPaymentRepository) Create(payment *models.Payment, completeOrder bool) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(payment).Error; err != nil {
			return err
		}
		if completeOrder {
			res := tx.Model(&models.Order{}).
				Where("order_id = ?", payment.OrderID).
				Update("status", models.OrderStatusCompleted)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("%w: id %d", models.ErrOrderNotFound, payment.OrderID)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}
	return nil
}
