package repositories

import (
	"canteen/internal/models"
)

// PaymentRepository defines the interface for payment data access.
type PaymentRepository interface {
	// GetAll lists payments newest-first with the paying order's customer
	// joined in. A non-empty status filters on it.
	GetAll(status models.PaymentStatus) ([]models.Payment, error)
	// Create inserts the payment and, when completeOrder is set, moves the
	// referenced order to Completed in the same atomic unit.
	Create(payment *models.Payment, completeOrder bool) error
}
