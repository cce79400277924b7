package services

import (
	"fmt"
	"log"
	"time"

	"canteen/internal/models"
	"canteen/internal/repositories"
	"canteen/pkg/rabbitmq"

	"github.com/google/uuid"
)

// PaymentService records payments against orders. The payment amount is
// always the order's stored total; callers cannot supply their own amount, so
// a payment can never disagree with the order it settles.
type PaymentService struct {
	paymentRepo repositories.PaymentRepository
	orderRepo   repositories.OrderRepository
	mqClient    *rabbitmq.Client
}

// NewPaymentService creates a new PaymentService. mqClient may be nil, in
// which case event publication is skipped.
func NewPaymentService(paymentRepo repositories.PaymentRepository, orderRepo repositories.OrderRepository, mqClient *rabbitmq.Client) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		orderRepo:   orderRepo,
		mqClient:    mqClient,
	}
}

// GetAllPayments retrieves payments, optionally filtered by status.
func (s *PaymentService) GetAllPayments(status models.PaymentStatus) ([]models.Payment, error) {
	if status != "" && !status.Valid() {
		return nil, fmt.Errorf("%w: unknown payment status %q", models.ErrValidation, status)
	}
	return s.paymentRepo.GetAll(status)
}

// RecordPayment records a payment against the referenced order. Status
// defaults to Success; a successful payment moves the order to Completed in
// the same commit as the payment row, whatever the order's prior status was
// (a Cancelled order is also marked Completed; that mirrors the legacy
// behavior and is deliberately not guarded). paidAt, when nil, defaults to
// the current time. Nothing stops a second payment against the same order.
func (s *PaymentService) RecordPayment(orderID uint, method models.PaymentMethod, status models.PaymentStatus, paidAt *time.Time) (*models.Payment, error) {
	if status == "" {
		status = models.PaymentStatusSuccess
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown payment status %q", models.ErrValidation, status)
	}
	if method != "" && !method.Valid() {
		return nil, fmt.Errorf("%w: unknown payment method %q", models.ErrValidation, method)
	}

	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}

	paymentDate := time.Now()
	if paidAt != nil {
		paymentDate = *paidAt
	}

	payment := models.Payment{
		OrderID:     orderID,
		Amount:      order.Total,
		PaymentDate: paymentDate,
		Method:      method,
		Status:      status,
		Reference:   uuid.New().String(),
	}

	completeOrder := status == models.PaymentStatusSuccess
	if err := s.paymentRepo.Create(&payment, completeOrder); err != nil {
		return nil, err
	}

	s.publish(rabbitmq.EventPaymentRecorded, map[string]interface{}{
		"payment_id": payment.PaymentID,
		"order_id":   payment.OrderID,
		"amount":     payment.Amount.StringFixed(2),
		"status":     payment.Status,
		"reference":  payment.Reference,
	})

	return &payment, nil
}

// publish sends an event to the message queue, best effort.
func (s *PaymentService) publish(eventType string, payload map[string]interface{}) {
	if s.mqClient == nil {
		return
	}
	if err := s.mqClient.PublishEvent(eventType, payload); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", eventType, err)
	}
}
