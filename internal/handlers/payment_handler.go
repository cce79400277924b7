package handlers

import (
	"log"
	"time"

	"canteen/internal/models"
	"canteen/internal/services"

	"github.com/gofiber/fiber/v2"
)

// PaymentHandler handles HTTP requests for payments.
type PaymentHandler struct {
	service *services.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(service *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		service: service,
	}
}

// RegisterRoutes registers the payment routes with the Fiber app.
func (h *PaymentHandler) RegisterRoutes(router fiber.Router) {
	paymentRoutes := router.Group("/payments")
	paymentRoutes.Get("/", h.HandleGetPayments)
	paymentRoutes.Post("/", h.HandleCreatePayment)
}

// CreatePaymentRequest is the request body for recording a payment. There is
// no amount field: the payment amount is always the order's total, any amount
// a caller sends is ignored.
type CreatePaymentRequest struct {
	OrderID       uint       `json:"order_id"`
	PaymentMethod string     `json:"payment_method"`
	Status        string     `json:"status"`
	PaymentDate   *time.Time `json:"payment_date"`
}

// HandleGetPayments retrieves payments, optionally filtered by ?status=.
func (h *PaymentHandler) HandleGetPayments(c *fiber.Ctx) error {
	status := models.PaymentStatus(c.Query("status"))
	payments, err := h.service.GetAllPayments(status)
	if err != nil {
		log.Printf("Error getting payments: %v", err)
		return c.Status(statusForWrite(err)).JSON(fiber.Map{
			"message": "Could not retrieve payments",
			"error":   err.Error(),
		})
	}
	return c.JSON(payments)
}

// HandleCreatePayment records a payment against an order. A successful
// payment marks the order Completed in the same commit.
func (h *PaymentHandler) HandleCreatePayment(c *fiber.Ctx) error {
	var req CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing payment request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if req.OrderID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "order_id is required for a payment.",
		})
	}

	payment, err := h.service.RecordPayment(
		req.OrderID,
		models.PaymentMethod(req.PaymentMethod),
		models.PaymentStatus(req.Status),
		req.PaymentDate,
	)
	if err != nil {
		log.Printf("Error recording payment for order %d: %v", req.OrderID, err)
		return c.Status(statusForWrite(err)).JSON(fiber.Map{
			"message": "Could not record payment",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"payment_id": payment.PaymentID,
		"reference":  payment.Reference,
	})
}
