package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the closed set of payment states.
type PaymentStatus string

const (
	PaymentStatusSuccess PaymentStatus = "Success"
	PaymentStatusFailed  PaymentStatus = "Failed"
	PaymentStatusPending PaymentStatus = "Pending"
)

// Valid reports whether s is one of the known payment states.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusSuccess, PaymentStatusFailed, PaymentStatusPending:
		return true
	}
	return false
}

// PaymentMethod is the closed set of accepted payment methods. An empty
// method means the caller left it unspecified.
type PaymentMethod string

const (
	PaymentMethodCash           PaymentMethod = "Cash"
	PaymentMethodCard           PaymentMethod = "Card"
	PaymentMethodUPI            PaymentMethod = "UPI"
	PaymentMethodCashOnDelivery PaymentMethod = "Cash on Delivery"
)

// Valid reports whether m is one of the accepted payment methods.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodUPI, PaymentMethodCashOnDelivery:
		return true
	}
	return false
}

// Payment records money taken against an order. Amount always equals the
// order's total at recording time; callers cannot supply their own amount.
// Several payments may target the same order.
type Payment struct {
	PaymentID   uint            `json:"payment_id" gorm:"primaryKey;column:payment_id"`
	OrderID     uint            `json:"order_id" gorm:"column:order_id"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:decimal(10,2)"`
	PaymentDate time.Time       `json:"payment_date"`
	Method      PaymentMethod   `json:"payment_method" gorm:"column:payment_method;type:varchar(20)"`
	Status      PaymentStatus   `json:"status" gorm:"type:varchar(20)"`
	Reference   string          `json:"reference" gorm:"type:varchar(36)"`

	// CustomerID is filled by the list projection (LEFT JOIN orders).
	CustomerID *uint `json:"customer_id,omitempty" gorm:"->;-:migration"`
}

func (Payment) TableName() string { return "payments" }
