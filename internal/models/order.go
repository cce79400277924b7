package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the closed set of order states. Pending is the initial
// state; Completed is reached only through a successful payment; Cancelled is
// terminal and set externally.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusCompleted OrderStatus = "Completed"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

// Valid reports whether s is one of the known order states.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// Order is a customer order. Total equals the sum of its items'
// quantity×price at commit time, rounded to 2 decimal places.
type Order struct {
	OrderID    uint            `json:"order_id" gorm:"primaryKey;column:order_id"`
	CustomerID *uint           `json:"customer_id" gorm:"column:customer_id"`
	OrderDate  time.Time       `json:"order_date"`
	Total      decimal.Decimal `json:"total" gorm:"type:decimal(10,2)"`
	Status     OrderStatus     `json:"status" gorm:"type:varchar(20)"`
	Items      []OrderItem     `json:"items" gorm:"foreignKey:OrderID;references:OrderID"`

	// CustomerName is filled by the list projection (LEFT JOIN customers).
	CustomerName string `json:"customer_name,omitempty" gorm:"->;-:migration"`
}

func (Order) TableName() string { return "orders" }

// OrderItem is one line of an order. Price is the unit price captured when
// the order was placed; it does not follow later catalog price changes.
type OrderItem struct {
	OrderItemID uint            `json:"order_item_id" gorm:"primaryKey;column:order_item_id"`
	OrderID     uint            `json:"order_id" gorm:"column:order_id"`
	ProductID   uint            `json:"product_id" gorm:"column:product_id"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2)"`

	// ProductName is filled by the list projection (LEFT JOIN products).
	ProductName string `json:"product_name,omitempty" gorm:"->;-:migration"`
}

func (OrderItem) TableName() string { return "orderitems" }
