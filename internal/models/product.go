package models

import "github.com/shopspring/decimal"

// Product is a menu item. Stock is adjusted only through order placement,
// which clamps decrements at zero; it is never negative after a commit.
type Product struct {
	ProductID   uint            `json:"product_id" gorm:"primaryKey;column:product_id"`
	Name        string          `json:"product_name" gorm:"column:product_name;type:varchar(100)" validate:"required,min=2,max=100"`
	Description string          `json:"description" gorm:"type:text" validate:"omitempty,max=500"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2)"`
	Stock       int             `json:"stock" validate:"gte=0"`
	CategoryID  *uint           `json:"category_id" gorm:"column:category_id"`

	// CategoryName is filled by the list projection (LEFT JOIN categories);
	// it is not a column of the products table.
	CategoryName string `json:"category_name,omitempty" gorm:"->;-:migration"`
}

func (Product) TableName() string { return "products" }
