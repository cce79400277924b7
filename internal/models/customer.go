package models

import "time"

// Customer is a canteen customer. CreatedAt is set once on insert and never
// updated afterwards.
type Customer struct {
	CustomerID uint      `json:"customer_id" gorm:"primaryKey;column:customer_id"`
	FirstName  string    `json:"first_name" gorm:"type:varchar(50)" validate:"required,min=1,max=50"`
	LastName   string    `json:"last_name" gorm:"type:varchar(50)" validate:"omitempty,max=50"`
	Email      string    `json:"email" gorm:"type:varchar(100)" validate:"omitempty,email"`
	Phone      string    `json:"phone" gorm:"type:varchar(15)" validate:"omitempty,max=15"`
	Address    string    `json:"address" gorm:"type:text" validate:"omitempty,max=500"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime;<-:create"`
}

func (Customer) TableName() string { return "customers" }
