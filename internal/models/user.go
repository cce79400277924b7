package models

import "gorm.io/gorm"

// User is a staff account. Staff log in to manage the catalog; customers do
// not have accounts.
type User struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Username   string `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=3,max=100"`
	Email      string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password   string `gorm:"type:varchar(255)" validate:"required,min=6"` // bcrypt hash, never serialized
	gorm.Model        // CreatedAt, UpdatedAt, DeletedAt
}
