package models

// Category groups products on the canteen menu (e.g. "Chinese", "Beverages").
type Category struct {
	CategoryID  uint   `json:"category_id" gorm:"primaryKey;column:category_id"`
	Name        string `json:"category_name" gorm:"column:category_name;type:varchar(50)" validate:"required,min=2,max=50"`
	Description string `json:"description" gorm:"type:text" validate:"omitempty,max=500"`
}

// TableName keeps the table name aligned with the canteen schema.
func (Category) TableName() string { return "categories" }
