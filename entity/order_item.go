package entity

import (
	"gorm.io/gorm"
)

// OrderItem copies the dish name and price at checkout time. Later catalog
// edits must not change historical orders, so these stay denormalized.
type OrderItem struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	DishID    uint    `json:"dishId"`
	DishName  string  `gorm:"not null" json:"dishName"`
	DishPrice float64 `gorm:"not null" json:"dishPrice"`
	Quantity  int     `gorm:"not null" json:"quantity"`
}
