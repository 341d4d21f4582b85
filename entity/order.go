package entity

import (
	"gorm.io/gorm"
)

// Order is the immutable checkout snapshot. Total already has Discount taken
// off; the items keep the undiscounted unit prices.
type Order struct {
	gorm.Model
	UserID uint `json:"userId"`
	User   User `json:"-"`

	Total     float64 `gorm:"not null" json:"total"`
	Discount  float64 `json:"discount"`
	PromoCode string  `json:"promoCode,omitempty"`
	Status    string  `gorm:"default:pending" json:"status"`

	Items []OrderItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}
