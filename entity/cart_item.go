package entity

import (
	"gorm.io/gorm"
)

// CartItem is one line of a user's pending selection. At most one row exists
// per (user, dish); repeated adds bump Quantity.
type CartItem struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex:idx_cart_user_dish" json:"userId"`
	User   User `json:"-"`

	DishID uint `gorm:"uniqueIndex:idx_cart_user_dish" json:"dishId"`
	Dish   Dish `json:"dish"`

	Quantity int `gorm:"not null;default:1" json:"quantity"`
}
