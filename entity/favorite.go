package entity

import (
	"gorm.io/gorm"
)

type Favorite struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex:idx_fav_user_dish" json:"userId"`
	User   User `json:"-"`

	DishID uint `gorm:"uniqueIndex:idx_fav_user_dish" json:"dishId"`
	Dish   Dish `json:"dish"`
}
