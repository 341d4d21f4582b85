package entity

import (
	"gorm.io/gorm"
)

type Review struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex:idx_review_user_dish" json:"userId"`
	User   User `json:"user"`

	DishID uint `gorm:"uniqueIndex:idx_review_user_dish" json:"dishId"`
	Dish   Dish `json:"-"`

	Rating  int    `gorm:"not null" json:"rating"`
	Comment string `json:"comment"`
}
