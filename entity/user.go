package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name     string `json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Address  string `json:"address"`
	Password string `json:"-"`
	Role     string `gorm:"not null;default:customer" json:"role"`

	CartItems []CartItem `json:"-"`
	Orders    []Order    `json:"-"`
	Favorites []Favorite `json:"-"`
	Reviews   []Review   `json:"-"`
}
