package entity

import (
	"gorm.io/gorm"
)

type Dish struct {
	gorm.Model
	Name     string  `gorm:"not null" json:"name"`
	Price    float64 `gorm:"not null" json:"price"`
	Category string  `json:"category"`
	Image    string  `json:"image"`

	// review aggregates, maintained inside the review transaction
	ReviewCount   int     `json:"reviewCount"`
	AverageRating float64 `json:"averageRating"`

	CartItems []CartItem `json:"-"`
	Favorites []Favorite `json:"-"`
	Reviews   []Review   `json:"-"`
}
