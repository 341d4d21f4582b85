package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	DiscountPercentage = "percentage"
	DiscountFixed      = "fixed"
)

type PromoCode struct {
	gorm.Model
	Code           string     `gorm:"uniqueIndex;not null" json:"code"`
	DiscountType   string     `gorm:"default:percentage" json:"discountType"`
	DiscountValue  float64    `gorm:"not null" json:"discountValue"`
	MinOrderAmount float64    `json:"minOrderAmount"`
	MaxUses        int        `gorm:"default:-1" json:"maxUses"` // -1 = unlimited
	CurrentUses    int        `json:"currentUses"`
	Active         bool       `gorm:"default:true" json:"active"`
	ExpiresAt      *time.Time `json:"expiresAt"`
}
