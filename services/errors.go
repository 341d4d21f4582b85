package services

import "errors"

// Sentinel errors returned by the service layer. Controllers map these to
// HTTP statuses with errors.Is; anything else is a 500.
var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrInvalidQuantity    = errors.New("quantity must be at least 1")
	ErrAlreadyReviewed    = errors.New("dish already reviewed")
	ErrPromoInvalid       = errors.New("invalid promo code")
	ErrPromoExpired       = errors.New("promo code has expired")
	ErrPromoExhausted     = errors.New("promo code usage limit reached")
	ErrPromoMinOrder      = errors.New("order amount below promo minimum")
	ErrCodeTaken          = errors.New("promo code already exists")
)
