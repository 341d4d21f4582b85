package services

import (
	"errors"
	"time"

	"backend/entity"
	"backend/repository"

	"gorm.io/gorm"
)

type PromoService struct {
	promoRepo *repository.PromoRepository
}

func NewPromoService(promoRepo *repository.PromoRepository) *PromoService {
	return &PromoService{promoRepo: promoRepo}
}

// Validate checks a code against an order amount and returns the discount it
// grants. The discount never exceeds the amount itself.
func (s *PromoService) Validate(code string, amount float64) (*entity.PromoCode, float64, error) {
	promo, err := s.promoRepo.FindActiveByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, ErrPromoInvalid
		}
		return nil, 0, err
	}

	if promo.ExpiresAt != nil && promo.ExpiresAt.Before(time.Now()) {
		return nil, 0, ErrPromoExpired
	}
	if promo.MaxUses != -1 && promo.CurrentUses >= promo.MaxUses {
		return nil, 0, ErrPromoExhausted
	}
	if amount < promo.MinOrderAmount {
		return nil, 0, ErrPromoMinOrder
	}

	var discount float64
	if promo.DiscountType == entity.DiscountPercentage {
		discount = amount * promo.DiscountValue / 100
	} else {
		discount = promo.DiscountValue
	}
	if discount > amount {
		discount = amount
	}
	return promo, discount, nil
}

func (s *PromoService) List() ([]entity.PromoCode, error) {
	return s.promoRepo.List()
}

func (s *PromoService) Create(promo *entity.PromoCode) error {
	count, err := s.promoRepo.CountByCode(promo.Code)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCodeTaken
	}
	return s.promoRepo.Create(promo)
}

func (s *PromoService) Toggle(id uint) (*entity.PromoCode, error) {
	promo, err := s.promoRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	promo.Active = !promo.Active
	if err := s.promoRepo.Save(promo); err != nil {
		return nil, err
	}
	return promo, nil
}
