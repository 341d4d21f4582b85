package services

import (
	"testing"
	"time"

	"backend/entity"
	"backend/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newPromoService(db *gorm.DB) *PromoService {
	return NewPromoService(repository.NewPromoRepository(db))
}

func TestValidatePromoDiscounts(t *testing.T) {
	db := newTestDB(t)
	svc := newPromoService(db)

	require.NoError(t, svc.Create(&entity.PromoCode{Code: "TEN", DiscountType: entity.DiscountPercentage, DiscountValue: 10, MaxUses: -1, Active: true}))
	require.NoError(t, svc.Create(&entity.PromoCode{Code: "FLAT500", DiscountType: entity.DiscountFixed, DiscountValue: 500, MaxUses: -1, Active: true}))

	_, discount, err := svc.Validate("TEN", 2000)
	require.NoError(t, err)
	require.Equal(t, 200.0, discount)

	_, discount, err = svc.Validate("FLAT500", 2000)
	require.NoError(t, err)
	require.Equal(t, 500.0, discount)

	// fixed discount is capped at the order amount
	_, discount, err = svc.Validate("FLAT500", 300)
	require.NoError(t, err)
	require.Equal(t, 300.0, discount)
}

func TestValidatePromoRejections(t *testing.T) {
	db := newTestDB(t)
	svc := newPromoService(db)

	past := time.Now().Add(-time.Hour)
	require.NoError(t, svc.Create(&entity.PromoCode{Code: "OLD", DiscountValue: 10, MaxUses: -1, Active: true, ExpiresAt: &past}))
	require.NoError(t, svc.Create(&entity.PromoCode{Code: "USED", DiscountValue: 10, MaxUses: 1, CurrentUses: 1, Active: true}))
	require.NoError(t, svc.Create(&entity.PromoCode{Code: "BIG", DiscountValue: 10, MaxUses: -1, MinOrderAmount: 5000, Active: true}))

	_, _, err := svc.Validate("MISSING", 1000)
	require.ErrorIs(t, err, ErrPromoInvalid)

	_, _, err = svc.Validate("OLD", 1000)
	require.ErrorIs(t, err, ErrPromoExpired)

	_, _, err = svc.Validate("USED", 1000)
	require.ErrorIs(t, err, ErrPromoExhausted)

	_, _, err = svc.Validate("BIG", 1000)
	require.ErrorIs(t, err, ErrPromoMinOrder)
}

func TestCreateDuplicatePromoCode(t *testing.T) {
	db := newTestDB(t)
	svc := newPromoService(db)

	require.NoError(t, svc.Create(&entity.PromoCode{Code: "ONCE", DiscountValue: 5, MaxUses: -1, Active: true}))
	err := svc.Create(&entity.PromoCode{Code: "ONCE", DiscountValue: 15, MaxUses: -1, Active: true})
	require.ErrorIs(t, err, ErrCodeTaken)
}

func TestTogglePromo(t *testing.T) {
	db := newTestDB(t)
	svc := newPromoService(db)

	promo := &entity.PromoCode{Code: "SWITCH", DiscountValue: 5, MaxUses: -1, Active: true}
	require.NoError(t, svc.Create(promo))

	toggled, err := svc.Toggle(promo.ID)
	require.NoError(t, err)
	require.False(t, toggled.Active)

	// inactive codes no longer validate
	_, _, err = svc.Validate("SWITCH", 1000)
	require.ErrorIs(t, err, ErrPromoInvalid)

	_, err = svc.Toggle(999)
	require.ErrorIs(t, err, ErrNotFound)
}
