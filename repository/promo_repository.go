package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type PromoRepository struct{ DB *gorm.DB }

func NewPromoRepository(db *gorm.DB) *PromoRepository { return &PromoRepository{DB: db} }

func (r *PromoRepository) FindActiveByCode(code string) (*entity.PromoCode, error) {
	var promo entity.PromoCode
	err := r.DB.Where("code = ? AND active = ?", code, true).First(&promo).Error
	if err != nil {
		return nil, err
	}
	return &promo, nil
}

func (r *PromoRepository) CountByCode(code string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.PromoCode{}).Where("code = ?", code).Count(&count).Error
	return count, err
}

func (r *PromoRepository) List() ([]entity.PromoCode, error) {
	var promos []entity.PromoCode
	err := r.DB.Order("created_at DESC").Find(&promos).Error
	return promos, err
}

func (r *PromoRepository) FindByID(id uint) (*entity.PromoCode, error) {
	var promo entity.PromoCode
	if err := r.DB.First(&promo, id).Error; err != nil {
		return nil, err
	}
	return &promo, nil
}

func (r *PromoRepository) Create(promo *entity.PromoCode) error {
	return r.DB.Create(promo).Error
}

func (r *PromoRepository) Save(promo *entity.PromoCode) error {
	return r.DB.Save(promo).Error
}

func (r *PromoRepository) IncrementUses(tx *gorm.DB, id uint) error {
	return tx.Model(&entity.PromoCode{}).Where("id = ?", id).
		UpdateColumn("current_uses", gorm.Expr("current_uses + 1")).Error
}
