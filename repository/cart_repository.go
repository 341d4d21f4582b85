package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

func (r *CartRepository) ListForUser(userID uint) ([]entity.CartItem, error) {
	var items []entity.CartItem
	err := r.DB.Where("user_id = ?", userID).Preload("Dish").Find(&items).Error
	return items, err
}

func (r *CartRepository) FindByID(itemID uint) (*entity.CartItem, error) {
	var item entity.CartItem
	if err := r.DB.First(&item, itemID).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *CartRepository) FindByUserAndDish(userID, dishID uint) (*entity.CartItem, error) {
	var item entity.CartItem
	err := r.DB.Where("user_id = ? AND dish_id = ?", userID, dishID).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *CartRepository) Create(item *entity.CartItem) error {
	return r.DB.Create(item).Error
}

func (r *CartRepository) Save(item *entity.CartItem) error {
	return r.DB.Save(item).Error
}

func (r *CartRepository) Delete(item *entity.CartItem) error {
	return r.DB.Delete(item).Error
}

func (r *CartRepository) ClearForUser(tx *gorm.DB, userID uint) error {
	return tx.Where("user_id = ?", userID).Delete(&entity.CartItem{}).Error
}
