package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type FavoriteRepository struct{ DB *gorm.DB }

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository { return &FavoriteRepository{DB: db} }

func (r *FavoriteRepository) ListForUser(userID uint) ([]entity.Favorite, error) {
	var favs []entity.Favorite
	err := r.DB.Where("user_id = ?", userID).Preload("Dish").Find(&favs).Error
	return favs, err
}

func (r *FavoriteRepository) Find(userID, dishID uint) (*entity.Favorite, error) {
	var fav entity.Favorite
	err := r.DB.Where("user_id = ? AND dish_id = ?", userID, dishID).First(&fav).Error
	if err != nil {
		return nil, err
	}
	return &fav, nil
}

func (r *FavoriteRepository) Create(fav *entity.Favorite) error {
	return r.DB.Create(fav).Error
}

func (r *FavoriteRepository) Delete(fav *entity.Favorite) error {
	return r.DB.Delete(fav).Error
}
