package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type ReviewRepository struct{ DB *gorm.DB }

func NewReviewRepository(db *gorm.DB) *ReviewRepository { return &ReviewRepository{DB: db} }

func (r *ReviewRepository) ListForDish(dishID uint) ([]entity.Review, error) {
	var reviews []entity.Review
	err := r.DB.Where("dish_id = ?", dishID).
		Preload("User").
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepository) Find(userID, dishID uint) (*entity.Review, error) {
	var rev entity.Review
	err := r.DB.Where("user_id = ? AND dish_id = ?", userID, dishID).First(&rev).Error
	if err != nil {
		return nil, err
	}
	return &rev, nil
}

func (r *ReviewRepository) CreateTx(tx *gorm.DB, rev *entity.Review) error {
	return tx.Create(rev).Error
}
