package services

import (
	"errors"
	"math"

	"backend/entity"
	"backend/repository"

	"gorm.io/gorm"
)

type ReviewService struct {
	DB         *gorm.DB
	reviewRepo *repository.ReviewRepository
	dishRepo   *repository.DishRepository
}

func NewReviewService(db *gorm.DB, reviewRepo *repository.ReviewRepository, dishRepo *repository.DishRepository) *ReviewService {
	return &ReviewService{DB: db, reviewRepo: reviewRepo, dishRepo: dishRepo}
}

// Add records one review per (user, dish) and folds the rating into the
// dish aggregates inside the same transaction.
func (s *ReviewService) Add(userID, dishID uint, rating int, comment string) (*entity.Review, error) {
	dish, err := s.dishRepo.FindByID(dishID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if _, err := s.reviewRepo.Find(userID, dishID); err == nil {
		return nil, ErrAlreadyReviewed
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	review := &entity.Review{
		UserID:  userID,
		DishID:  dishID,
		Rating:  rating,
		Comment: comment,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.reviewRepo.CreateTx(tx, review); err != nil {
			return err
		}

		newCount := dish.ReviewCount + 1
		newAvg := (dish.AverageRating*float64(dish.ReviewCount) + float64(rating)) / float64(newCount)
		dish.ReviewCount = newCount
		dish.AverageRating = math.Round(newAvg*10) / 10

		return s.dishRepo.SaveTx(tx, dish)
	})
	if err != nil {
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) ListForDish(dishID uint) ([]entity.Review, error) {
	return s.reviewRepo.ListForDish(dishID)
}
