package services

import (
	"errors"

	"backend/entity"
	"backend/repository"

	"gorm.io/gorm"
)

type FavoriteService struct {
	favRepo  *repository.FavoriteRepository
	dishRepo *repository.DishRepository
}

func NewFavoriteService(favRepo *repository.FavoriteRepository, dishRepo *repository.DishRepository) *FavoriteService {
	return &FavoriteService{favRepo: favRepo, dishRepo: dishRepo}
}

// Add bookmarks a dish. Returns false without error when the favorite is
// already present, so repeated clicks stay harmless.
func (s *FavoriteService) Add(userID, dishID uint) (bool, error) {
	if _, err := s.dishRepo.FindByID(dishID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrNotFound
		}
		return false, err
	}

	_, err := s.favRepo.Find(userID, dishID)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	fav := &entity.Favorite{UserID: userID, DishID: dishID}
	if err := s.favRepo.Create(fav); err != nil {
		return false, err
	}
	return true, nil
}

// Remove deletes the bookmark. Returns false without error when there was
// nothing to remove.
func (s *FavoriteService) Remove(userID, dishID uint) (bool, error) {
	fav, err := s.favRepo.Find(userID, dishID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	if err := s.favRepo.Delete(fav); err != nil {
		return false, err
	}
	return true, nil
}

func (s *FavoriteService) List(userID uint) ([]entity.Favorite, error) {
	return s.favRepo.ListForUser(userID)
}
