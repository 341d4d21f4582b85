package services

import (
	"errors"

	"backend/entity"
	"backend/repository"

	"gorm.io/gorm"
)

type CatalogService struct {
	dishRepo *repository.DishRepository
}

func NewCatalogService(dishRepo *repository.DishRepository) *CatalogService {
	return &CatalogService{dishRepo: dishRepo}
}

func (s *CatalogService) List() ([]entity.Dish, error) {
	return s.dishRepo.List()
}

func (s *CatalogService) Popular() ([]entity.Dish, error) {
	return s.dishRepo.ListPopular(6)
}

func (s *CatalogService) Newest() ([]entity.Dish, error) {
	return s.dishRepo.ListNew(3)
}

func (s *CatalogService) Detail(dishID uint) (*entity.Dish, error) {
	dish, err := s.dishRepo.FindByID(dishID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return dish, err
}

// Add creates a dish. Admin gating happens in the route middleware.
func (s *CatalogService) Add(name string, price float64, category, image string) (*entity.Dish, error) {
	dish := &entity.Dish{
		Name:     name,
		Price:    price,
		Category: category,
		Image:    image,
	}
	if err := s.dishRepo.Create(dish); err != nil {
		return nil, err
	}
	return dish, nil
}
