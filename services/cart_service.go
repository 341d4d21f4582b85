package services

import (
	"errors"

	"backend/entity"
	"backend/repository"

	"gorm.io/gorm"
)

type CartService struct {
	cartRepo *repository.CartRepository
	dishRepo *repository.DishRepository
}

func NewCartService(cartRepo *repository.CartRepository, dishRepo *repository.DishRepository) *CartService {
	return &CartService{cartRepo: cartRepo, dishRepo: dishRepo}
}

// Add puts qty of a dish in the user's cart. An existing line for the same
// dish is merged by incrementing its quantity, never duplicated.
func (s *CartService) Add(userID, dishID uint, qty int) (*entity.Dish, error) {
	if qty <= 0 {
		qty = 1
	}

	dish, err := s.dishRepo.FindByID(dishID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	existing, err := s.cartRepo.FindByUserAndDish(userID, dishID)
	if err == nil {
		existing.Quantity += qty
		return dish, s.cartRepo.Save(existing)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	item := &entity.CartItem{UserID: userID, DishID: dishID, Quantity: qty}
	if err := s.cartRepo.Create(item); err != nil {
		return nil, err
	}
	return dish, nil
}

// View returns the cart lines with a total computed on read.
func (s *CartService) View(userID uint) ([]entity.CartItem, float64, error) {
	items, err := s.cartRepo.ListForUser(userID)
	if err != nil {
		return nil, 0, err
	}

	var total float64
	for _, it := range items {
		total += it.Dish.Price * float64(it.Quantity)
	}
	return items, total, nil
}

func (s *CartService) UpdateQuantity(userID, itemID uint, qty int) (*entity.CartItem, error) {
	if qty < 1 {
		return nil, ErrInvalidQuantity
	}

	item, err := s.cartRepo.FindByID(itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if item.UserID != userID {
		return nil, ErrForbidden
	}

	item.Quantity = qty
	if err := s.cartRepo.Save(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *CartService) Remove(userID, itemID uint) error {
	item, err := s.cartRepo.FindByID(itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if item.UserID != userID {
		return ErrForbidden
	}
	return s.cartRepo.Delete(item)
}
