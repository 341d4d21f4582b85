package services

import (
	"errors"

	"backend/entity"
	"backend/repository"

	"gorm.io/gorm"
)

type OrderService struct {
	DB        *gorm.DB
	orderRepo *repository.OrderRepository
	cartRepo  *repository.CartRepository
	promoRepo *repository.PromoRepository
	promoSvc  *PromoService
}

func NewOrderService(
	db *gorm.DB,
	orderRepo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	promoRepo *repository.PromoRepository,
	promoSvc *PromoService,
) *OrderService {
	return &OrderService{
		DB:        db,
		orderRepo: orderRepo,
		cartRepo:  cartRepo,
		promoRepo: promoRepo,
		promoSvc:  promoSvc,
	}
}

// Confirm turns the user's cart into an order. Prices are the catalog prices
// at this moment; the order items keep that snapshot forever. Order creation,
// item creation, promo bump and cart clearing commit as one transaction.
func (s *OrderService) Confirm(userID uint, promoCode string) (*entity.Order, error) {
	items, err := s.cartRepo.ListForUser(userID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	var total float64
	for _, it := range items {
		total += it.Dish.Price * float64(it.Quantity)
	}

	var promo *entity.PromoCode
	var discount float64
	if promoCode != "" {
		promo, discount, err = s.promoSvc.Validate(promoCode, total)
		if err != nil {
			return nil, err
		}
	}

	order := &entity.Order{
		UserID:   userID,
		Total:    total - discount,
		Discount: discount,
		Status:   "pending",
	}
	if promo != nil {
		order.PromoCode = promo.Code
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.orderRepo.CreateOrder(tx, order); err != nil {
			return err
		}

		for _, it := range items {
			oi := entity.OrderItem{
				OrderID:   order.ID,
				DishID:    it.DishID,
				DishName:  it.Dish.Name,
				DishPrice: it.Dish.Price,
				Quantity:  it.Quantity,
			}
			if err := s.orderRepo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
			order.Items = append(order.Items, oi)
		}

		if promo != nil {
			if err := s.promoRepo.IncrementUses(tx, promo.ID); err != nil {
				return err
			}
		}

		return s.cartRepo.ClearForUser(tx, userID)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) ListForUser(userID uint) ([]entity.Order, error) {
	return s.orderRepo.ListForUser(userID)
}

func (s *OrderService) DetailForUser(userID, orderID uint) (*entity.Order, error) {
	order, err := s.orderRepo.FindForUser(userID, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return order, err
}

func (s *OrderService) ListAll(page, limit int) ([]entity.Order, int64, error) {
	return s.orderRepo.ListAll(page, limit)
}

func (s *OrderService) UpdateStatus(orderID uint, status string) error {
	rows, err := s.orderRepo.UpdateStatus(orderID, status)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
