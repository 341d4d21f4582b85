package services

import (
	"backend/entity"
	"backend/repository"
)

type AdminService struct {
	userRepo     *repository.UserRepository
	dishRepo     *repository.DishRepository
	orderRepo    *repository.OrderRepository
	activityRepo *repository.ActivityRepository
}

func NewAdminService(
	userRepo *repository.UserRepository,
	dishRepo *repository.DishRepository,
	orderRepo *repository.OrderRepository,
	activityRepo *repository.ActivityRepository,
) *AdminService {
	return &AdminService{
		userRepo:     userRepo,
		dishRepo:     dishRepo,
		orderRepo:    orderRepo,
		activityRepo: activityRepo,
	}
}

type Stats struct {
	Users   int64   `json:"users"`
	Dishes  int64   `json:"dishes"`
	Orders  int64   `json:"orders"`
	Revenue float64 `json:"revenue"`
}

func (s *AdminService) Stats() (*Stats, error) {
	users, err := s.userRepo.Count()
	if err != nil {
		return nil, err
	}
	dishes, err := s.dishRepo.Count()
	if err != nil {
		return nil, err
	}
	orders, err := s.orderRepo.Count()
	if err != nil {
		return nil, err
	}
	revenue, err := s.orderRepo.SumRevenue()
	if err != nil {
		return nil, err
	}
	return &Stats{Users: users, Dishes: dishes, Orders: orders, Revenue: revenue}, nil
}

func (s *AdminService) Activity(page, limit int) ([]entity.ActivityLog, int64, error) {
	return s.activityRepo.List(page, limit)
}
