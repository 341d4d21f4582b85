package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type DishRepository struct{ DB *gorm.DB }

func NewDishRepository(db *gorm.DB) *DishRepository { return &DishRepository{DB: db} }

func (r *DishRepository) List() ([]entity.Dish, error) {
	var dishes []entity.Dish
	err := r.DB.Find(&dishes).Error
	return dishes, err
}

// ListPopular returns the first dishes in insertion order, used by the home page.
func (r *DishRepository) ListPopular(limit int) ([]entity.Dish, error) {
	var dishes []entity.Dish
	err := r.DB.Limit(limit).Find(&dishes).Error
	return dishes, err
}

func (r *DishRepository) ListNew(limit int) ([]entity.Dish, error) {
	var dishes []entity.Dish
	err := r.DB.Order("id DESC").Limit(limit).Find(&dishes).Error
	return dishes, err
}

func (r *DishRepository) FindByID(id uint) (*entity.Dish, error) {
	var d entity.Dish
	if err := r.DB.First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DishRepository) Create(d *entity.Dish) error {
	return r.DB.Create(d).Error
}

func (r *DishRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Dish{}).Count(&count).Error
	return count, err
}

func (r *DishRepository) SaveTx(tx *gorm.DB, d *entity.Dish) error {
	return tx.Save(d).Error
}
