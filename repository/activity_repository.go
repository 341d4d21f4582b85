package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type ActivityRepository struct{ DB *gorm.DB }

func NewActivityRepository(db *gorm.DB) *ActivityRepository { return &ActivityRepository{DB: db} }

func (r *ActivityRepository) Create(logEntry *entity.ActivityLog) error {
	return r.DB.Create(logEntry).Error
}

func (r *ActivityRepository) List(page, limit int) ([]entity.ActivityLog, int64, error) {
	var logs []entity.ActivityLog
	offset := (page - 1) * limit
	err := r.DB.Order("created_at DESC").Limit(limit).Offset(offset).Find(&logs).Error
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.DB.Model(&entity.ActivityLog{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}
