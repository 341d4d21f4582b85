package configs

import (
	"backend/entity"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func ConnectDB(source string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(source), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
}

func SetupDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.Dish{},
		&entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Favorite{},
		&entity.Review{},
		&entity.PromoCode{},
		&entity.ActivityLog{},
	)
}
