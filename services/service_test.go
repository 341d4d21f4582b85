package services

import (
	"fmt"
	"testing"

	"backend/entity"
	"backend/repository"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// a pooled :memory: connection would get its own empty database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Dish{},
		&entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Favorite{},
		&entity.Review{},
		&entity.PromoCode{},
		&entity.ActivityLog{},
	))
	return db
}

var userSeq int

func createUser(t *testing.T, db *gorm.DB) *entity.User {
	t.Helper()
	userSeq++
	u := &entity.User{
		Name:     fmt.Sprintf("user %d", userSeq),
		Email:    fmt.Sprintf("user%d@example.com", userSeq),
		Password: "x",
		Role:     "customer",
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func createDish(t *testing.T, db *gorm.DB, name string, price float64) *entity.Dish {
	t.Helper()
	d := &entity.Dish{Name: name, Price: price, Category: "Plats principaux"}
	require.NoError(t, db.Create(d).Error)
	return d
}

func newCartService(db *gorm.DB) *CartService {
	return NewCartService(repository.NewCartRepository(db), repository.NewDishRepository(db))
}

func newOrderService(db *gorm.DB) *OrderService {
	promoRepo := repository.NewPromoRepository(db)
	return NewOrderService(
		db,
		repository.NewOrderRepository(db),
		repository.NewCartRepository(db),
		promoRepo,
		NewPromoService(promoRepo),
	)
}
