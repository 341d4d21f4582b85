package configs

import (
	"testing"

	"backend/entity"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newSeedDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := ConnectDB(":memory:")
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, SetupDatabase(db))
	return db
}

func TestSeedAdminIdempotent(t *testing.T) {
	t.Setenv("ADMIN_EMAIL", "admin@resto.dz")
	t.Setenv("ADMIN_PASSWORD", "secret")
	db := newSeedDB(t)

	require.NoError(t, SeedAdmin(db))
	require.NoError(t, SeedAdmin(db))

	var admins []entity.User
	require.NoError(t, db.Where("role = ?", "admin").Find(&admins).Error)
	require.Len(t, admins, 1)
	require.Equal(t, "admin@resto.dz", admins[0].Email)
}

func TestSeedAdminSkipsWithoutCredentials(t *testing.T) {
	t.Setenv("ADMIN_EMAIL", "")
	t.Setenv("ADMIN_PASSWORD", "")
	db := newSeedDB(t)

	require.NoError(t, SeedAdmin(db))

	var count int64
	require.NoError(t, db.Model(&entity.User{}).Count(&count).Error)
	require.EqualValues(t, 0, count)
}

func TestSeedAdminReportsLookupFailure(t *testing.T) {
	t.Setenv("ADMIN_EMAIL", "admin@resto.dz")
	t.Setenv("ADMIN_PASSWORD", "secret")
	db := newSeedDB(t)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	require.Error(t, SeedAdmin(db))
}

func TestSeedDishesOnlyOnEmptyCatalog(t *testing.T) {
	db := newSeedDB(t)

	require.NoError(t, SeedDishes(db))
	var count int64
	require.NoError(t, db.Model(&entity.Dish{}).Count(&count).Error)
	require.EqualValues(t, 7, count)

	require.NoError(t, SeedDishes(db))
	require.NoError(t, db.Model(&entity.Dish{}).Count(&count).Error)
	require.EqualValues(t, 7, count)
}
