package services

import (
	"testing"

	"backend/entity"

	"github.com/stretchr/testify/require"
)

func TestAddToCartMergesQuantities(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	user := createUser(t, db)
	dish := createDish(t, db, "Couscous Royal", 2500)

	_, err := svc.Add(user.ID, dish.ID, 2)
	require.NoError(t, err)
	_, err = svc.Add(user.ID, dish.ID, 3)
	require.NoError(t, err)

	items, _, err := svc.View(user.ID)
	require.NoError(t, err)
	require.Len(t, items, 1, "same dish must merge into one line")
	require.Equal(t, 5, items[0].Quantity)
}

func TestAddToCartDefaultsQuantity(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	user := createUser(t, db)
	dish := createDish(t, db, "Baklawa", 800)

	_, err := svc.Add(user.ID, dish.ID, 0)
	require.NoError(t, err)

	items, _, err := svc.View(user.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, 1, items[0].Quantity)
}

func TestAddToCartUnknownDish(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	user := createUser(t, db)

	_, err := svc.Add(user.ID, 9999, 1)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestViewCartComputesTotal(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	user := createUser(t, db)
	couscous := createDish(t, db, "Couscous Royal", 2000)
	chorba := createDish(t, db, "Chorba Frik", 1200)

	_, err := svc.Add(user.ID, couscous.ID, 2)
	require.NoError(t, err)
	_, err = svc.Add(user.ID, chorba.ID, 1)
	require.NoError(t, err)

	_, total, err := svc.View(user.ID)
	require.NoError(t, err)
	require.Equal(t, 5200.0, total)
}

func TestRemoveFromCartByNonOwner(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	owner := createUser(t, db)
	other := createUser(t, db)
	dish := createDish(t, db, "Tajine Poulet", 2200)

	_, err := svc.Add(owner.ID, dish.ID, 1)
	require.NoError(t, err)

	items, _, err := svc.View(owner.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)

	err = svc.Remove(other.ID, items[0].ID)
	require.ErrorIs(t, err, ErrForbidden)

	// the item stays untouched
	items, _, err = svc.View(owner.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)

	require.NoError(t, svc.Remove(owner.ID, items[0].ID))
	items, _, err = svc.View(owner.ID)
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestRemoveFromCartMissingItem(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	user := createUser(t, db)

	err := svc.Remove(user.ID, 42)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateQuantity(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	user := createUser(t, db)
	other := createUser(t, db)
	dish := createDish(t, db, "Méchoui", 3000)

	_, err := svc.Add(user.ID, dish.ID, 1)
	require.NoError(t, err)

	var item entity.CartItem
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&item).Error)

	updated, err := svc.UpdateQuantity(user.ID, item.ID, 4)
	require.NoError(t, err)
	require.Equal(t, 4, updated.Quantity)

	_, err = svc.UpdateQuantity(user.ID, item.ID, 0)
	require.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = svc.UpdateQuantity(other.ID, item.ID, 2)
	require.ErrorIs(t, err, ErrForbidden)
}
