package services

import (
	"testing"
	"time"

	"backend/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthService(db *gorm.DB) *AuthService {
	return NewAuthService(repository.NewUserRepository(db), "test-secret", time.Hour)
}

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	user, err := svc.Register("bozar mohamed", "a@x.com", "Tlemcen", "p1", "p1")
	require.NoError(t, err)
	require.NotZero(t, user.ID)
	require.Equal(t, "customer", user.Role)
	require.NotEqual(t, "p1", user.Password, "password must be stored hashed")

	token, logged, err := svc.Login("a@x.com", "p1")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, user.ID, logged.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	_, err := svc.Register("first", "a@x.com", "", "p1", "p1")
	require.NoError(t, err)

	_, err = svc.Register("second", "a@x.com", "", "p2", "p2")
	require.ErrorIs(t, err, ErrEmailTaken)

	// email comparison is case-insensitive
	_, err = svc.Register("third", "A@X.COM", "", "p3", "p3")
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterPasswordMismatch(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	_, err := svc.Register("someone", "b@x.com", "", "p1", "p2")
	require.ErrorIs(t, err, ErrPasswordMismatch)

	count, repoErr := repository.NewUserRepository(db).Count()
	require.NoError(t, repoErr)
	require.Zero(t, count, "no user should be created on mismatch")
}

func TestLoginInvalidCredentials(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	_, err := svc.Register("someone", "c@x.com", "", "secret1", "secret1")
	require.NoError(t, err)

	_, _, err = svc.Login("c@x.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login("nobody@x.com", "secret1")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUpdateProfile(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	user, err := svc.Register("old name", "d@x.com", "old address", "secret1", "secret1")
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(user.ID, "new name", "")
	require.NoError(t, err)
	require.Equal(t, "new name", updated.Name)
	require.Equal(t, "old address", updated.Address, "empty fields keep their value")
}
