package accounts_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pawbuddy-client/internal/adapters/storage/memory"
	"pawbuddy-client/internal/domain/accounts"
	"pawbuddy-client/internal/domain/users"
	"pawbuddy-client/internal/platform/jsontime"
	"pawbuddy-client/internal/ports/auth"
)

func newService(t *testing.T) *accounts.Service {
	t.Helper()
	usersSvc := users.NewService(memory.NewUserRepo(), users.Deps{})
	return accounts.NewService(memory.NewAccountRepo(), memory.NewSessionRepo(), usersSvc)
}

func profile(email string) users.User {
	return users.User{
		Name:       "Ana Silva",
		BirthDate:  jsontime.NewDate(1990, time.April, 25),
		TaxID:      "123456789",
		Phone:      "912345678",
		Address:    "Rua A, 1",
		PostalCode: "1000-001",
		Email:      email,
		Country:    "Portugal",
	}
}

func TestRegisterLoginLogout(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	id, sess, err := svc.Register(ctx, accounts.RegisterRequest{User: profile("ana@example.com"), Password: "secret1"})
	require.NoError(t, err)
	assert.False(t, id.IsAdmin)
	assert.NotEmpty(t, sess.ID)

	claims, err := svc.Resolve(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, id.ID, claims.UserID)

	// Email duplicado (sin importar mayúsculas) => conflicto.
	_, _, err = svc.Register(ctx, accounts.RegisterRequest{User: profile("ANA@example.com"), Password: "secret1"})
	assert.True(t, errors.Is(err, accounts.ErrEmailTaken))

	_, _, err = svc.Login(ctx, accounts.LoginRequest{Email: "ana@example.com", Password: "wrong"})
	assert.True(t, errors.Is(err, accounts.ErrInvalidCredentials))
	_, _, err = svc.Login(ctx, accounts.LoginRequest{Email: "nobody@example.com", Password: "secret1"})
	assert.True(t, errors.Is(err, accounts.ErrInvalidCredentials))

	again, sess2, err := svc.Login(ctx, accounts.LoginRequest{Email: "Ana@Example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, id.ID, again.ID)

	require.NoError(t, svc.Logout(ctx, sess2.ID))
	require.NoError(t, svc.Logout(ctx, sess2.ID))
	_, err = svc.Resolve(ctx, sess2.ID)
	assert.True(t, errors.Is(err, auth.ErrSessionNotFound))
}

func TestRegister_ValidationAndShortPassword(t *testing.T) {
	svc := newService(t)

	_, _, err := svc.Register(context.Background(), accounts.RegisterRequest{User: profile("ana@example.com"), Password: "123"})
	assert.True(t, errors.Is(err, accounts.ErrInvalidInput))
}

func TestEnsureAdmin(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	admin, err := svc.EnsureAdmin(ctx, profile("admin@pawbuddy.local"), "admin123")
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin)

	// Segunda vez no duplica.
	again, err := svc.EnsureAdmin(ctx, profile("admin@pawbuddy.local"), "admin123")
	require.NoError(t, err)
	assert.Equal(t, admin.ID, again.ID)

	id, sess, err := svc.Login(ctx, accounts.LoginRequest{Email: "admin@pawbuddy.local", Password: "admin123"})
	require.NoError(t, err)
	assert.True(t, id.IsAdmin)

	claims, err := svc.Resolve(ctx, sess.ID)
	require.NoError(t, err)
	assert.True(t, claims.IsAdmin)
}

func TestDeleteUser_InvalidatesSessions(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	id, sess, err := svc.Register(ctx, accounts.RegisterRequest{User: profile("ana@example.com"), Password: "secret1"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUser(ctx, id.ID))
	_, err = svc.Resolve(ctx, sess.ID)
	assert.Error(t, err)
}
