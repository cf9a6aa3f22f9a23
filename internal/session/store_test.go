package session

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pawbuddy-client/internal/adapters/storage/memory"
	"pawbuddy-client/internal/nav"
	"pawbuddy-client/internal/platform/logger"
)

type failingPrefs struct{}

func (failingPrefs) Load(context.Context, string) (map[string]string, error) {
	return nil, errors.New("down")
}
func (failingPrefs) Save(context.Context, string, map[string]string) error { return errors.New("down") }
func (failingPrefs) Clear(context.Context, string) error                 { return errors.New("down") }

func TestStore_SaveLoginRoundTrip(t *testing.T) {
	ctx := context.Background()
	backend := memory.NewPrefsStore()

	s := Open(ctx, backend, "", logger.Nop())
	assert.False(t, s.IsLogged())
	assert.Equal(t, NoUser, s.UserID())

	s.SaveLogin(42, true)
	assert.True(t, s.IsLogged())
	assert.Equal(t, 42, s.UserID())
	assert.True(t, s.IsAdmin())

	// Otro proceso sobre el mismo backend ve la misma sesión.
	reopened := Open(ctx, backend, DefaultNamespace, logger.Nop())
	assert.Equal(t, State{LoggedIn: true, UserID: 42, IsAdmin: true}, reopened.State())

	raw, err := backend.Load(ctx, DefaultNamespace)
	require.NoError(t, err)
	assert.Equal(t, "true", raw["isLogged"])
	assert.Equal(t, "42", raw["userId"])
	assert.Equal(t, "true", raw["isAdmin"])
}

func TestStore_LogoutIsIdempotent(t *testing.T) {
	ctx := context.Background()
	backend := memory.NewPrefsStore()
	s := Open(ctx, backend, "", logger.Nop())

	s.SaveLogin(7, false)
	s.SetReturnTo(nav.AdoptionForm(3))
	s.SaveCookies([]*http.Cookie{{Name: "pawbuddy_session", Value: "abc"}})

	s.Logout()
	first := s.State()
	s.Logout()
	second := s.State()

	assert.Equal(t, Anonymous(), first)
	assert.Equal(t, first, second)
	assert.Nil(t, s.Cookies())
	_, ok := s.TakeReturnTo()
	assert.False(t, ok)

	raw, err := backend.Load(ctx, DefaultNamespace)
	require.NoError(t, err)
	assert.Empty(t, raw)
}

func TestStore_ReturnToConsumedOnce(t *testing.T) {
	s := Open(context.Background(), memory.NewPrefsStore(), "", logger.Nop())

	s.SetReturnTo(nav.AdoptionForm(7))
	d, ok := s.TakeReturnTo()
	require.True(t, ok)
	assert.Equal(t, nav.AdoptionForm(7), d)

	_, ok = s.TakeReturnTo()
	assert.False(t, ok)
}

func TestStore_ReturnToSurvivesLogin(t *testing.T) {
	s := Open(context.Background(), memory.NewPrefsStore(), "", logger.Nop())

	s.SetReturnTo(nav.AdminUsers())
	s.SaveLogin(1, true)

	d, ok := s.TakeReturnTo()
	require.True(t, ok)
	assert.Equal(t, nav.AdminUsers(), d)
}

func TestStore_Cookies(t *testing.T) {
	ctx := context.Background()
	backend := memory.NewPrefsStore()
	s := Open(ctx, backend, "", logger.Nop())

	s.SaveCookies([]*http.Cookie{{Name: "pawbuddy_session", Value: "abc"}, nil})
	got := Open(ctx, backend, "", logger.Nop()).Cookies()
	require.Len(t, got, 1)
	assert.Equal(t, "pawbuddy_session", got[0].Name)
	assert.Equal(t, "abc", got[0].Value)

	s.SaveCookies(nil)
	assert.Nil(t, s.Cookies())
}

func TestStore_BrokenValuesAreAnonymous(t *testing.T) {
	ctx := context.Background()
	backend := memory.NewPrefsStore()
	require.NoError(t, backend.Save(ctx, DefaultNamespace, map[string]string{
		"isLogged": "true",
		"userId":   "not-a-number",
		"isAdmin":  "true",
	}))

	s := Open(ctx, backend, "", logger.Nop())
	assert.Equal(t, Anonymous(), s.State())
}

func TestStore_BackendFailureKeepsMemoryState(t *testing.T) {
	s := Open(context.Background(), failingPrefs{}, "", logger.Nop())
	assert.False(t, s.IsLogged())

	s.SaveLogin(5, false)
	assert.Equal(t, State{LoggedIn: true, UserID: 5}, s.State())

	s.Logout()
	assert.Equal(t, Anonymous(), s.State())
}
