package redis

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pawbuddy-client/internal/ports/prefs"
)

func setupRedis(t *testing.T) (*goredis.Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb, mr
}

func TestPrefsStore_SaveLoadClear(t *testing.T) {
	ctx := context.Background()
	rdb, mr := setupRedis(t)
	s := NewPrefsStore(rdb)

	got, err := s.Load(ctx, "pawbuddy")
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, s.Save(ctx, "pawbuddy", map[string]string{"isLogged": "true", "userId": "42"}))
	assert.Equal(t, "42", mr.HGet("pawbuddy:pawbuddy", "userId"))

	// Reemplazo completo: las keys que no vienen desaparecen.
	require.NoError(t, s.Save(ctx, "pawbuddy", map[string]string{"isLogged": "false"}))
	got, err = s.Load(ctx, "pawbuddy")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"isLogged": "false"}, got)

	require.NoError(t, s.Save(ctx, "pawbuddy", nil))
	assert.False(t, mr.Exists("pawbuddy:pawbuddy"))

	require.NoError(t, s.Save(ctx, "pawbuddy", map[string]string{"a": "1"}))
	require.NoError(t, s.Clear(ctx, "pawbuddy"))
	assert.False(t, mr.Exists("pawbuddy:pawbuddy"))
}

func TestPrefsStore_Unavailable(t *testing.T) {
	rdb, mr := setupRedis(t)
	s := NewPrefsStore(rdb)
	mr.Close()

	_, err := s.Load(context.Background(), "pawbuddy")
	require.Error(t, err)
	assert.True(t, errors.Is(err, prefs.ErrUnavailable))
}

func TestOpen(t *testing.T) {
	_, mr := setupRedis(t)

	client, err := Open(context.Background(), "redis://"+mr.Addr()+"/0")
	require.NoError(t, err)
	defer client.Close()

	_, err = Open(context.Background(), "not a url")
	assert.Error(t, err)
}
