package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrefsStore_SaveLoadClear(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "session.yaml")
	s := NewPrefsStore(path)

	// Sin archivo todavía => vacío, sin error.
	got, err := s.Load(ctx, "pawbuddy")
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, s.Save(ctx, "pawbuddy", map[string]string{"isLogged": "true", "userId": "42"}))
	require.NoError(t, s.Save(ctx, "other", map[string]string{"k": "v"}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	// Otra instancia sobre el mismo archivo ve lo persistido.
	got, err = NewPrefsStore(path).Load(ctx, "pawbuddy")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"isLogged": "true", "userId": "42"}, got)

	// Save reemplaza el namespace completo.
	require.NoError(t, s.Save(ctx, "pawbuddy", map[string]string{"isLogged": "false"}))
	got, err = s.Load(ctx, "pawbuddy")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"isLogged": "false"}, got)

	require.NoError(t, s.Clear(ctx, "pawbuddy"))
	require.NoError(t, s.Clear(ctx, "pawbuddy"))
	got, err = s.Load(ctx, "pawbuddy")
	require.NoError(t, err)
	assert.Empty(t, got)

	other, err := s.Load(ctx, "other")
	require.NoError(t, err)
	assert.Equal(t, "v", other["k"])
}

func TestPrefsStore_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pawbuddy: [not, a, map"), 0o600))

	_, err := NewPrefsStore(path).Load(context.Background(), "pawbuddy")
	assert.Error(t, err)
}
