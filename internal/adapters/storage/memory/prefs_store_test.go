package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrefsStore_IsolatedCopies(t *testing.T) {
	ctx := context.Background()
	s := NewPrefsStore()

	in := map[string]string{"userId": "42"}
	require.NoError(t, s.Save(ctx, "pawbuddy", in))
	in["userId"] = "7"

	got, err := s.Load(ctx, "pawbuddy")
	require.NoError(t, err)
	assert.Equal(t, "42", got["userId"])

	got["userId"] = "99"
	again, _ := s.Load(ctx, "pawbuddy")
	assert.Equal(t, "42", again["userId"])

	require.NoError(t, s.Clear(ctx, "pawbuddy"))
	got, err = s.Load(ctx, "pawbuddy")
	require.NoError(t, err)
	assert.Empty(t, got)
}
