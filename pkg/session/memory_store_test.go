package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wegnite/storefrontkit/pkg/authz"
	"github.com/wegnite/storefrontkit/pkg/session"
)

func TestMemoryStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := session.NewMemoryStore(0)
	t.Cleanup(store.Close)

	user := session.User{ID: uuid.New(), Role: authz.RoleUser}
	sess := session.NewSession("tok_1", user, time.Hour)
	require.NoError(t, store.Create(ctx, sess))

	t.Run("get returns a copy", func(t *testing.T) {
		got, err := store.Get(ctx, "tok_1")
		require.NoError(t, err)
		assert.Equal(t, sess.ID, got.ID)

		got.User.Role = authz.RoleAdmin
		again, err := store.Get(ctx, "tok_1")
		require.NoError(t, err)
		assert.Equal(t, authz.RoleUser, again.User.Role)
	})

	t.Run("exists", func(t *testing.T) {
		ok, err := store.Exists(ctx, "tok_1")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = store.Exists(ctx, "tok_missing")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, "tok_1"))
		_, err := store.Get(ctx, "tok_1")
		assert.ErrorIs(t, err, session.ErrSessionNotFound)
	})
}

func TestMemoryStore_DeleteExpired(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := session.NewMemoryStore(0)
	t.Cleanup(store.Close)

	user := session.User{ID: uuid.New(), Role: authz.RoleUser}
	require.NoError(t, store.Create(ctx, session.NewSession("tok_live", user, time.Hour)))
	require.NoError(t, store.Create(ctx, session.NewSession("tok_expired", user, -time.Minute)))

	// Expired sessions fail the existence probe even before cleanup.
	ok, err := store.Exists(ctx, "tok_expired")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.DeleteExpired(ctx))

	_, err = store.Get(ctx, "tok_expired")
	assert.ErrorIs(t, err, session.ErrSessionNotFound)

	_, err = store.Get(ctx, "tok_live")
	assert.NoError(t, err)
}
