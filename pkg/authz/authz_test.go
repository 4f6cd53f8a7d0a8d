package authz_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wegnite/storefrontkit/pkg/authz"
)

func TestAuthorize(t *testing.T) {
	t.Parallel()

	selfID := uuid.New()
	otherID := uuid.New()

	tests := []struct {
		name      string
		actor     *authz.Actor
		subjectID uuid.UUID
		allowed   []authz.Role
		wantErr   error
	}{
		{
			name:      "nil actor is unauthorized",
			actor:     nil,
			subjectID: selfID,
			allowed:   []authz.Role{authz.RoleAdmin},
			wantErr:   authz.ErrUnauthorized,
		},
		{
			name:      "owner allowed regardless of role",
			actor:     &authz.Actor{ID: selfID, Role: authz.RoleUser},
			subjectID: selfID,
			allowed:   []authz.Role{authz.RoleAdmin},
		},
		{
			name:      "admin allowed on other users",
			actor:     &authz.Actor{ID: otherID, Role: authz.RoleAdmin},
			subjectID: selfID,
			allowed:   []authz.Role{authz.RoleAdmin},
		},
		{
			name:      "non-owner non-admin forbidden",
			actor:     &authz.Actor{ID: otherID, Role: authz.RoleUser},
			subjectID: selfID,
			allowed:   []authz.Role{authz.RoleAdmin},
			wantErr:   authz.ErrForbidden,
		},
		{
			name:      "admin actor still forbidden when admin not in allowed set",
			actor:     &authz.Actor{ID: otherID, Role: authz.RoleAdmin},
			subjectID: selfID,
			allowed:   nil,
			wantErr:   authz.ErrForbidden,
		},
		{
			name:      "admin acting on own data allowed",
			actor:     &authz.Actor{ID: selfID, Role: authz.RoleAdmin},
			subjectID: selfID,
			allowed:   []authz.Role{authz.RoleAdmin},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := authz.Authorize(tt.actor, tt.subjectID, tt.allowed...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthorizeSelfOrAdmin(t *testing.T) {
	t.Parallel()

	selfID := uuid.New()

	assert.NoError(t, authz.AuthorizeSelfOrAdmin(&authz.Actor{ID: selfID, Role: authz.RoleUser}, selfID))
	assert.NoError(t, authz.AuthorizeSelfOrAdmin(&authz.Actor{ID: uuid.New(), Role: authz.RoleAdmin}, selfID))
	assert.ErrorIs(t, authz.AuthorizeSelfOrAdmin(&authz.Actor{ID: uuid.New(), Role: authz.RoleUser}, selfID), authz.ErrForbidden)
	assert.ErrorIs(t, authz.AuthorizeSelfOrAdmin(nil, selfID), authz.ErrUnauthorized)
}

func TestActorContext(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		actor := &authz.Actor{ID: uuid.New(), Role: authz.RoleUser}
		ctx := authz.SetActorToContext(context.Background(), actor)

		got, ok := authz.ActorFromContext(ctx)
		require.True(t, ok)
		assert.Equal(t, actor, got)

		got, err := authz.RequireActor(ctx)
		require.NoError(t, err)
		assert.Equal(t, actor, got)
	})

	t.Run("missing actor", func(t *testing.T) {
		t.Parallel()

		_, ok := authz.ActorFromContext(context.Background())
		assert.False(t, ok)

		_, err := authz.RequireActor(context.Background())
		assert.ErrorIs(t, err, authz.ErrUnauthorized)
	})
}

func TestRoleValid(t *testing.T) {
	t.Parallel()

	assert.True(t, authz.RoleUser.Valid())
	assert.True(t, authz.RoleAdmin.Valid())
	assert.False(t, authz.Role("superuser").Valid())
	assert.False(t, authz.Role("").Valid())
}
