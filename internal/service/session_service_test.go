package service

import (
	"context"
	"testing"

	"github.com/RoyceAzure/lab/megano/internal/domain/model"
	"github.com/RoyceAzure/lab/megano/internal/infra/repository/redis_repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionService_StartAndGet(t *testing.T) {
	ctx := context.Background()
	sessions := newFakeSessionRepo()
	svc := NewSessionService(sessions, newFakeCartRepo())

	session, err := svc.Start(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, session.ID)
	assert.False(t, session.IsAuthenticated())

	got, err := svc.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, got.ID)

	_, err = svc.Get(ctx, "missing")
	require.ErrorIs(t, err, redis_repo.ErrSessionNotFound)
}

func TestSessionService_LoginRotatesAndKeepsCart(t *testing.T) {
	ctx := context.Background()
	sessions := newFakeSessionRepo()
	carts := newFakeCartRepo()
	svc := NewSessionService(sessions, carts)

	anon, err := svc.Start(ctx)
	require.NoError(t, err)
	_, err = carts.Add(ctx, anon.ID, 1, 2)
	require.NoError(t, err)

	user := &model.User{ID: 7, Profile: &model.Profile{ID: 9}}
	session, err := svc.Login(ctx, anon, user)
	require.NoError(t, err)

	assert.NotEqual(t, anon.ID, session.ID)
	assert.Equal(t, uint(7), session.UserID)
	assert.Equal(t, uint(9), session.ProfileID)
	assert.True(t, session.IsAuthenticated())

	_, ok := sessions.sessions[anon.ID]
	assert.False(t, ok, "previous session should be dropped")
	assert.Equal(t, map[uint]int{1: 2}, carts.carts[session.ID])
	assert.NotContains(t, carts.carts, anon.ID)
}

func TestSessionService_Logout(t *testing.T) {
	ctx := context.Background()
	sessions := newFakeSessionRepo()
	carts := newFakeCartRepo()
	svc := NewSessionService(sessions, carts)

	session, err := svc.Login(ctx, nil, &model.User{ID: 1})
	require.NoError(t, err)
	_, err = carts.Add(ctx, session.ID, 3, 1)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, session))
	assert.Empty(t, sessions.sessions)
	assert.Empty(t, carts.carts)

	require.NoError(t, svc.Logout(ctx, nil))
}
