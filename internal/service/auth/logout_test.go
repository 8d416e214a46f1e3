package auth

import (
	"bookshelf_backend/internal/service"
	"bookshelf_backend/pkg/token"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogout_EndsRefreshButNotAccess(t *testing.T) {
	f := newFixture(t)
	f.addUser(t, "alice", "x")
	data := f.login(t, "alice", "x")

	require.NoError(t, f.svc.Logout(context.Background(), data.AccessToken))
	assert.Zero(t, f.sessions.Count())

	_, err := f.svc.Refresh(context.Background(), data.RefreshToken)
	require.ErrorIs(t, err, service.ErrNoSession)

	sub, err := f.codec.Verify(data.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "alice", sub)

	_, err = f.svc.UserInfo(context.Background(), data.AccessToken)
	require.NoError(t, err)
}

func TestLogout_Idempotent(t *testing.T) {
	f := newFixture(t)
	f.addUser(t, "alice", "x")
	data := f.login(t, "alice", "x")

	require.NoError(t, f.svc.Logout(context.Background(), data.AccessToken))
	require.NoError(t, f.svc.Logout(context.Background(), data.AccessToken))
}

func TestLogout_Errors(t *testing.T) {
	f := newFixture(t)

	require.ErrorIs(t, f.svc.Logout(context.Background(), ""), service.ErrBadRequest)

	err := f.svc.Logout(context.Background(), "garbage")
	require.ErrorIs(t, err, service.ErrUnauthorized)
	require.ErrorIs(t, err, token.ErrMalformed)

	expired, err := f.codec.Issue("alice", time.Minute)
	require.NoError(t, err)
	f.clock.Advance(time.Hour)
	require.ErrorIs(t, f.svc.Logout(context.Background(), expired), service.ErrUnauthorized)
}

func TestLogout_StoreFailureIsInternal(t *testing.T) {
	f := newFixture(t, func(deps *Deps) {
		deps.SessionRepo = &failingSessions{SessionRepository: deps.SessionRepo, deleteErr: errBoom}
	})

	tok, err := f.codec.Issue("alice", time.Hour)
	require.NoError(t, err)
	require.ErrorIs(t, f.svc.Logout(context.Background(), tok), service.ErrInternal)
}
