package auth

import (
	"bookshelf_backend/internal/model"
	"bookshelf_backend/internal/repository"
	"bookshelf_backend/internal/repository/memory_repo"
	"bookshelf_backend/internal/service"
	"bookshelf_backend/pkg/pass"
	"bookshelf_backend/pkg/token"
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var (
	testSecret = []byte("0123456789abcdef0123456789abcdef")
	errBoom    = errors.New("boom")
)

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func newClock() *clock {
	return &clock{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type jwtConfig struct {
	access, refresh time.Duration
}

func (j jwtConfig) AccessTokenSecretKey() []byte        { return testSecret }
func (j jwtConfig) AccessTokenDuration() time.Duration  { return j.access }
func (j jwtConfig) RefreshTokenDuration() time.Duration { return j.refresh }

type fixture struct {
	svc      service.AuthService
	users    *memory_repo.Users
	sessions *memory_repo.Sessions
	codec    *token.Codec
	clock    *clock
	logs     *bytes.Buffer
}

type option func(*Deps)

func withRefreshTTL(d time.Duration) option {
	return func(deps *Deps) {
		deps.JWTConfig = jwtConfig{access: 15 * time.Minute, refresh: d}
	}
}

func newFixture(t *testing.T, opts ...option) *fixture {
	t.Helper()

	f := &fixture{
		users:    memory_repo.NewUserRepository(),
		sessions: memory_repo.NewSessionRepository(),
		clock:    newClock(),
		logs:     &bytes.Buffer{},
	}
	f.codec = token.NewCodec(testSecret, token.WithClock(f.clock.Now))

	deps := Deps{
		TxManager:   memory_repo.TxManager{},
		UserRepo:    f.users,
		SessionRepo: f.sessions,
		Codec:       f.codec,
		JWTConfig:   jwtConfig{access: 15 * time.Minute, refresh: 7 * 24 * time.Hour},
		Log:         slog.New(slog.NewJSONHandler(f.logs, &slog.HandlerOptions{Level: slog.LevelDebug})),
		Now:         f.clock.Now,
	}
	for _, opt := range opts {
		opt(&deps)
	}
	f.svc = NewService(deps)

	return f
}

func (f *fixture) addUser(t *testing.T, id, password string) {
	t.Helper()

	hash, err := pass.HashPassword(password)
	require.NoError(t, err)
	require.NoError(t, f.users.CreateUser(context.Background(), &model.User{ID: id, Name: id, PasswordHash: hash}))
}

func (f *fixture) login(t *testing.T, id, password string) *model.AuthData {
	t.Helper()

	data, err := f.svc.Login(context.Background(), model.Credentials{ID: id, Password: password})
	require.NoError(t, err)
	return data
}

// failingUsers - обёртка, у которой можно сломать отдельные методы
type failingUsers struct {
	repository.UserRepository
	getErr    error
	deleteErr error
	updateErr error
}

func (u *failingUsers) GetUser(ctx context.Context, id string) (*model.User, error) {
	if u.getErr != nil {
		return nil, u.getErr
	}
	return u.UserRepository.GetUser(ctx, id)
}

func (u *failingUsers) DeleteUser(ctx context.Context, id string) error {
	if u.deleteErr != nil {
		return u.deleteErr
	}
	return u.UserRepository.DeleteUser(ctx, id)
}

func (u *failingUsers) UpdateUser(ctx context.Context, user *model.User) error {
	if u.updateErr != nil {
		return u.updateErr
	}
	return u.UserRepository.UpdateUser(ctx, user)
}

type failingSessions struct {
	repository.SessionRepository
	upsertErr error
	getErr    error
	deleteErr error
}

func (s *failingSessions) UpsertSession(ctx context.Context, session *model.Session) error {
	if s.upsertErr != nil {
		return s.upsertErr
	}
	return s.SessionRepository.UpsertSession(ctx, session)
}

func (s *failingSessions) GetSession(ctx context.Context, userID string) (*model.Session, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.SessionRepository.GetSession(ctx, userID)
}

func (s *failingSessions) DeleteSession(ctx context.Context, userID string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	return s.SessionRepository.DeleteSession(ctx, userID)
}
