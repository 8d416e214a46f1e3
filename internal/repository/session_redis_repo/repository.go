package session_redis_repo

import (
	"bookshelf_backend/internal/model"
	"bookshelf_backend/internal/repository"
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"
)

const defaultPrefix = "session:"

type record struct {
	UserID       string `json:"user_id"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    int64  `json:"expires_at"`
}

// repo хранит запись пользователя под ключом <prefix><userID>.
// SET по одному ключу атомарен, поэтому второй записи не бывает.
// TTL не ставим: срок проверяет сервис при refresh.
type repo struct {
	client *redis.Client
	prefix string
}

func NewSessionRepository(client *redis.Client, prefix string) repository.SessionRepository {
	if prefix == "" {
		prefix = defaultPrefix
	}
	return &repo{client: client, prefix: prefix}
}

func (r *repo) key(userID string) string {
	return r.prefix + userID
}

func (r *repo) GetSession(ctx context.Context, userID string) (*model.Session, error) {
	b, err := r.client.Get(ctx, r.key(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repository.ErrSessionNotFound
		}
		return nil, err
	}

	var rec record
	if err := json.Unmarshal(b, &rec); err != nil {
		return nil, err
	}

	return &model.Session{
		UserID:       rec.UserID,
		RefreshToken: rec.RefreshToken,
		ExpiresAt:    rec.ExpiresAt,
	}, nil
}

func (r *repo) UpsertSession(ctx context.Context, session *model.Session) error {
	b, err := json.Marshal(record{
		UserID:       session.UserID,
		RefreshToken: session.RefreshToken,
		ExpiresAt:    session.ExpiresAt,
	})
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.key(session.UserID), b, 0).Err()
}

func (r *repo) DeleteSession(ctx context.Context, userID string) error {
	return r.client.Del(ctx, r.key(userID)).Err()
}
