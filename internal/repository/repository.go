package repository

import (
	"bookshelf_backend/internal/model"
	"context"
	"errors"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrUserExists      = errors.New("user already exists")
	ErrSessionNotFound = errors.New("session not found")
)

// UserRepository - хранилище учётных записей, без бизнес-логики
type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, id string) (*model.User, error)
	UpdateUser(ctx context.Context, user *model.User) error
	DeleteUser(ctx context.Context, id string) error
}

// SessionRepository - не больше одной refresh-записи на пользователя.
// UpsertSession атомарен: при гонке двух логинов остаётся запись последнего.
// DeleteSession идемпотентен.
type SessionRepository interface {
	GetSession(ctx context.Context, userID string) (*model.Session, error)
	UpsertSession(ctx context.Context, session *model.Session) error
	DeleteSession(ctx context.Context, userID string) error
}
