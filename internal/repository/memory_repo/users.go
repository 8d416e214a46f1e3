// Package memory_repo - хранилища в памяти процесса, для запуска без БД и для тестов.
package memory_repo

import (
	"bookshelf_backend/internal/model"
	"bookshelf_backend/internal/repository"
	"context"
	"sync"
)

type Users struct {
	mu    sync.RWMutex
	users map[string]model.User
}

func NewUserRepository() *Users {
	return &Users{users: make(map[string]model.User)}
}

func (r *Users) CreateUser(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.ID]; ok {
		return repository.ErrUserExists
	}
	r.users[user.ID] = copyUser(*user)
	return nil
}

func (r *Users) GetUser(_ context.Context, id string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	u = copyUser(u)
	return &u, nil
}

func (r *Users) UpdateUser(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.ID]; !ok {
		return repository.ErrUserNotFound
	}
	r.users[user.ID] = copyUser(*user)
	return nil
}

func (r *Users) DeleteUser(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return repository.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func copyUser(u model.User) model.User {
	if u.APIKey != nil {
		key := *u.APIKey
		u.APIKey = &key
	}
	return u
}
