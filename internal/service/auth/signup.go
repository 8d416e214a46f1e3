package auth

import (
	"bookshelf_backend/internal/model"
	"bookshelf_backend/internal/repository"
	"bookshelf_backend/internal/service"
	"bookshelf_backend/pkg/pass"
	"context"
	"errors"
	"strings"
)

// Signup - регистрирует пользователя, API ключ необязателен
func (s *serv) Signup(ctx context.Context, req model.Signup) (err error) {
	defer s.observe("signup", &err)

	if isBlank(req.ID) || isBlank(req.Password) {
		return badRequest("id and password are required")
	}

	// Хэширование пароля
	hash, err := pass.HashPassword(req.Password)
	if err != nil {
		return s.internal(ctx, "auth.signup.hash", err)
	}

	user := &model.User{
		ID:           req.ID,
		Name:         strings.TrimSpace(req.Name),
		PasswordHash: hash,
	}
	if !isBlank(req.APIKey) {
		key := req.APIKey
		user.APIKey = &key
	}

	err = s.userRepo.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			return service.NewError(service.ErrConflict, "user already exists", err)
		}
		return s.internal(ctx, "auth.signup.create", err)
	}

	s.log.InfoContext(ctx, "auth.signup.ok", "user_id", user.ID, "api_key", user.APIKey != nil)
	return nil
}
