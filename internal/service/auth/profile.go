package auth

import (
	"bookshelf_backend/internal/model"
	"bookshelf_backend/internal/repository"
	"bookshelf_backend/pkg/pass"
	"context"
	"errors"
	"strings"
)

// UpdateProfile - меняет только непустые поля, сессию не трогает
func (s *serv) UpdateProfile(ctx context.Context, accessToken string, upd model.ProfileUpdate) (err error) {
	defer s.observe("update_profile", &err)

	userID, err := s.subject(accessToken)
	if err != nil {
		return err
	}

	user, err := s.loadUser(ctx, "auth.update.get_user", userID)
	if err != nil {
		return err
	}

	if !isBlank(upd.Name) {
		user.Name = strings.TrimSpace(upd.Name)
	}
	if !isBlank(upd.Password) {
		hash, err := pass.HashPassword(upd.Password)
		if err != nil {
			return s.internal(ctx, "auth.update.hash", err)
		}
		user.PasswordHash = hash
	}
	if !isBlank(upd.APIKey) {
		key := upd.APIKey
		user.APIKey = &key
	}

	err = s.userRepo.UpdateUser(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errUserNotFound
		}
		return s.internal(ctx, "auth.update.save", err)
	}

	s.log.InfoContext(ctx, "auth.update.ok", "user_id", userID)
	return nil
}

// APIKey - API ключ пользователя, BadRequest если ключ не выдавали
func (s *serv) APIKey(ctx context.Context, accessToken string) (_ string, err error) {
	defer s.observe("api_key", &err)

	userID, err := s.subject(accessToken)
	if err != nil {
		return "", err
	}

	user, err := s.loadUser(ctx, "auth.api_key.get_user", userID)
	if err != nil {
		return "", err
	}

	if user.APIKey == nil || isBlank(*user.APIKey) {
		return "", badRequest("api key is not registered")
	}
	return *user.APIKey, nil
}

// UserInfo - публичные данные пользователя
func (s *serv) UserInfo(ctx context.Context, accessToken string) (_ *model.UserInfo, err error) {
	defer s.observe("user_info", &err)

	userID, err := s.subject(accessToken)
	if err != nil {
		return nil, err
	}

	user, err := s.loadUser(ctx, "auth.user_info.get_user", userID)
	if err != nil {
		return nil, err
	}

	return &model.UserInfo{
		ID:     user.ID,
		Name:   user.Name,
		APIKey: user.APIKey,
	}, nil
}

// ValidateAccessToken - проверяет access токен и возвращает ID пользователя
func (s *serv) ValidateAccessToken(_ context.Context, accessToken string) (_ string, err error) {
	defer s.observe("validate", &err)

	return s.subject(accessToken)
}

func (s *serv) loadUser(ctx context.Context, event, userID string) (*model.User, error) {
	user, err := s.userRepo.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errUserNotFound
		}
		return nil, s.internal(ctx, event, err)
	}
	return user, nil
}
