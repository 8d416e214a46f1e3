package auth

import (
	"bookshelf_backend/internal/model"
	"bookshelf_backend/internal/repository"
	"bookshelf_backend/pkg/pass"
	"bookshelf_backend/pkg/token"
	"context"
	"errors"
)

// Login - проверяет пароль, выпускает access и refresh токены
// и перезаписывает refresh-запись пользователя.
// Предыдущий refresh токен после этого не принимается.
func (s *serv) Login(ctx context.Context, creds model.Credentials) (_ *model.AuthData, err error) {
	defer s.observe("login", &err)

	if isBlank(creds.ID) || isBlank(creds.Password) {
		return nil, badRequest("id and password are required")
	}

	// Получение пользователя по логину
	user, err := s.userRepo.GetUser(ctx, creds.ID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			s.log.InfoContext(ctx, "auth.login.unknown_user", "user_id", creds.ID)
			return nil, errInvalidCredentials
		}
		return nil, s.internal(ctx, "auth.login.get_user", err)
	}

	// Верификация пароля
	if !pass.VerifyPassword(user.PasswordHash, creds.Password) {
		s.log.InfoContext(ctx, "auth.login.bad_password", "user_id", user.ID)
		return nil, errInvalidCredentials
	}

	accessToken, err := s.codec.Issue(user.ID, s.jwtConfig.AccessTokenDuration())
	if err != nil {
		return nil, s.internal(ctx, "auth.login.issue_access", err)
	}

	refreshToken, err := s.codec.Issue(user.ID, s.jwtConfig.RefreshTokenDuration())
	if err != nil {
		return nil, s.internal(ctx, "auth.login.issue_refresh", err)
	}

	// Срок записи - фиксированное окно от текущего момента, а не exp токена
	err = s.sessionRepo.UpsertSession(ctx, &model.Session{
		UserID:       user.ID,
		RefreshToken: refreshToken,
		ExpiresAt:    s.now().Add(SessionWindow).UnixMilli(),
	})
	if err != nil {
		return nil, s.internal(ctx, "auth.login.upsert_session", err)
	}

	s.log.InfoContext(ctx, "auth.login.ok", "user_id", user.ID, "refresh", token.Fingerprint(refreshToken))

	return &model.AuthData{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
