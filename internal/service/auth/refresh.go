package auth

import (
	"bookshelf_backend/internal/repository"
	"bookshelf_backend/internal/service"
	"bookshelf_backend/pkg/token"
	"context"
	"errors"
)

// Refresh - выпускает новый access токен по refresh токену.
// Refresh токен и его запись не меняются.
func (s *serv) Refresh(ctx context.Context, refreshToken string) (_ string, err error) {
	defer s.observe("refresh", &err)

	if isBlank(refreshToken) {
		return "", badRequest("refresh token is required")
	}

	userID, err := s.codec.Verify(refreshToken)
	if err != nil {
		return "", service.NewError(service.ErrUnauthorized, "invalid refresh token", err)
	}
	if isBlank(userID) {
		return "", service.NewError(service.ErrUnauthorized, "invalid refresh token", nil)
	}

	// Получение refresh-записи пользователя
	session, err := s.sessionRepo.GetSession(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return "", service.NewError(service.ErrNoSession, "no active session", nil)
		}
		return "", s.internal(ctx, "auth.refresh.get_session", err)
	}

	// Принимается только последний выданный токен
	if !token.Equal(session.RefreshToken, refreshToken) {
		s.log.InfoContext(ctx, "auth.refresh.mismatch", "user_id", userID, "refresh", token.Fingerprint(refreshToken))
		return "", service.NewError(service.ErrTokenMismatch, "refresh token does not match", nil)
	}

	if session.Expired(s.now()) {
		return "", service.NewError(service.ErrSessionExpired, "session expired", nil)
	}

	accessToken, err := s.codec.Issue(userID, s.jwtConfig.AccessTokenDuration())
	if err != nil {
		return "", s.internal(ctx, "auth.refresh.issue_access", err)
	}

	s.log.InfoContext(ctx, "auth.refresh.ok", "user_id", userID)
	return accessToken, nil
}
