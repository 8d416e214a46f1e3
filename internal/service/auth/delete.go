package auth

import (
	"bookshelf_backend/internal/repository"
	"bookshelf_backend/pkg/pass"
	"context"
	"errors"
	"fmt"
)

// DeleteAccount - удаляет refresh-запись и пользователя.
// Плохой токен, отсутствующий пользователь и неверный пароль дают одну и ту же ошибку.
func (s *serv) DeleteAccount(ctx context.Context, accessToken, password string) (err error) {
	defer s.observe("delete_account", &err)

	if isBlank(password) {
		return badRequest("password is required")
	}

	userID, err := s.subject(accessToken)
	if err != nil {
		s.log.InfoContext(ctx, "auth.delete.rejected", "reason", "token", "err", err)
		return errAccountNotFound
	}

	user, err := s.userRepo.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			s.log.InfoContext(ctx, "auth.delete.rejected", "reason", "user", "user_id", userID)
			return errAccountNotFound
		}
		return s.internal(ctx, "auth.delete.get_user", err)
	}

	if !pass.VerifyPassword(user.PasswordHash, password) {
		s.log.InfoContext(ctx, "auth.delete.rejected", "reason", "password", "user_id", userID)
		return errAccountNotFound
	}

	// Сначала сессия, потом пользователь. В Postgres обе операции в одной транзакции,
	// при внешнем хранилище сессий сессия может уже исчезнуть - это пишем в лог.
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.sessionRepo.DeleteSession(ctx, userID); err != nil {
			return fmt.Errorf("delete session: %w", err)
		}
		if err := s.userRepo.DeleteUser(ctx, userID); err != nil {
			s.logUserDeleteFailure(ctx, userID, err)
			return fmt.Errorf("delete user: %w", err)
		}
		return nil
	})
	if err != nil {
		return s.internal(ctx, "auth.delete.fail", err)
	}

	s.log.InfoContext(ctx, "auth.delete.ok", "user_id", userID)
	return nil
}

func (s *serv) logUserDeleteFailure(ctx context.Context, userID string, err error) {
	if s.sessionsInTx {
		s.log.WarnContext(ctx, "auth.delete.rolled_back",
			"user_id", userID,
			"detail", "user delete failed, session delete rolled back",
			"err", err)
		return
	}
	s.log.ErrorContext(ctx, "auth.delete.inconsistent",
		"user_id", userID,
		"detail", "session deleted, user delete failed",
		"err", err)
}
