package auth

import (
	"context"
)

// Logout - удаляет refresh-запись. Сам access токен остаётся валидным до истечения.
func (s *serv) Logout(ctx context.Context, accessToken string) (err error) {
	defer s.observe("logout", &err)

	if isBlank(accessToken) {
		return badRequest("token is required")
	}

	userID, err := s.subject(accessToken)
	if err != nil {
		return err
	}

	err = s.sessionRepo.DeleteSession(ctx, userID)
	if err != nil {
		return s.internal(ctx, "auth.logout.delete_session", err)
	}

	s.log.InfoContext(ctx, "auth.logout.ok", "user_id", userID)
	return nil
}
