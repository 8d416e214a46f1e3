package middleware

import (
	"bookshelf_backend/pkg/resp"
	"bookshelf_backend/pkg/token"
	"context"
	"log/slog"
	"net/http"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// Verifier - проверка access токена, возвращает ID пользователя
type Verifier interface {
	Verify(token string) (string, error)
}

// AuthGate - без заголовка Authorization или без префикса Bearer запрос
// идёт дальше анонимно. Невалидный токен - сразу 401.
// Валидный - ID пользователя кладётся в контекст.
func AuthGate(v Verifier, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := token.FromHeader(r.Header.Get("Authorization"))
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			userID, err := v.Verify(raw)
			if err != nil {
				log.InfoContext(r.Context(), "auth.gate.reject", "path", r.URL.Path, "err", err)
				resp.Error(w, http.StatusUnauthorized, "invalid token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

// RequireUser - 401 для анонимных запросов
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := UserID(r.Context()); !ok {
			resp.Error(w, http.StatusUnauthorized, "authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserID - ID пользователя, проставленный AuthGate
func UserID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(userIDKey).(string)
	return v, ok
}
