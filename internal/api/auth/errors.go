package auth

import (
	"bookshelf_backend/internal/service"
	"bookshelf_backend/pkg/resp"
	"errors"
	"net/http"
)

var statusByKind = []struct {
	kind   error
	status int
}{
	{service.ErrBadRequest, http.StatusBadRequest},
	{service.ErrInvalidCredentials, http.StatusUnauthorized},
	{service.ErrUnauthorized, http.StatusUnauthorized},
	{service.ErrTokenMismatch, http.StatusUnauthorized},
	{service.ErrSessionExpired, http.StatusUnauthorized},
	{service.ErrNoSession, http.StatusUnauthorized},
	{service.ErrNotFound, http.StatusNotFound},
	{service.ErrConflict, http.StatusConflict},
}

// statusOf - HTTP код для ошибки сервиса, всё неизвестное - 500
func statusOf(err error) int {
	for _, s := range statusByKind {
		if errors.Is(err, s.kind) {
			return s.status
		}
	}
	return http.StatusInternalServerError
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(err)
	if status >= http.StatusInternalServerError {
		h.log.ErrorContext(r.Context(), "http.error", "path", r.URL.Path, "status", status, "err", err)
	} else {
		h.log.DebugContext(r.Context(), "http.rejected", "path", r.URL.Path, "status", status, "kind", service.KindName(err))
	}
	resp.Error(w, status, service.Message(err))
}
