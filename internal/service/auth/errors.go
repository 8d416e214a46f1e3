package auth

import "bookshelf_backend/internal/service"

var (
	errInvalidCredentials = service.NewError(service.ErrInvalidCredentials, "invalid id or password", nil)
	errMissingToken       = service.NewError(service.ErrUnauthorized, "token is required", nil)
	errInvalidToken       = service.NewError(service.ErrUnauthorized, "invalid token", nil)
	errUserNotFound       = service.NewError(service.ErrNotFound, "user not found", nil)

	// errAccountNotFound - один и тот же ответ на плохой токен, неизвестного
	// пользователя и неверный пароль при удалении аккаунта
	errAccountNotFound = service.NewError(service.ErrNotFound, "user not found", nil)
)

func badRequest(message string) error {
	return service.NewError(service.ErrBadRequest, message, nil)
}
