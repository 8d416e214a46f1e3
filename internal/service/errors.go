package service

import (
	"errors"
)

// Виды ошибок сервиса
var (
	ErrBadRequest         = errors.New("bad request")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrTokenMismatch      = errors.New("refresh token mismatch")
	ErrSessionExpired     = errors.New("session expired")
	ErrNoSession          = errors.New("no session")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrInternal           = errors.New("internal error")
)

var kinds = []struct {
	kind error
	name string
}{
	{ErrBadRequest, "bad_request"},
	{ErrInvalidCredentials, "invalid_credentials"},
	{ErrUnauthorized, "unauthorized"},
	{ErrTokenMismatch, "token_mismatch"},
	{ErrSessionExpired, "session_expired"},
	{ErrNoSession, "no_session"},
	{ErrNotFound, "not_found"},
	{ErrConflict, "conflict"},
	{ErrInternal, "internal"},
}

const internalMessage = "internal server error"

// Error - ошибка сервиса: вид, сообщение для клиента и причина
type Error struct {
	Kind    error
	Message string
	Err     error
}

func NewError(kind error, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Err: cause}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

// KindName - короткое имя вида ошибки для логов и метрик, "ok" для nil
func KindName(err error) string {
	if err == nil {
		return "ok"
	}
	for _, k := range kinds {
		if errors.Is(err, k.kind) {
			return k.name
		}
	}
	return "internal"
}

// Message - текст ошибки, который можно отдать клиенту
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) && !errors.Is(e.Kind, ErrInternal) {
		return e.Message
	}
	return internalMessage
}
