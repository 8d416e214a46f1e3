package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_IsKindAndCause(t *testing.T) {
	cause := errors.New("token is expired")
	err := NewError(ErrUnauthorized, "invalid token", cause)

	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "invalid token: token is expired", err.Error())

	wrapped := fmt.Errorf("handler: %w", err)
	assert.ErrorIs(t, wrapped, ErrUnauthorized)
	assert.Equal(t, "invalid token", Message(wrapped))
}

func TestKindName(t *testing.T) {
	assert.Equal(t, "ok", KindName(nil))
	assert.Equal(t, "no_session", KindName(NewError(ErrNoSession, "no session", nil)))
	assert.Equal(t, "token_mismatch", KindName(NewError(ErrTokenMismatch, "mismatch", nil)))
	assert.Equal(t, "internal", KindName(errors.New("plain")))
}

func TestMessage_HidesInternalDetails(t *testing.T) {
	err := NewError(ErrInternal, "db exploded at 10.0.0.5", errors.New("dial tcp"))
	assert.Equal(t, internalMessage, Message(err))
	assert.Equal(t, internalMessage, Message(errors.New("plain")))
	assert.Equal(t, "user not found", Message(NewError(ErrNotFound, "user not found", nil)))
}
