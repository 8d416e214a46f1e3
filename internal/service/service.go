package service

import (
	"bookshelf_backend/internal/model"
	"context"
)

// AuthService - вход, выход, обновление access токена и управление учётной записью.
// Все ошибки имеют тип *Error, вид ошибки проверяется через errors.Is.
type AuthService interface {
	Signup(ctx context.Context, req model.Signup) error
	Login(ctx context.Context, creds model.Credentials) (*model.AuthData, error)
	Refresh(ctx context.Context, refreshToken string) (accessToken string, err error)
	Logout(ctx context.Context, accessToken string) error
	UpdateProfile(ctx context.Context, accessToken string, upd model.ProfileUpdate) error
	DeleteAccount(ctx context.Context, accessToken, password string) error

	ValidateAccessToken(ctx context.Context, accessToken string) (userID string, err error)
	APIKey(ctx context.Context, accessToken string) (string, error)
	UserInfo(ctx context.Context, accessToken string) (*model.UserInfo, error)
}
