package model

type User struct {
	ID           string
	Name         string
	PasswordHash string
	APIKey       *string // nil, если ключ не выдавали
}

// ProfileUpdate - изменяемые поля профиля, пустые строки игнорируются
type ProfileUpdate struct {
	Name     string
	Password string
	APIKey   string
}

// UserInfo - публичная часть пользователя, без хэша пароля
type UserInfo struct {
	ID     string
	Name   string
	APIKey *string
}
