package model

import "time"

// Session - refresh-запись пользователя, у пользователя не больше одной
type Session struct {
	UserID       string
	RefreshToken string
	ExpiresAt    int64 // unix millis
}

// Expired - запись действительна, пока ExpiresAt строго больше now
func (s *Session) Expired(now time.Time) bool {
	return s.ExpiresAt <= now.UnixMilli()
}
