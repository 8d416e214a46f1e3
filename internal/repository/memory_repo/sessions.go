package memory_repo

import (
	"bookshelf_backend/internal/model"
	"bookshelf_backend/internal/repository"
	"context"
	"sync"
)

// Sessions - upsert под мьютексом, последний писатель выигрывает
type Sessions struct {
	mu       sync.Mutex
	sessions map[string]model.Session
}

func NewSessionRepository() *Sessions {
	return &Sessions{sessions: make(map[string]model.Session)}
}

func (r *Sessions) GetSession(_ context.Context, userID string) (*model.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[userID]
	if !ok {
		return nil, repository.ErrSessionNotFound
	}
	return &s, nil
}

func (r *Sessions) UpsertSession(_ context.Context, session *model.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[session.UserID] = *session
	return nil
}

func (r *Sessions) DeleteSession(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, userID)
	return nil
}

// Count - число хранимых записей
func (r *Sessions) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.sessions)
}
