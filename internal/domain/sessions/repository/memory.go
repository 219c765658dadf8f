package repository

import (
	"context"
	"sync"
	"time"

	"github.com/IT-Nick/quizbot/internal/domain/model"
)

// MemoryRepository хранит сессии в памяти процесса. Данные теряются при рестарте.
type MemoryRepository struct {
	data map[string]*model.Session
	mu   sync.RWMutex
}

// NewMemoryRepository создает новый экземпляр MemoryRepository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{data: make(map[string]*model.Session)}
}

func (m *MemoryRepository) Get(_ context.Context, id string) (*model.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	session, ok := m.data[id]
	if !ok {
		return model.NewSession(id), nil
	}
	return session.Clone(), nil
}

func (m *MemoryRepository) Save(_ context.Context, session *model.Session) error {
	if session == nil || session.ID == "" {
		return ErrInvalidSession
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	session.UpdatedAt = time.Now()
	m.data[session.ID] = session.Clone()
	return nil
}

func (m *MemoryRepository) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, id)
	return nil
}
