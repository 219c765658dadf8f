package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/IT-Nick/quizbot/internal/domain/model"
)

// JSONRepository сохраняет все сессии в один JSON-файл.
// Файл целиком перечитывается и перезаписывается при каждой операции.
type JSONRepository struct {
	filename string
	mu       sync.Mutex
}

// NewJSONRepository создает JSONRepository и пустой файл, если его еще нет
func NewJSONRepository(filename string) (*JSONRepository, error) {
	const op = "repository.NewJSONRepository"

	if _, err := os.Stat(filename); os.IsNotExist(err) {
		if dir := filepath.Dir(filename); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("%s: failed to create directory: %w", op, err)
			}
		}
		if err := os.WriteFile(filename, []byte("{}"), 0644); err != nil {
			return nil, fmt.Errorf("%s: failed to create file %s: %w", op, filename, err)
		}
	}
	return &JSONRepository{filename: filename}, nil
}

// load вызывается под мьютексом
func (j *JSONRepository) load() (map[string]*model.Session, error) {
	data, err := os.ReadFile(j.filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", j.filename, err)
	}
	m := make(map[string]*model.Session)
	if len(data) == 0 {
		return m, nil
	}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", j.filename, err)
	}
	return m, nil
}

// save вызывается под мьютексом
func (j *JSONRepository) save(m map[string]*model.Session) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode sessions: %w", err)
	}
	if err := os.WriteFile(j.filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", j.filename, err)
	}
	return nil
}

func (j *JSONRepository) Get(_ context.Context, id string) (*model.Session, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	m, err := j.load()
	if err != nil {
		return nil, err
	}
	session, ok := m[id]
	if !ok {
		return model.NewSession(id), nil
	}
	if session.Answers == nil {
		session.Answers = make(map[int]string)
	}
	return session, nil
}

func (j *JSONRepository) Save(_ context.Context, session *model.Session) error {
	if session == nil || session.ID == "" {
		return ErrInvalidSession
	}
	j.mu.Lock()
	defer j.mu.Unlock()

	m, err := j.load()
	if err != nil {
		return err
	}
	session.UpdatedAt = time.Now()
	m[session.ID] = session.Clone()
	return j.save(m)
}

func (j *JSONRepository) Delete(_ context.Context, id string) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	m, err := j.load()
	if err != nil {
		return err
	}
	delete(m, id)
	return j.save(m)
}
