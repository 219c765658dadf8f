package repository

import (
	"context"
	"errors"

	"github.com/IT-Nick/quizbot/internal/domain/model"
)

// Типы хранилищ сессий
const (
	StorageMemory   = "memory"
	StorageJSON     = "json"
	StoragePostgres = "postgres"
	StorageSQLite   = "sqlite"
)

// ErrInvalidSession возвращается при попытке сохранить сессию без идентификатора
var ErrInvalidSession = errors.New("session id is required")

// Repository определяет интерфейс хранилища сессий викторины.
// Get возвращает новую не начатую сессию, если сохраненной нет.
type Repository interface {
	Get(ctx context.Context, id string) (*model.Session, error)
	Save(ctx context.Context, session *model.Session) error
	Delete(ctx context.Context, id string) error
}
