package app

import (
	"context"
	"fmt"
	"log"

	"github.com/IT-Nick/quizbot/internal/domain/sessions/repository"
	"github.com/IT-Nick/quizbot/internal/infra/config"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InitDatabase устанавливает подключение к базе данных
func InitDatabase(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	const op = "app.InitDatabase"

	connConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL())
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse database config: %w", op, err)
	}

	db, err := pgxpool.NewWithConfig(ctx, connConfig)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create database pool: %w", op, err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: failed to ping database: %w", op, err)
	}

	log.Println("Database connected successfully!")
	return db, nil
}

// InitSessionRepository создает хранилище сессий выбранного в конфигурации типа.
// Возвращаемая функция освобождает ресурсы хранилища.
func InitSessionRepository(ctx context.Context, cfg *config.Config) (repository.Repository, func(), error) {
	const op = "app.InitSessionRepository"

	switch cfg.Storage.Type {
	case repository.StorageMemory:
		return repository.NewMemoryRepository(), func() {}, nil

	case repository.StorageJSON:
		repo, err := repository.NewJSONRepository(cfg.Storage.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", op, err)
		}
		return repo, func() {}, nil

	case repository.StorageSQLite:
		repo, err := repository.OpenSQLiteRepository(ctx, cfg.Storage.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", op, err)
		}
		return repo, func() {
			if err := repo.Close(); err != nil {
				log.Printf("Failed to close sqlite: %v", err)
			}
		}, nil

	case repository.StoragePostgres:
		db, err := InitDatabase(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		repo := repository.NewPostgresRepository(db)
		if err := repo.CreateTables(ctx); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("%s: %w", op, err)
		}
		return repo, db.Close, nil
	}

	return nil, nil, fmt.Errorf("%s: unknown storage type %q", op, cfg.Storage.Type)
}
