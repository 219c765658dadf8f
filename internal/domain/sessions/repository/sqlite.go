package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IT-Nick/quizbot/internal/domain/model"
	_ "github.com/mattn/go-sqlite3"
)

// SQLiteRepository хранит сессии в локальной базе SQLite
type SQLiteRepository struct {
	db *sql.DB
}

// OpenSQLiteRepository открывает базу по указанному пути и создает таблицы
func OpenSQLiteRepository(ctx context.Context, dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	repo := &SQLiteRepository{db: db}
	if err := repo.CreateTables(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return repo, nil
}

// Close закрывает соединение с базой
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// CreateTables создает таблицу сессий, если ее еще нет
func (r *SQLiteRepository) CreateTables(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS quiz_sessions (
			id TEXT PRIMARY KEY,
			status TEXT NOT NULL DEFAULT 'not_started',
			current_question_id INTEGER NOT NULL DEFAULT -1,
			answers TEXT NOT NULL DEFAULT '{}',
			updated_at DATETIME NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("failed to create quiz_sessions table: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Get(ctx context.Context, id string) (*model.Session, error) {
	var (
		session model.Session
		status  string
		answers string
	)
	err := r.db.QueryRowContext(ctx,
		"SELECT id, status, current_question_id, answers, updated_at FROM quiz_sessions WHERE id = ?",
		id,
	).Scan(&session.ID, &status, &session.CurrentQuestionID, &answers, &session.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.NewSession(id), nil
		}
		return nil, fmt.Errorf("failed to get session %s: %w", id, err)
	}

	session.Status = model.SessionStatus(status)
	session.Answers = make(map[int]string)
	if err := json.Unmarshal([]byte(answers), &session.Answers); err != nil {
		return nil, fmt.Errorf("failed to decode answers of session %s: %w", id, err)
	}
	return &session, nil
}

func (r *SQLiteRepository) Save(ctx context.Context, session *model.Session) error {
	if session == nil || session.ID == "" {
		return ErrInvalidSession
	}

	answers, err := json.Marshal(session.Answers)
	if err != nil {
		return fmt.Errorf("failed to encode answers: %w", err)
	}

	session.UpdatedAt = time.Now().UTC()
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO quiz_sessions (id, status, current_question_id, answers, updated_at) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			status = excluded.status,
			current_question_id = excluded.current_question_id,
			answers = excluded.answers,
			updated_at = excluded.updated_at`,
		session.ID, string(session.Status), session.CurrentQuestionID, string(answers), session.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save session %s: %w", session.ID, err)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM quiz_sessions WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete session %s: %w", id, err)
	}
	return nil
}
