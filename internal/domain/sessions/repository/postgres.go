package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IT-Nick/quizbot/internal/domain/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository хранит сессии в таблице quiz_sessions
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository создает новый экземпляр PostgresRepository
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// CreateTables создает таблицу сессий, если ее еще нет
func (r *PostgresRepository) CreateTables(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `
                CREATE TABLE IF NOT EXISTS quiz_sessions (
                        id TEXT PRIMARY KEY,
                        status TEXT NOT NULL DEFAULT 'not_started',
                        current_question_id INTEGER NOT NULL DEFAULT -1,
                        answers JSONB NOT NULL DEFAULT '{}'::jsonb,
                        updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
                )
        `)
	if err != nil {
		return fmt.Errorf("failed to create quiz_sessions table: %w", err)
	}
	return nil
}

// Get возвращает сессию по идентификатору
func (r *PostgresRepository) Get(ctx context.Context, id string) (*model.Session, error) {
	var (
		session model.Session
		status  string
		answers string
	)
	err := r.db.QueryRow(ctx, `
                SELECT id, status, current_question_id, answers::text, updated_at
                FROM quiz_sessions
                WHERE id = $1
        `, id).Scan(&session.ID, &status, &session.CurrentQuestionID, &answers, &session.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
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

// Save вставляет или обновляет сессию
func (r *PostgresRepository) Save(ctx context.Context, session *model.Session) error {
	if session == nil || session.ID == "" {
		return ErrInvalidSession
	}

	answers, err := json.Marshal(session.Answers)
	if err != nil {
		return fmt.Errorf("failed to encode answers: %w", err)
	}

	session.UpdatedAt = time.Now()
	_, err = r.db.Exec(ctx, `
                INSERT INTO quiz_sessions (id, status, current_question_id, answers, updated_at)
                VALUES ($1, $2, $3, $4::jsonb, $5)
                ON CONFLICT (id) DO UPDATE SET
                        status = EXCLUDED.status,
                        current_question_id = EXCLUDED.current_question_id,
                        answers = EXCLUDED.answers,
                        updated_at = EXCLUDED.updated_at
        `, session.ID, string(session.Status), session.CurrentQuestionID, string(answers), session.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save session %s: %w", session.ID, err)
	}
	return nil
}

// Delete удаляет сессию
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.Exec(ctx, "DELETE FROM quiz_sessions WHERE id = $1", id); err != nil {
		return fmt.Errorf("failed to delete session %s: %w", id, err)
	}
	return nil
}
