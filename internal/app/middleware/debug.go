package middleware

import (
	"context"
	"log"

	"github.com/IT-Nick/quizbot/internal/app/handlers/telegram"
	"github.com/IT-Nick/quizbot/internal/domain/model"
	"gopkg.in/telebot.v4"
)

// SessionLookup возвращает текущее состояние сессии викторины
type SessionLookup interface {
	Session(ctx context.Context, sessionID string) (*model.Session, error)
}

// DebugSessionState возвращает middleware, которое после обработки обновления логирует
// пользователя, его действие и состояние сессии викторины.
func DebugSessionState(logger *log.Logger, sessions SessionLookup) telebot.MiddlewareFunc {
	return func(next telebot.HandlerFunc) telebot.HandlerFunc {
		return func(c telebot.Context) error {
			err := next(c)

			action := "Unknown action"
			if msg := c.Message(); msg != nil {
				action = "Message: " + msg.Text
			}

			sessionID := telegram.SessionID(c)
			session, lookupErr := sessions.Session(context.Background(), sessionID)
			if lookupErr != nil {
				logger.Printf("DEBUG: session %s: %v", sessionID, lookupErr)
				return err
			}

			var name string
			var userID int64
			if user := c.Sender(); user != nil {
				name, userID = user.FirstName, user.ID
			}
			logger.Printf("DEBUG: User: %s (ID: %d), Session: %s, Status: %s, Question: %d, Answers: %d, Action: %s",
				name, userID, sessionID, session.Status, session.CurrentQuestionID, len(session.Answers), action)
			return err
		}
	}
}
