package start_handler

import (
	"context"

	"github.com/IT-Nick/quizbot/internal/app/handlers/telegram"
	quizService "github.com/IT-Nick/quizbot/internal/domain/quiz/service"
	"gopkg.in/telebot.v4"
)

// StartHandler структура для обработки команды /start
type StartHandler struct {
	quizService *quizService.QuizService
}

// NewStartHandler возвращает структуру обработчика
func NewStartHandler(quizService *quizService.QuizService) *StartHandler {
	return &StartHandler{quizService: quizService}
}

// Handle сбрасывает сессию чата и начинает викторину заново.
// Текст команды уходит в викторину как обычное сообщение, поэтому в ответ приходят приветствие и первый вопрос.
func (h *StartHandler) Handle(c telebot.Context) error {
	ctx := context.Background()
	sessionID := telegram.SessionID(c)

	if err := h.quizService.Reset(ctx, sessionID); err != nil {
		return telegram.Fail(c, "start_handler.Handle", err)
	}

	responses, err := h.quizService.Reply(ctx, sessionID, c.Text())
	if err != nil {
		return telegram.Fail(c, "start_handler.Handle", err)
	}

	return telegram.SendAll(c, responses)
}

// GetHandlerFunc возвращает обработчик в формате telebot.HandlerFunc
func (h *StartHandler) GetHandlerFunc() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return h.Handle(c)
	}
}
