package answer_handler

import (
	"context"

	"github.com/IT-Nick/quizbot/internal/app/handlers/telegram"
	quizService "github.com/IT-Nick/quizbot/internal/domain/quiz/service"
	"gopkg.in/telebot.v4"
)

// AnswerHandler обрабатывает любой текст пользователя как очередной ход викторины
type AnswerHandler struct {
	quizService *quizService.QuizService
}

// NewAnswerHandler возвращает структуру обработчика
func NewAnswerHandler(quizService *quizService.QuizService) *AnswerHandler {
	return &AnswerHandler{quizService: quizService}
}

// Handle передает текст сообщения в викторину и отправляет ответы бота
func (h *AnswerHandler) Handle(c telebot.Context) error {
	ctx := context.Background()

	responses, err := h.quizService.Reply(ctx, telegram.SessionID(c), c.Text())
	if err != nil {
		return telegram.Fail(c, "answer_handler.Handle", err)
	}

	return telegram.SendAll(c, responses)
}

// GetHandlerFunc возвращает обработчик в формате telebot.HandlerFunc
func (h *AnswerHandler) GetHandlerFunc() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return h.Handle(c)
	}
}
