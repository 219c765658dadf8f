package telegram

import (
	"fmt"
	"log"

	"github.com/IT-Nick/quizbot/internal/domain/model"
	"gopkg.in/telebot.v4"
)

// FailureMessage отправляется пользователю, если ход не удалось обработать
const FailureMessage = "Something went wrong, please try again later."

// SessionID строит ключ сессии викторины для чата
func SessionID(c telebot.Context) string {
	if chat := c.Chat(); chat != nil {
		return fmt.Sprintf("%s%d", model.TelegramSessionPrefix, chat.ID)
	}
	return fmt.Sprintf("%s%d", model.TelegramSessionPrefix, c.Sender().ID)
}

// SendAll отправляет ответы бота по порядку и останавливается на первой ошибке
func SendAll(c telebot.Context, responses []string) error {
	for _, response := range responses {
		if err := c.Send(response); err != nil {
			return fmt.Errorf("failed to send response: %w", err)
		}
	}
	return nil
}

// Fail логирует ошибку хода и сообщает пользователю о сбое
func Fail(c telebot.Context, op string, err error) error {
	log.Printf("%s: %v", op, err)
	return c.Send(FailureMessage)
}
