package middleware

import (
	"log"

	"gopkg.in/telebot.v4"
)

// Logger логирует каждое входящее обновление: номер, чат, отправителя и текст.
func Logger(logger *log.Logger) telebot.MiddlewareFunc {
	return func(next telebot.HandlerFunc) telebot.HandlerFunc {
		return func(c telebot.Context) error {
			var chatID, senderID int64
			if chat := c.Chat(); chat != nil {
				chatID = chat.ID
			}
			if sender := c.Sender(); sender != nil {
				senderID = sender.ID
			}
			logger.Printf("update %d: chat=%d sender=%d text=%q", c.Update().ID, chatID, senderID, c.Text())
			return next(c)
		}
	}
}
