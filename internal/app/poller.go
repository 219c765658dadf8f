package app

import (
	"time"

	"github.com/IT-Nick/quizbot/internal/infra/config"
	"gopkg.in/telebot.v4"
)

// NewPoller создает Poller в зависимости от режима работы бота.
// Наличие webhook_url в режиме webhook проверяется в config.Validate.
func NewPoller(cfg *config.Config) telebot.Poller {
	if cfg.TelegramBot.Mode == config.ModeWebhook {
		return &telebot.Webhook{
			Listen: cfg.TelegramBot.ListenAddr,
			Endpoint: &telebot.WebhookEndpoint{
				PublicURL: cfg.TelegramBot.WebhookURL,
			},
		}
	}
	return &telebot.LongPoller{Timeout: time.Duration(cfg.TelegramBot.PollTimeout) * time.Second}
}
