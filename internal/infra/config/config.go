package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/IT-Nick/quizbot/internal/domain/model"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Режимы получения обновлений Telegram
const (
	ModePolling = "polling"
	ModeWebhook = "webhook"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port string `yaml:"port"`
	} `yaml:"server"`
	TelegramBot struct {
		Token       string `yaml:"token"`
		Mode        string `yaml:"mode"`         // "polling" или "webhook"
		WebhookURL  string `yaml:"webhook_url"`  // публичный URL, нужен только в режиме webhook
		ListenAddr  string `yaml:"listen_addr"`  // адрес, на котором telebot слушает вебхуки
		PollTimeout int    `yaml:"poll_timeout"` // секунды лонгпуллинга
	} `yaml:"telegram_bot"`
	Database struct {
		Host     string `yaml:"host"`
		Port     string `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		Name     string `yaml:"dbname"`
	} `yaml:"database"`
	Storage struct {
		Type string `yaml:"type"` // memory, json, postgres, sqlite
		Path string `yaml:"path"` // файл для json и sqlite
	} `yaml:"storage"`
	WebChat struct {
		SessionSecret string `yaml:"session_secret"`
		CookieName    string `yaml:"cookie_name"`
	} `yaml:"web_chat"`
	Quiz struct {
		WelcomeMessage string           `yaml:"welcome_message"`
		QuestionsFile  string           `yaml:"questions_file"`
		Questions      []model.Question `yaml:"questions"`
	} `yaml:"quiz"`
	Debug bool `yaml:"debug"`
}

// LoadConfig читает YAML-файл, затем .env (если он существует) и переменные окружения.
// Переменные окружения имеют приоритет над файлом.
func LoadConfig(filename string) (*Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}

	defer func(f *os.File) {
		err := f.Close()
		if err != nil {
			fmt.Println("f.Close() failed ", err)
		}
	}(f)

	config := &Config{}
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(config); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", filename, err)
	}

	_ = godotenv.Load()
	config.applyEnv()
	config.applyDefaults()

	return config, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		c.TelegramBot.Token = v
	}
	if v := os.Getenv("BOT_MODE"); v != "" {
		c.TelegramBot.Mode = v
	}
	if v := os.Getenv("WEBHOOK_URL"); v != "" {
		c.TelegramBot.WebhookURL = v
	}
	if v := os.Getenv("STORAGE_TYPE"); v != "" {
		c.Storage.Type = v
	}
	if v := os.Getenv("STORAGE_PATH"); v != "" {
		c.Storage.Path = v
	}
	if v := os.Getenv("SESSION_SECRET"); v != "" {
		c.WebChat.SessionSecret = v
	}
	if v := os.Getenv("HTTP_PORT"); v != "" {
		c.Server.Port = v
	}
	if v := os.Getenv("DEBUG"); v != "" {
		if debug, err := strconv.ParseBool(v); err == nil {
			c.Debug = debug
		}
	}
}

func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == "" {
		c.Server.Port = "8080"
	}
	if c.TelegramBot.Mode == "" {
		c.TelegramBot.Mode = ModePolling
	}
	if c.TelegramBot.ListenAddr == "" {
		c.TelegramBot.ListenAddr = ":8443"
	}
	if c.TelegramBot.PollTimeout <= 0 {
		c.TelegramBot.PollTimeout = 10
	}
	if c.Storage.Type == "" {
		c.Storage.Type = "memory"
	}
	if c.Storage.Path == "" {
		switch c.Storage.Type {
		case "json":
			c.Storage.Path = "data/sessions.json"
		case "sqlite":
			c.Storage.Path = "data/quiz.db"
		}
	}
	if c.WebChat.CookieName == "" {
		c.WebChat.CookieName = "quizbot"
	}
}

// Validate проверяет, что конфигурации достаточно для запуска бота.
// Вопросы должны быть уже загружены в Quiz.Questions.
func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.Quiz.WelcomeMessage) == "" {
		errs = append(errs, errors.New("quiz.welcome_message is required"))
	}
	if len(c.Quiz.Questions) == 0 {
		errs = append(errs, errors.New("at least one quiz question is required"))
	}
	for i, q := range c.Quiz.Questions {
		if strings.TrimSpace(q.Prompt) == "" {
			errs = append(errs, fmt.Errorf("quiz question %d has empty prompt", i))
		}
	}

	switch c.Storage.Type {
	case "memory", "json", "postgres", "sqlite":
	default:
		errs = append(errs, fmt.Errorf("unknown storage type %q", c.Storage.Type))
	}

	switch c.TelegramBot.Mode {
	case ModePolling:
	case ModeWebhook:
		if c.TelegramBot.WebhookURL == "" {
			errs = append(errs, errors.New("telegram_bot.webhook_url is required in webhook mode"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown telegram mode %q", c.TelegramBot.Mode))
	}

	return errors.Join(errs...)
}

// DatabaseURL собирает строку подключения к PostgreSQL
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s",
		c.Database.User, c.Database.Password, c.Database.Host, c.Database.Port, c.Database.Name)
}
