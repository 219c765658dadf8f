package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/IT-Nick/quizbot/internal/app/handlers/http/message_handler"
	"github.com/IT-Nick/quizbot/internal/app/handlers/http/reset_session_handler"
	"github.com/IT-Nick/quizbot/internal/app/handlers/http/session_report_handler"
	"github.com/IT-Nick/quizbot/internal/app/handlers/http/web_chat_handler"
	"github.com/IT-Nick/quizbot/internal/app/handlers/telegram"
	"github.com/IT-Nick/quizbot/internal/app/handlers/telegram/answer_handler"
	"github.com/IT-Nick/quizbot/internal/app/handlers/telegram/report_handler"
	"github.com/IT-Nick/quizbot/internal/app/handlers/telegram/start_handler"
	"github.com/IT-Nick/quizbot/internal/app/middleware"
	"github.com/IT-Nick/quizbot/internal/domain/model"
	questionsRepo "github.com/IT-Nick/quizbot/internal/domain/questions/repository"
	quizService "github.com/IT-Nick/quizbot/internal/domain/quiz/service"
	sessionsRepo "github.com/IT-Nick/quizbot/internal/domain/sessions/repository"
	"github.com/IT-Nick/quizbot/internal/infra/config"
	"github.com/gorilla/sessions"
	"gopkg.in/telebot.v4"
)

type Services struct {
	quizService *quizService.QuizService
}

type App struct {
	config *config.Config
	logger *log.Logger
	bot    *telebot.Bot
	server *http.Server

	sessions     sessionsRepo.Repository
	closeStorage func()
	cookies      sessions.Store

	Services
}

func NewApp(ctx context.Context, configPath string) (*App, error) {
	configImpl, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("config.LoadConfig: %w", err)
	}

	if configImpl.Quiz.QuestionsFile != "" {
		questions, err := questionsRepo.LoadQuestions(configImpl.Quiz.QuestionsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load questions: %w", err)
		}
		configImpl.Quiz.Questions = questions
	}

	if err := configImpl.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	repo, closeStorage, err := InitSessionRepository(ctx, configImpl)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session storage: %w", err)
	}

	secret := configImpl.WebChat.SessionSecret
	if secret == "" {
		log.Println("web_chat.session_secret is not set, using an insecure development secret")
		secret = "quizbot-dev-secret"
	}

	app := &App{
		config:       configImpl,
		logger:       log.New(os.Stdout, "[quizbot] ", log.LstdFlags),
		sessions:     repo,
		closeStorage: closeStorage,
		cookies:      web_chat_handler.NewCookieStore(secret),
	}

	app.initServices()

	app.server = &http.Server{
		Addr:    fmt.Sprintf("%s:%s", configImpl.Server.Host, configImpl.Server.Port),
		Handler: app.routes(),
	}

	return app, nil
}

// Функция для инициализации сервисов
func (app *App) initServices() {
	prompts, answerKey := model.SplitQuestions(app.config.Quiz.Questions)

	app.quizService = quizService.NewQuizService(app.sessions, app.config.Quiz.WelcomeMessage, prompts, answerKey)
}

// ListenAndServeTelegram запускает Telegram бота, если задан токен
func (app *App) ListenAndServeTelegram() error {
	if app.config.TelegramBot.Token == "" {
		log.Println("Telegram token is not set, Telegram bot is disabled")
		return nil
	}

	bot, err := telebot.NewBot(telebot.Settings{
		Token:  app.config.TelegramBot.Token,
		Poller: NewPoller(app.config),
	})
	if err != nil {
		return fmt.Errorf("telebot.NewBot: %w", err)
	}
	app.bot = bot

	app.bootstrapHandlersTelegram()

	go app.bot.Start()

	log.Printf("Telegram bot started in %s mode", app.config.TelegramBot.Mode)
	return nil
}

// bootstrapHandlersTelegram - регистрирует обработчики для бота
func (app *App) bootstrapHandlersTelegram() {
	app.bot.Use(middleware.Recover(app.logger, func(c telebot.Context, err error) error {
		return telegram.Fail(c, "bot", err)
	}))
	if app.config.Debug {
		app.bot.Use(middleware.Logger(app.logger))
		app.bot.Use(middleware.DebugSessionState(app.logger, app.quizService))
	}

	app.bot.Handle("/start", start_handler.NewStartHandler(app.quizService).GetHandlerFunc())
	app.bot.Handle("/report", report_handler.NewReportHandler(app.quizService).GetHandlerFunc())
	app.bot.Handle(telebot.OnText, answer_handler.NewAnswerHandler(app.quizService).GetHandlerFunc())
}

// routes собирает HTTP-маршруты
func (app *App) routes() http.Handler {
	mx := http.NewServeMux()

	mx.Handle("POST /messages", message_handler.NewMessageHandler(app.quizService))
	mx.Handle("POST /chat", web_chat_handler.NewWebChatHandler(app.quizService, app.cookies, app.config.WebChat.CookieName))
	mx.Handle("GET /sessions/{id}/report", session_report_handler.NewSessionReportHandler(app.quizService))
	mx.Handle("GET /sessions/{id}/report.pdf", session_report_handler.NewSessionPDFReportHandler(app.quizService))
	mx.Handle("DELETE /sessions/{id}", reset_session_handler.NewResetSessionHandler(app.quizService))

	return middleware.HTTPLogger(app.logger, mx)
}

// ListenAndServeHTTP запускает HTTP сервер и блокируется до его остановки
func (app *App) ListenAndServeHTTP() error {
	log.Printf("HTTP server listening on %s", app.server.Addr)
	if err := app.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// ListenAndServe запускает Telegram бота, затем HTTP сервер в отдельной горутине.
// Ошибка HTTP сервера (или nil после Shutdown) приходит в возвращаемый канал.
func (app *App) ListenAndServe() (<-chan error, error) {
	if err := app.ListenAndServeTelegram(); err != nil {
		return nil, fmt.Errorf("failed to start Telegram bot: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		if err := app.ListenAndServeHTTP(); err != nil {
			errCh <- fmt.Errorf("failed to start HTTP server: %w", err)
			return
		}
		errCh <- nil
	}()

	return errCh, nil
}

// Shutdown останавливает бота и HTTP сервер и закрывает хранилище
func (app *App) Shutdown(ctx context.Context) error {
	if app.bot != nil {
		app.bot.Stop()
	}

	err := app.server.Shutdown(ctx)

	app.closeStorage()
	return err
}
