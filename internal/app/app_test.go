package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/IT-Nick/quizbot/internal/app/handlers/http/message_handler"
	"github.com/IT-Nick/quizbot/internal/domain/dto"
	"github.com/IT-Nick/quizbot/internal/infra/config"
	"gopkg.in/telebot.v4"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{"TELEGRAM_BOT_TOKEN", "BOT_MODE", "WEBHOOK_URL", "STORAGE_TYPE",
		"STORAGE_PATH", "SESSION_SECRET", "HTTP_PORT", "DEBUG"} {
		t.Setenv(key, "")
	}
}

// newTestApp создает приложение с файлом вопросов и хранилищем SQLite во временной папке.
func newTestApp(t *testing.T) *App {
	t.Helper()
	clearEnv(t)
	dir := t.TempDir()

	questions := `[{"prompt":"Q0?","answer":"Python"},{"prompt":"Q1?","answer":"Django"}]`
	questionsFile := filepath.Join(dir, "questions.json")
	if err := os.WriteFile(questionsFile, []byte(questions), 0644); err != nil {
		t.Fatalf("Ошибка записи во временный файл: %v", err)
	}

	cfg := "storage:\n  type: sqlite\n  path: " + filepath.Join(dir, "quiz.db") +
		"\nquiz:\n  welcome_message: \"Welcome!\"\n  questions_file: " + questionsFile + "\n"
	configFile := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(configFile, []byte(cfg), 0644); err != nil {
		t.Fatalf("Ошибка записи во временный файл: %v", err)
	}

	app, err := NewApp(context.Background(), configFile)
	if err != nil {
		t.Fatalf("NewApp вернул ошибку: %v", err)
	}
	t.Cleanup(app.closeStorage)
	return app
}

func TestApp_Routes(t *testing.T) {
	app := newTestApp(t)
	srv := httptest.NewServer(app.routes())
	defer srv.Close()

	send := func(message string) []string {
		body, _ := json.Marshal(message_handler.MessageRequest{SessionID: "s1", Message: message})
		resp, err := http.Post(srv.URL+"/messages", "application/json", strings.NewReader(string(body)))
		if err != nil {
			t.Fatalf("POST /messages: %v", err)
		}
		defer resp.Body.Close()
		var out message_handler.MessageResponse
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			t.Fatalf("не удалось разобрать ответ: %v", err)
		}
		return out.Responses
	}

	if got := send("hi"); !reflect.DeepEqual(got, []string{"Welcome!", "Q0?"}) {
		t.Errorf("получено %q", got)
	}
	send("python")
	if got := send("Django"); !reflect.DeepEqual(got, []string{"Your final score is: 100.00%"}) {
		t.Errorf("получено %q", got)
	}

	resp, err := http.Get(srv.URL + "/sessions/s1/report")
	if err != nil {
		t.Fatalf("GET report: %v", err)
	}
	var report dto.SessionReportResponse
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		t.Fatalf("не удалось разобрать отчет: %v", err)
	}
	resp.Body.Close()
	if report.Status != "finished" || report.CorrectAnswers != 2 {
		t.Errorf("неверный отчет: %+v", report)
	}

	req, _ := http.NewRequest(http.MethodDelete, srv.URL+"/sessions/s1", nil)
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("DELETE session: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("ожидался 204, получено %d", resp.StatusCode)
	}

	if got := send("again"); !reflect.DeepEqual(got, []string{"Welcome!", "Q0?"}) {
		t.Errorf("после сброса ожидалось приветствие, получено %q", got)
	}

	resp, err = http.Get(srv.URL + "/messages")
	if err != nil {
		t.Fatalf("GET /messages: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("ожидался 405, получено %d", resp.StatusCode)
	}
}

func TestNewApp_InvalidConfig(t *testing.T) {
	clearEnv(t)
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configFile, []byte("quiz:\n  welcome_message: hi\n"), 0644); err != nil {
		t.Fatalf("Ошибка записи во временный файл: %v", err)
	}

	if _, err := NewApp(context.Background(), configFile); err == nil {
		t.Error("ожидалась ошибка для конфигурации без вопросов")
	}
}

func TestNewPoller(t *testing.T) {
	cfg := &config.Config{}
	cfg.TelegramBot.Mode = config.ModeWebhook
	cfg.TelegramBot.ListenAddr = ":8443"
	cfg.TelegramBot.WebhookURL = "https://example.com/bot"

	webhook, ok := NewPoller(cfg).(*telebot.Webhook)
	if !ok {
		t.Fatal("в режиме webhook ожидался *telebot.Webhook")
	}
	if webhook.Endpoint.PublicURL != cfg.TelegramBot.WebhookURL {
		t.Errorf("ожидался URL %q, получено %q", cfg.TelegramBot.WebhookURL, webhook.Endpoint.PublicURL)
	}

	cfg.TelegramBot.Mode = config.ModePolling
	cfg.TelegramBot.PollTimeout = 5
	poller, ok := NewPoller(cfg).(*telebot.LongPoller)
	if !ok {
		t.Fatal("в режиме polling ожидался *telebot.LongPoller")
	}
	if poller.Timeout != 5*time.Second {
		t.Errorf("ожидался таймаут 5s, получено %v", poller.Timeout)
	}
}
