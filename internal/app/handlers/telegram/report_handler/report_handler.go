package report_handler

import (
	"bytes"
	"context"

	"github.com/IT-Nick/quizbot/internal/app/handlers/telegram"
	quizService "github.com/IT-Nick/quizbot/internal/domain/quiz/service"
	reportService "github.com/IT-Nick/quizbot/internal/domain/reports/service"
	"gopkg.in/telebot.v4"
)

// ReportHandler отправляет PDF-отчет по сессии чата в ответ на /report
type ReportHandler struct {
	quizService *quizService.QuizService
}

// NewReportHandler возвращает структуру обработчика
func NewReportHandler(quizService *quizService.QuizService) *ReportHandler {
	return &ReportHandler{quizService: quizService}
}

func (h *ReportHandler) Handle(c telebot.Context) error {
	const op = "report_handler.Handle"
	ctx := context.Background()

	session, err := h.quizService.Session(ctx, telegram.SessionID(c))
	if err != nil {
		return telegram.Fail(c, op, err)
	}

	report := h.quizService.BuildReport(session)

	var buf bytes.Buffer
	if err := reportService.GeneratePDFReport(&buf, report); err != nil {
		return telegram.Fail(c, op, err)
	}

	return c.Send(&telebot.Document{
		File:     telebot.FromReader(&buf),
		FileName: "quiz_report.pdf",
		MIME:     "application/pdf",
		Caption:  report.ScoreText,
	})
}

// GetHandlerFunc возвращает обработчик в формате telebot.HandlerFunc
func (h *ReportHandler) GetHandlerFunc() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return h.Handle(c)
	}
}
