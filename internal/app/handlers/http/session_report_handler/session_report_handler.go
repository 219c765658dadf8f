package session_report_handler

import (
	"bytes"
	"log"
	"net/http"

	"github.com/IT-Nick/quizbot/internal/domain/model"
	quizService "github.com/IT-Nick/quizbot/internal/domain/quiz/service"
	reportService "github.com/IT-Nick/quizbot/internal/domain/reports/service"
	httpError "github.com/IT-Nick/quizbot/pkg/http"
)

// SessionReportHandler отдает отчет по сессии в JSON или PDF
type SessionReportHandler struct {
	quizService *quizService.QuizService
	pdf         bool
}

// NewSessionReportHandler создает обработчик JSON-отчета
func NewSessionReportHandler(quizService *quizService.QuizService) *SessionReportHandler {
	return &SessionReportHandler{quizService: quizService}
}

// NewSessionPDFReportHandler создает обработчик PDF-отчета
func NewSessionPDFReportHandler(quizService *quizService.QuizService) *SessionReportHandler {
	return &SessionReportHandler{quizService: quizService, pdf: true}
}

// ServeHTTP метод для обработки запроса
func (h *SessionReportHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("id")
	if sessionID == "" {
		httpError.ErrorResponse(w, http.StatusBadRequest, "Missing session id")
		return
	}
	if model.IsTelegramSession(sessionID) {
		httpError.ErrorResponse(w, http.StatusForbidden, httpError.TelegramSessionMessage)
		return
	}

	session, err := h.quizService.Session(r.Context(), sessionID)
	if err != nil {
		log.Printf("session_report_handler: session %s: %v", sessionID, err)
		httpError.ErrorResponse(w, http.StatusInternalServerError, "Failed to load session")
		return
	}

	report := h.quizService.BuildReport(session)
	if !h.pdf {
		httpError.JSONResponse(w, http.StatusOK, report)
		return
	}

	var buf bytes.Buffer
	if err := reportService.GeneratePDFReport(&buf, report); err != nil {
		log.Printf("session_report_handler: session %s: %v", sessionID, err)
		httpError.ErrorResponse(w, http.StatusInternalServerError, "Failed to generate report")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="quiz_report.pdf"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Printf("session_report_handler: failed to write pdf: %v", err)
	}
}
