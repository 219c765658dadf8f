package reset_session_handler

import (
	"log"
	"net/http"

	"github.com/IT-Nick/quizbot/internal/domain/model"
	quizService "github.com/IT-Nick/quizbot/internal/domain/quiz/service"
	httpError "github.com/IT-Nick/quizbot/pkg/http"
)

// ResetSessionHandler удаляет сессию, следующее сообщение начнет викторину заново
type ResetSessionHandler struct {
	quizService *quizService.QuizService
}

// NewResetSessionHandler создает новый экземпляр обработчика
func NewResetSessionHandler(quizService *quizService.QuizService) *ResetSessionHandler {
	return &ResetSessionHandler{quizService: quizService}
}

// ServeHTTP метод для обработки запроса
func (h *ResetSessionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("id")
	if sessionID == "" {
		httpError.ErrorResponse(w, http.StatusBadRequest, "Missing session id")
		return
	}
	if model.IsTelegramSession(sessionID) {
		httpError.ErrorResponse(w, http.StatusForbidden, httpError.TelegramSessionMessage)
		return
	}

	if err := h.quizService.Reset(r.Context(), sessionID); err != nil {
		log.Printf("reset_session_handler: session %s: %v", sessionID, err)
		httpError.ErrorResponse(w, http.StatusInternalServerError, "Failed to reset session")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
