package message_handler

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/IT-Nick/quizbot/internal/domain/model"
	quizService "github.com/IT-Nick/quizbot/internal/domain/quiz/service"
	httpError "github.com/IT-Nick/quizbot/pkg/http"
)

// MessageRequest структура для данных запроса
type MessageRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

// MessageResponse ответы бота на одно сообщение
type MessageResponse struct {
	SessionID string   `json:"session_id"`
	Responses []string `json:"responses"`
}

// MessageHandler принимает сообщения от внешнего транспорта (вебхук) и возвращает ответы бота
type MessageHandler struct {
	quizService *quizService.QuizService
}

// NewMessageHandler создает новый экземпляр обработчика
func NewMessageHandler(quizService *quizService.QuizService) *MessageHandler {
	return &MessageHandler{quizService: quizService}
}

// ServeHTTP метод для обработки запроса
func (h *MessageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var request MessageRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		httpError.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	request.SessionID = strings.TrimSpace(request.SessionID)
	if request.SessionID == "" {
		httpError.ErrorResponse(w, http.StatusBadRequest, "Missing session_id in request body")
		return
	}
	if model.IsTelegramSession(request.SessionID) {
		httpError.ErrorResponse(w, http.StatusForbidden, httpError.TelegramSessionMessage)
		return
	}

	responses, err := h.quizService.Reply(r.Context(), request.SessionID, request.Message)
	if err != nil {
		log.Printf("message_handler: session %s: %v", request.SessionID, err)
		httpError.ErrorResponse(w, http.StatusInternalServerError, "Failed to process message")
		return
	}

	httpError.JSONResponse(w, http.StatusOK, MessageResponse{
		SessionID: request.SessionID,
		Responses: responses,
	})
}
