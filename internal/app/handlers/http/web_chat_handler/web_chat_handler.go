package web_chat_handler

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/IT-Nick/quizbot/internal/domain/model"
	quizService "github.com/IT-Nick/quizbot/internal/domain/quiz/service"
	httpError "github.com/IT-Nick/quizbot/pkg/http"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

const sessionIDKey = "session_id"

// ChatRequest сообщение из браузерного чата
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse ответы бота
type ChatResponse struct {
	Responses []string `json:"responses"`
}

// WebChatHandler обслуживает браузерный чат. Ключ сессии викторины хранится в подписанной cookie.
type WebChatHandler struct {
	quizService *quizService.QuizService
	store       sessions.Store
	cookieName  string
}

// NewWebChatHandler создает новый экземпляр обработчика
func NewWebChatHandler(quizService *quizService.QuizService, store sessions.Store, cookieName string) *WebChatHandler {
	return &WebChatHandler{
		quizService: quizService,
		store:       store,
		cookieName:  cookieName,
	}
}

// NewCookieStore создает хранилище cookie для чата
func NewCookieStore(secret string) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

// ServeHTTP метод для обработки запроса
func (h *WebChatHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var request ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		httpError.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Ошибка Get означает битую или чужую cookie, в этом случае выдается новая сессия.
	cookie, err := h.store.Get(r, h.cookieName)
	if err != nil {
		log.Printf("web_chat_handler: dropping invalid cookie: %v", err)
	}
	if cookie == nil {
		cookie = sessions.NewSession(h.store, h.cookieName)
	}

	sessionID, _ := cookie.Values[sessionIDKey].(string)
	if sessionID == "" {
		sessionID = model.WebSessionPrefix + uuid.NewString()
		cookie.Values[sessionIDKey] = sessionID
		if err := cookie.Save(r, w); err != nil {
			log.Printf("web_chat_handler: failed to save cookie: %v", err)
			httpError.ErrorResponse(w, http.StatusInternalServerError, "Failed to start session")
			return
		}
	}

	responses, err := h.quizService.Reply(r.Context(), sessionID, request.Message)
	if err != nil {
		log.Printf("web_chat_handler: session %s: %v", sessionID, err)
		httpError.ErrorResponse(w, http.StatusInternalServerError, "Failed to process message")
		return
	}

	httpError.JSONResponse(w, http.StatusOK, ChatResponse{Responses: responses})
}
