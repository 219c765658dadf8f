package http

import (
	"encoding/json"
	"log"
	"net/http"
)

// ErrorBody тело ответа с ошибкой
type ErrorBody struct {
	Error string `json:"error"`
}

// TelegramSessionMessage текст ответа на попытку обратиться к сессии чата Telegram по HTTP
const TelegramSessionMessage = "Telegram sessions are not accessible over HTTP"

// ErrorResponse отправляет ошибку в формате JSON с указанным статусом
func ErrorResponse(w http.ResponseWriter, status int, message string) {
	JSONResponse(w, status, ErrorBody{Error: message})
}

// JSONResponse сериализует payload в тело ответа
func JSONResponse(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
