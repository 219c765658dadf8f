package middleware

import (
	"log"
	"net/http"
	"time"
)

// statusRecorder запоминает код ответа для лога
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// HTTPLogger логирует каждый HTTP-запрос: метод, путь, код ответа и время обработки
func HTTPLogger(logger *log.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		latency := time.Since(start)
		switch {
		case rec.status >= 500:
			logger.Printf("[%s] %s %s %d %v - Internal Server Error", r.RemoteAddr, r.Method, r.RequestURI, rec.status, latency)
		case rec.status >= 400:
			logger.Printf("[%s] %s %s %d %v - Client Error", r.RemoteAddr, r.Method, r.RequestURI, rec.status, latency)
		default:
			logger.Printf("[%s] %s %s %d %v", r.RemoteAddr, r.Method, r.RequestURI, rec.status, latency)
		}
	})
}
