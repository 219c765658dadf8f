package model

import (
	"strings"
	"time"
)

// SessionStatus стадия прохождения викторины
type SessionStatus string

const (
	StatusNotStarted SessionStatus = "not_started"
	StatusInProgress SessionStatus = "in_progress"
	StatusFinished   SessionStatus = "finished"
)

// Префиксы идентификаторов сессий, которые выдают сами транспорты
const (
	TelegramSessionPrefix = "tg:"
	WebSessionPrefix      = "web:"
)

// IsTelegramSession сообщает, принадлежит ли сессия чату Telegram
func IsTelegramSession(id string) bool {
	return strings.HasPrefix(id, TelegramSessionPrefix)
}

// NoQuestion маркер отсутствия текущего или следующего вопроса
const NoQuestion = -1

// Session представляет состояние диалога одного собеседника с ботом
type Session struct {
	ID                string         `json:"id"`
	Status            SessionStatus  `json:"status"`
	CurrentQuestionID int            `json:"current_question_id"`
	Answers           map[int]string `json:"answers"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

// NewSession создает сессию, в которой викторина еще не начата
func NewSession(id string) *Session {
	return &Session{
		ID:                id,
		Status:            StatusNotStarted,
		CurrentQuestionID: NoQuestion,
		Answers:           make(map[int]string),
	}
}

// InProgress сообщает, идет ли викторина. Пустой статус считается StatusNotStarted.
func (s *Session) InProgress() bool {
	return s.Status == StatusInProgress
}

// Start переводит сессию к первому вопросу и очищает ответы
func (s *Session) Start() {
	s.Status = StatusInProgress
	s.CurrentQuestionID = 0
	s.Answers = make(map[int]string)
}

// Advance выставляет текущий вопрос; NoQuestion завершает викторину
func (s *Session) Advance(nextQuestionID int) {
	s.CurrentQuestionID = nextQuestionID
	if nextQuestionID == NoQuestion {
		s.Status = StatusFinished
	}
}

// Clone возвращает копию сессии, не разделяющую карту ответов с оригиналом
func (s *Session) Clone() *Session {
	cp := *s
	cp.Answers = make(map[int]string, len(s.Answers))
	for k, v := range s.Answers {
		cp.Answers[k] = v
	}
	return &cp
}
