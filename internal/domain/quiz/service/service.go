package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/IT-Nick/quizbot/internal/domain/dto"
	"github.com/IT-Nick/quizbot/internal/domain/model"
	"github.com/IT-Nick/quizbot/internal/domain/sessions/repository"
)

// ErrEmptyAnswer единственная ошибка хода, которую видит пользователь
var ErrEmptyAnswer = errors.New("answer cannot be empty")

const (
	// EmptyAnswerMessage отправляется вместо ErrEmptyAnswer
	EmptyAnswerMessage  = "Answer cannot be empty."
	finalResponseFormat = "Your final score is: %.2f%%"
)

// QuizService ведет викторину: фиксирует ответы, выдает следующий вопрос и считает результат
type QuizService struct {
	sessions  repository.Repository
	welcome   string
	questions []string
	answerKey model.AnswerKey
}

// NewQuizService создает новый экземпляр QuizService
func NewQuizService(
	sessions repository.Repository,
	welcome string,
	questions []string,
	answerKey model.AnswerKey,
) *QuizService {
	return &QuizService{
		sessions:  sessions,
		welcome:   welcome,
		questions: questions,
		answerKey: answerKey,
	}
}

// TotalQuestions возвращает количество вопросов викторины
func (s *QuizService) TotalQuestions() int {
	return len(s.questions)
}

// Reply загружает сессию собеседника и обрабатывает его сообщение
func (s *QuizService) Reply(ctx context.Context, sessionID string, message string) ([]string, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	return s.GenerateBotResponses(ctx, message, session)
}

// Reset удаляет сессию, следующее сообщение начнет викторину заново
func (s *QuizService) Reset(ctx context.Context, sessionID string) error {
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to reset session: %w", err)
	}
	return nil
}

// Session возвращает текущее состояние сессии
func (s *QuizService) Session(ctx context.Context, sessionID string) (*model.Session, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	return session, nil
}

// GenerateBotResponses обрабатывает одно входящее сообщение и возвращает ответы бота по порядку.
//
// Если викторина не идет (не начата или уже завершена), она начинается заново:
// приветствие, первый вопрос, пустые ответы. Само сообщение, начавшее викторину,
// записывается как ответ на вопрос 0 и перезаписывается следующим сообщением.
// Пустой ответ не двигает викторину, в ответе остается только текст ошибки.
// Пустое сообщение не начинает викторину: сессия не меняется и не сохраняется.
func (s *QuizService) GenerateBotResponses(ctx context.Context, message string, session *model.Session) ([]string, error) {
	const op = "service.GenerateBotResponses"

	var responses []string

	from := session.CurrentQuestionID
	if !session.InProgress() {
		// Викторина не начинается, пока первый вопрос не может быть показан.
		if strings.TrimSpace(message) == "" {
			return []string{EmptyAnswerMessage}, nil
		}
		responses = append(responses, s.welcome)
		session.Start()
		if err := s.sessions.Save(ctx, session); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		from = model.NoQuestion
	}

	if err := s.RecordCurrentAnswer(message, session.CurrentQuestionID, session); err != nil {
		if errors.Is(err, ErrEmptyAnswer) {
			return []string{EmptyAnswerMessage}, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	nextQuestion, nextQuestionID := s.GetNextQuestion(from)
	if nextQuestionID != model.NoQuestion {
		responses = append(responses, nextQuestion)
	} else {
		responses = append(responses, s.GenerateFinalResponse(session))
	}

	session.Advance(nextQuestionID)
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return responses, nil
}

// RecordCurrentAnswer проверяет ответ и сохраняет его обрезанный текст для вопроса questionID.
// Корректность questionID не проверяется.
func (s *QuizService) RecordCurrentAnswer(answer string, questionID int, session *model.Session) error {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return ErrEmptyAnswer
	}

	if session.Answers == nil {
		session.Answers = make(map[int]string)
	}
	session.Answers[questionID] = answer
	return nil
}

// GetNextQuestion возвращает текст и индекс вопроса, следующего за questionID.
// Если вопросов больше нет, возвращает пустую строку и model.NoQuestion.
func (s *QuizService) GetNextQuestion(questionID int) (string, int) {
	next := questionID + 1
	if next >= 0 && next < len(s.questions) {
		return s.questions[next], next
	}
	return "", model.NoQuestion
}

// Score считает совпадения ответов с ключом без учета регистра.
// Делитель - полное число вопросов, а не число данных ответов.
func (s *QuizService) Score(session *model.Session) (correct int, total int, percent float64) {
	total = len(s.questions)
	for questionID, userAnswer := range session.Answers {
		if s.isCorrect(questionID, userAnswer) {
			correct++
		}
	}
	if total > 0 {
		percent = float64(correct) / float64(total) * 100
	}
	return correct, total, percent
}

// GenerateFinalResponse формирует итоговое сообщение с процентом правильных ответов
func (s *QuizService) GenerateFinalResponse(session *model.Session) string {
	_, _, percent := s.Score(session)
	return fmt.Sprintf(finalResponseFormat, percent)
}

// BuildReport собирает отчет по сессии. Правильные ответы раскрываются только после завершения.
func (s *QuizService) BuildReport(session *model.Session) dto.SessionReportResponse {
	correct, total, percent := s.Score(session)
	finished := session.Status == model.StatusFinished

	status := session.Status
	if status == "" {
		status = model.StatusNotStarted
	}

	report := dto.SessionReportResponse{
		SessionID:         session.ID,
		Status:            string(status),
		CurrentQuestionID: session.CurrentQuestionID,
		CorrectAnswers:    correct,
		TotalQuestions:    total,
		Score:             percent,
		ScoreText:         fmt.Sprintf(finalResponseFormat, percent),
		Questions:         make([]dto.QuestionInfo, 0, total),
	}
	if !session.UpdatedAt.IsZero() {
		report.UpdatedAt = session.UpdatedAt.Format(time.RFC3339)
	}

	for i, prompt := range s.questions {
		userAnswer, answered := session.Answers[i]
		info := dto.QuestionInfo{
			QuestionID:   i,
			QuestionText: prompt,
			UserAnswer:   userAnswer,
			Answered:     answered,
			IsCorrect:    answered && s.isCorrect(i, userAnswer),
		}
		if finished {
			info.CorrectAnswer = s.answerKey[i]
		}
		report.Questions = append(report.Questions, info)
	}

	return report
}

// isCorrect: отсутствие ответа в ключе - несовпадение, а не ошибка
func (s *QuizService) isCorrect(questionID int, userAnswer string) bool {
	correctAnswer, ok := s.answerKey[questionID]
	if !ok {
		return false
	}
	return strings.EqualFold(userAnswer, correctAnswer)
}
