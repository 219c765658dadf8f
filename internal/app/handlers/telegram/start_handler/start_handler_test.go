package start_handler

import (
	"context"
	"reflect"
	"testing"

	"github.com/IT-Nick/quizbot/internal/domain/model"
	quizService "github.com/IT-Nick/quizbot/internal/domain/quiz/service"
	"github.com/IT-Nick/quizbot/internal/domain/sessions/repository"
	"gopkg.in/telebot.v4"
)

type fakeContext struct {
	telebot.Context
	sent []interface{}
}

func (c *fakeContext) Chat() *telebot.Chat { return &telebot.Chat{ID: 5} }
func (c *fakeContext) Text() string        { return "/start" }

func (c *fakeContext) Send(what interface{}, _ ...interface{}) error {
	c.sent = append(c.sent, what)
	return nil
}

// TestStartHandler_RestartsQuiz: /start посреди викторины начинает ее заново.
func TestStartHandler_RestartsQuiz(t *testing.T) {
	repo := repository.NewMemoryRepository()
	svc := quizService.NewQuizService(repo, "Welcome!", []string{"Q0?", "Q1?"}, model.AnswerKey{0: "Python"})
	ctx := context.Background()

	for _, msg := range []string{"hi", "Python"} {
		if _, err := svc.Reply(ctx, "tg:5", msg); err != nil {
			t.Fatalf("Reply вернул ошибку: %v", err)
		}
	}

	c := &fakeContext{}
	if err := NewStartHandler(svc).Handle(c); err != nil {
		t.Fatalf("обработчик вернул ошибку: %v", err)
	}
	if !reflect.DeepEqual(c.sent, []interface{}{"Welcome!", "Q0?"}) {
		t.Errorf("отправлено %v", c.sent)
	}

	session, _ := repo.Get(ctx, "tg:5")
	if session.CurrentQuestionID != 0 || !reflect.DeepEqual(session.Answers, map[int]string{0: "/start"}) {
		t.Errorf("сессия не перезапущена: %+v", session)
	}
}
