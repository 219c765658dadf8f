package answer_handler

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/IT-Nick/quizbot/internal/app/handlers/telegram"
	"github.com/IT-Nick/quizbot/internal/domain/model"
	quizService "github.com/IT-Nick/quizbot/internal/domain/quiz/service"
	"github.com/IT-Nick/quizbot/internal/domain/sessions/repository"
	"gopkg.in/telebot.v4"
)

type fakeContext struct {
	telebot.Context
	text string
	sent []interface{}
}

func (c *fakeContext) Chat() *telebot.Chat { return &telebot.Chat{ID: 100} }
func (c *fakeContext) Text() string        { return c.text }

func (c *fakeContext) Send(what interface{}, _ ...interface{}) error {
	c.sent = append(c.sent, what)
	return nil
}

type brokenRepository struct {
	*repository.MemoryRepository
}

func (brokenRepository) Get(context.Context, string) (*model.Session, error) {
	return nil, errors.New("connection refused")
}

func TestAnswerHandler(t *testing.T) {
	svc := quizService.NewQuizService(repository.NewMemoryRepository(), "Welcome!",
		[]string{"Q0?", "Q1?"}, model.AnswerKey{0: "Python", 1: "Django"})
	h := NewAnswerHandler(svc).GetHandlerFunc()

	for _, step := range []struct {
		text string
		want []interface{}
	}{
		{"hi", []interface{}{"Welcome!", "Q0?"}},
		{"Python", []interface{}{"Q1?"}},
		{"Django", []interface{}{"Your final score is: 100.00%"}},
	} {
		c := &fakeContext{text: step.text}
		if err := h(c); err != nil {
			t.Fatalf("обработчик вернул ошибку: %v", err)
		}
		if !reflect.DeepEqual(c.sent, step.want) {
			t.Errorf("%q: отправлено %v, ожидалось %v", step.text, c.sent, step.want)
		}
	}
}

func TestAnswerHandler_StoreFailure(t *testing.T) {
	svc := quizService.NewQuizService(brokenRepository{}, "Welcome!", []string{"Q0?"}, nil)

	c := &fakeContext{text: "hi"}
	if err := NewAnswerHandler(svc).Handle(c); err != nil {
		t.Fatalf("обработчик вернул ошибку: %v", err)
	}
	if !reflect.DeepEqual(c.sent, []interface{}{telegram.FailureMessage}) {
		t.Errorf("ожидалось сообщение о сбое, отправлено %v", c.sent)
	}
}
