package middleware

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"

	"gopkg.in/telebot.v4"
)

func TestRecover(t *testing.T) {
	var buf bytes.Buffer
	var got error
	sendErr := errors.New("reply sent")

	handler := Recover(log.New(&buf, "", 0), func(c telebot.Context, err error) error {
		got = err
		return sendErr
	})(func(c telebot.Context) error {
		panic("nil session")
	})

	err := handler(&fakeContext{message: &telebot.Message{Chat: &telebot.Chat{ID: 1}}})
	if !errors.Is(err, sendErr) {
		t.Errorf("ожидался результат onPanic, получено %v", err)
	}
	if got == nil || !strings.Contains(got.Error(), "nil session") {
		t.Errorf("onPanic получил неверную ошибку: %v", got)
	}
	if !strings.Contains(buf.String(), "handler panic: nil session") {
		t.Errorf("паника не залогирована: %q", buf.String())
	}
}

func TestRecover_WrapsErrorPanic(t *testing.T) {
	cause := errors.New("storage closed")
	var got error

	handler := Recover(log.New(&bytes.Buffer{}, "", 0), func(c telebot.Context, err error) error {
		got = err
		return nil
	})(func(c telebot.Context) error {
		panic(cause)
	})

	if err := handler(&fakeContext{message: &telebot.Message{}}); err != nil {
		t.Errorf("ожидался nil, получено %v", err)
	}
	if !errors.Is(got, cause) {
		t.Errorf("исходная ошибка потеряна: %v", got)
	}
}

func TestRecover_PassesThrough(t *testing.T) {
	handlerErr := errors.New("send failed")
	called := false

	handler := Recover(log.New(&bytes.Buffer{}, "", 0), func(c telebot.Context, err error) error {
		called = true
		return nil
	})(func(c telebot.Context) error {
		return handlerErr
	})

	if err := handler(&fakeContext{message: &telebot.Message{}}); !errors.Is(err, handlerErr) {
		t.Errorf("ошибка обработчика потеряна: %v", err)
	}
	if called {
		t.Error("onPanic вызван без паники")
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	called := false

	handler := Logger(log.New(&buf, "", 0))(func(c telebot.Context) error {
		called = true
		return nil
	})

	c := &fakeContext{
		update: telebot.Update{ID: 77},
		message: &telebot.Message{
			Text:   "Django",
			Chat:   &telebot.Chat{ID: 5},
			Sender: &telebot.User{ID: 6},
		},
	}
	if err := handler(c); err != nil {
		t.Fatalf("Logger вернул ошибку: %v", err)
	}
	if !called {
		t.Error("следующий обработчик не вызван")
	}
	if line := buf.String(); !strings.Contains(line, `update 77: chat=5 sender=6 text="Django"`) {
		t.Errorf("неожиданная строка лога: %q", line)
	}
}
