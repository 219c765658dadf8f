package middleware

import (
	"fmt"
	"log"
	"runtime/debug"

	"gopkg.in/telebot.v4"
)

// Recover перехватывает панику обработчика, логирует ее со стеком и передает ошибку в onPanic.
// Результат onPanic становится результатом обработки обновления.
func Recover(logger *log.Logger, onPanic func(c telebot.Context, err error) error) telebot.MiddlewareFunc {
	return func(next telebot.HandlerFunc) telebot.HandlerFunc {
		return func(c telebot.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				panicErr, ok := r.(error)
				if !ok {
					panicErr = fmt.Errorf("%v", r)
				}
				panicErr = fmt.Errorf("handler panic: %w", panicErr)
				logger.Printf("%v\n%s", panicErr, debug.Stack())

				err = onPanic(c, panicErr)
			}()
			return next(c)
		}
	}
}
