package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	app2 "github.com/IT-Nick/quizbot/internal/app"
)

func main() {
	log.Println("app starting")

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/config.yaml"
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := app2.NewApp(ctx, configPath)
	if err != nil {
		log.Fatalf("Ошибка инициализации приложения: %v", err)
	}

	errCh, err := app.ListenAndServe()
	if err != nil {
		log.Fatalf("Ошибка запуска: %v", err)
	}

	select {
	case <-ctx.Done():
		log.Println("shutting down")
	case err := <-errCh:
		if err != nil {
			log.Printf("server stopped: %v", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown failed: %v", err)
	}
}
