package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/IT-Nick/quizbot/internal/domain/model"
)

// LoadQuestions загружает список вопросов из JSON-файла.
// Порядок вопросов в файле задает их номера и порядок, в котором бот их задает.
// Неизвестные поля, например "id", считаются ошибкой.
func LoadQuestions(filename string) ([]model.Question, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read questions file: %w", err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()

	var questions []model.Question
	if err := dec.Decode(&questions); err != nil {
		return nil, fmt.Errorf("failed to decode questions file %s: %w", filename, err)
	}

	if len(questions) == 0 {
		return nil, fmt.Errorf("no questions found in %s", filename)
	}

	for i, q := range questions {
		if strings.TrimSpace(q.Prompt) == "" {
			return nil, fmt.Errorf("question %d in %s has empty prompt", i, filename)
		}
	}

	return questions, nil
}
