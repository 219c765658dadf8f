package repository

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/IT-Nick/quizbot/internal/domain/model"
)

func writeQuestions(t *testing.T, data []byte) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), "questions.json")
	if err := os.WriteFile(filename, data, 0644); err != nil {
		t.Fatalf("Ошибка записи во временный файл: %v", err)
	}
	return filename
}

// TestLoadQuestions_FileLoad проверяет загрузку вопросов из JSON-файла.
func TestLoadQuestions_FileLoad(t *testing.T) {
	questionsData := []model.Question{
		{Prompt: "Which language is this bot written about?", Answer: "Python"},
		{Prompt: "Which web framework stores the session?", Answer: "Django"},
		{Prompt: "Any comments?"},
	}
	data, err := json.Marshal(questionsData)
	if err != nil {
		t.Fatalf("Ошибка маршалинга JSON: %v", err)
	}

	questions, err := LoadQuestions(writeQuestions(t, data))
	if err != nil {
		t.Fatalf("LoadQuestions вернул ошибку: %v", err)
	}
	if !reflect.DeepEqual(questions, questionsData) {
		t.Errorf("Вопросы не совпадают: ожидалось %+v, получено %+v", questionsData, questions)
	}

	prompts, key := model.SplitQuestions(questions)
	if len(prompts) != 3 || prompts[2] != "Any comments?" {
		t.Errorf("неверный список вопросов: %v", prompts)
	}
	if !reflect.DeepEqual(key, model.AnswerKey{0: "Python", 1: "Django"}) {
		t.Errorf("неверный ключ ответов: %v", key)
	}
}

func TestLoadQuestions_Errors(t *testing.T) {
	if _, err := LoadQuestions(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("ожидалась ошибка для отсутствующего файла")
	}
	if _, err := LoadQuestions(writeQuestions(t, []byte("not json"))); err == nil {
		t.Error("ожидалась ошибка для некорректного JSON")
	}
	if _, err := LoadQuestions(writeQuestions(t, []byte("[]"))); err == nil {
		t.Error("ожидалась ошибка для пустого списка")
	}
	if _, err := LoadQuestions(writeQuestions(t, []byte(`[{"prompt":"  "}]`))); err == nil {
		t.Error("ожидалась ошибка для пустого текста вопроса")
	}
}

// TestLoadQuestions_RejectsIDs: номер вопроса задается только позицией, поле id не принимается.
func TestLoadQuestions_RejectsIDs(t *testing.T) {
	data := []byte(`[{"id":1,"prompt":"Q1?","answer":"Django"},{"id":0,"prompt":"Q0?","answer":"Python"}]`)
	if _, err := LoadQuestions(writeQuestions(t, data)); err == nil {
		t.Error("ожидалась ошибка для файла с полем id")
	}
}
