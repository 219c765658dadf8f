package model

// Question вопрос викторины вместе с принимаемым ответом.
// Номер вопроса - его позиция в списке.
type Question struct {
	Prompt string `json:"prompt" yaml:"prompt"`
	Answer string `json:"answer,omitempty" yaml:"answer"`
}

// AnswerKey сопоставляет индекс вопроса с единственным правильным ответом
type AnswerKey map[int]string

// SplitQuestions разделяет список вопросов на тексты и ключ ответов.
// Вопросы без ответа в ключ не попадают.
func SplitQuestions(questions []Question) ([]string, AnswerKey) {
	prompts := make([]string, 0, len(questions))
	key := make(AnswerKey)
	for i, q := range questions {
		prompts = append(prompts, q.Prompt)
		if q.Answer != "" {
			key[i] = q.Answer
		}
	}
	return prompts, key
}
