package dto

// SessionReportResponse структура для отчета по сессии викторины
type SessionReportResponse struct {
	SessionID         string         `json:"session_id"`
	Status            string         `json:"status"`
	CurrentQuestionID int            `json:"current_question_id"`
	CorrectAnswers    int            `json:"correct_answers"`
	TotalQuestions    int            `json:"total_questions"`
	Score             float64        `json:"score"`
	ScoreText         string         `json:"score_text"`
	UpdatedAt         string         `json:"updated_at,omitempty"`
	Questions         []QuestionInfo `json:"questions"`
}

type QuestionInfo struct {
	QuestionID    int    `json:"question_id"`
	QuestionText  string `json:"question_text"`
	CorrectAnswer string `json:"correct_answer,omitempty"`
	UserAnswer    string `json:"user_answer"`
	Answered      bool   `json:"answered"`
	IsCorrect     bool   `json:"is_correct"`
}
