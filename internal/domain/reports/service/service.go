package service

import (
	"fmt"
	"io"

	"github.com/IT-Nick/quizbot/internal/domain/dto"
	"github.com/jung-kurt/gofpdf"
)

// GeneratePDFReport рендерит отчет по сессии в PDF и пишет его в w.
// Отчет формируется непрерывным текстом с переносами, без таблицы.
func GeneratePDFReport(w io.Writer, r dto.SessionReportResponse) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	// Встроенные шрифты работают в cp1252, остальные символы заменяются.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.MultiCell(0, 10, "Quiz report", "", "L", false)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 12)
	info := fmt.Sprintf("Session: %s\nStatus: %s\nResult: %d correct of %d\n%s\n",
		r.SessionID, r.Status, r.CorrectAnswers, r.TotalQuestions, r.ScoreText)
	if r.UpdatedAt != "" {
		info += fmt.Sprintf("Updated: %s\n", r.UpdatedAt)
	}
	pdf.MultiCell(0, 8, tr(info), "", "L", false)
	pdf.Ln(4)

	for _, q := range r.Questions {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.MultiCell(0, 8, fmt.Sprintf("Question %d:", q.QuestionID+1), "", "L", false)

		pdf.SetFont("Helvetica", "", 12)
		pdf.MultiCell(0, 8, tr(q.QuestionText), "", "L", false)
		pdf.Ln(2)

		userAnswer := q.UserAnswer
		if !q.Answered {
			userAnswer = "-"
		}
		answerLine := fmt.Sprintf("Your answer: %s", userAnswer)
		if q.CorrectAnswer != "" {
			answerLine += fmt.Sprintf("\nCorrect: %s", q.CorrectAnswer)
		}
		if q.Answered && q.IsCorrect {
			answerLine += "\n(correct)"
		}
		pdf.MultiCell(0, 8, tr(answerLine), "", "L", false)
		pdf.Ln(4)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render pdf report: %w", err)
	}
	return nil
}
