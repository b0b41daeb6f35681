package dto

import "time"

// AnswerCreateDTO is one candidate answer inside a quiz creation request.
type AnswerCreateDTO struct {
	Text    string `json:"text" binding:"required"`
	Correct bool   `json:"correct"`
}

type QuestionCreateDTO struct {
	Text    string            `json:"text" binding:"required"`
	Type    string            `json:"type" binding:"required"`
	Answers []AnswerCreateDTO `json:"answers" binding:"dive"`
}

// QuizCreateDTO carries a complete quiz with all its questions and answers.
// Structural rules per question type are enforced by the quiz service, not
// by binding tags, so that violations report the 1-based question position.
type QuizCreateDTO struct {
	Title     string              `json:"title" binding:"required"`
	Questions []QuestionCreateDTO `json:"questions" binding:"dive"`
}

type AnswerResponseDTO struct {
	ID      uint   `json:"id"`
	Text    string `json:"text"`
	Correct bool   `json:"correct"`
}

type QuestionResponseDTO struct {
	ID      uint                `json:"id"`
	Text    string              `json:"text"`
	Type    string              `json:"type"`
	Answers []AnswerResponseDTO `json:"answers,omitempty"`
}

type QuizResponseDTO struct {
	ID        uint                  `json:"id"`
	LessonID  uint                  `json:"lesson_id"`
	Title     string                `json:"title"`
	Questions []QuestionResponseDTO `json:"questions,omitempty"`
	CreatedAt time.Time             `json:"created_at"`
}

type QuizSummaryDTO struct {
	ID        uint      `json:"id"`
	LessonID  uint      `json:"lesson_id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}
