package dto

import "time"

// QuestionAnswerDTO is the user's answer to one question in a submission.
// AnswerIDs carries the selected answer rows for UNIQUE/MULTIPLE/BOOL
// questions; Text carries the free-text response for TEXT questions.
type QuestionAnswerDTO struct {
	QuestionID uint   `json:"question_id" binding:"required"`
	AnswerIDs  []uint `json:"answer_ids,omitempty"`
	Text       string `json:"text,omitempty"`
}

type AttemptSubmitDTO struct {
	UserID  uint                `json:"user_id" binding:"required"`
	Answers []QuestionAnswerDTO `json:"answers" binding:"required,dive"`
}

type QuestionResultDTO struct {
	QuestionID uint `json:"question_id"`
	Correct    bool `json:"correct"`
}

type AttemptResponseDTO struct {
	ID        uint                `json:"id"`
	UserID    uint                `json:"user_id"`
	QuizID    uint                `json:"quiz_id"`
	Score     int                 `json:"score"`
	Passed    bool                `json:"passed"`
	Results   []QuestionResultDTO `json:"results,omitempty"`
	CreatedAt time.Time           `json:"created_at"`
}
