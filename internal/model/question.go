package model

import (
	"time"

	"gorm.io/gorm"
)

// Question types. The structural rules per type are enforced at quiz
// creation; readers assume shape correctness afterwards.
const (
	QuestionTypeUnique   = "UNIQUE"   // exactly one correct answer
	QuestionTypeMultiple = "MULTIPLE" // one or more correct answers
	QuestionTypeText     = "TEXT"     // single free-text reference answer
	QuestionTypeBool     = "BOOL"     // true/false or yes/no pair
)

type Question struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	QuizID    uint           `json:"quiz_id" gorm:"not null;index"`
	Text      string         `json:"text" gorm:"type:text;not null"`
	Type      string         `json:"type" gorm:"not null"`
	Answers   []Answer       `json:"answers,omitempty" gorm:"foreignKey:QuestionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
