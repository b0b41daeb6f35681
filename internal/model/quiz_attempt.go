package model

import (
	"time"

	"gorm.io/gorm"
)

// QuizAttempt records one graded submission. Multiple attempts per
// (user, quiz) are allowed; the progress gate consults the latest one.
type QuizAttempt struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	UserID    uint           `json:"user_id" gorm:"not null;index:idx_user_quiz"`
	QuizID    uint           `json:"quiz_id" gorm:"not null;index:idx_user_quiz"`
	Quiz      Quiz           `json:"quiz,omitempty" gorm:"foreignKey:QuizID"`
	Score     int            `json:"score" gorm:"not null;default:0"` // 0..100
	Passed    bool           `json:"passed" gorm:"not null;default:false"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
