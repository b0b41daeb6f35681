package repository

import (
	"github.com/ndmanh/learnhub/internal/model"
	"gorm.io/gorm"
)

type QuizAttemptRepository interface {
	Create(attempt *model.QuizAttempt) error
	// FindLatestByUserAndQuiz returns the most recent attempt for the pair,
	// or gorm.ErrRecordNotFound when the user never attempted the quiz.
	FindLatestByUserAndQuiz(userID, quizID uint) (*model.QuizAttempt, error)
	FindAllByUserAndQuiz(userID, quizID uint) ([]model.QuizAttempt, error)
}

type quizAttemptRepository struct {
	db *gorm.DB
}

func NewQuizAttemptRepository(db *gorm.DB) QuizAttemptRepository {
	return &quizAttemptRepository{db: db}
}

func (r *quizAttemptRepository) Create(attempt *model.QuizAttempt) error {
	return r.db.Create(attempt).Error
}

func (r *quizAttemptRepository) FindLatestByUserAndQuiz(userID, quizID uint) (*model.QuizAttempt, error) {
	var attempt model.QuizAttempt
	err := r.db.
		Where("user_id = ? AND quiz_id = ?", userID, quizID).
		Order("created_at desc").
		First(&attempt).Error
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *quizAttemptRepository) FindAllByUserAndQuiz(userID, quizID uint) ([]model.QuizAttempt, error) {
	var attempts []model.QuizAttempt
	err := r.db.
		Where("user_id = ? AND quiz_id = ?", userID, quizID).
		Order("created_at desc").
		Find(&attempts).Error
	if err != nil {
		return nil, err
	}
	return attempts, nil
}
