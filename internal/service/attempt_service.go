package service

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/ndmanh/learnhub/internal/dto"
	"github.com/ndmanh/learnhub/internal/model"
	"github.com/ndmanh/learnhub/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// PassScore is the minimum percentage score for an attempt to count as
// passed. The progress gate only accepts lessons whose quizzes all have a
// passing attempt.
const PassScore = 70

type AttemptService interface {
	SubmitAttempt(quizID uint, req dto.AttemptSubmitDTO) (*dto.AttemptResponseDTO, error)
	GetAttempts(userID, quizID uint) ([]dto.AttemptResponseDTO, error)
}

type attemptService struct {
	quizRepo    repository.QuizRepository
	attemptRepo repository.QuizAttemptRepository
	userRepo    repository.UserRepository
}

func NewAttemptService(
	quizRepo repository.QuizRepository,
	attemptRepo repository.QuizAttemptRepository,
	userRepo repository.UserRepository,
) AttemptService {
	return &attemptService{quizRepo: quizRepo, attemptRepo: attemptRepo, userRepo: userRepo}
}

// SubmitAttempt grades a submission against the stored answers and persists
// the result. Grading assumes structural correctness of the quiz (enforced
// at creation): UNIQUE and BOOL questions have exactly one correct answer,
// TEXT questions exactly one reference answer.
func (s *attemptService) SubmitAttempt(quizID uint, req dto.AttemptSubmitDTO) (*dto.AttemptResponseDTO, error) {
	if _, err := s.userRepo.FindByID(req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("error fetching user %d: %w", req.UserID, err)
	}

	quiz, err := s.quizRepo.FindByIDWithQuestions(quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuizNotFound
		}
		return nil, fmt.Errorf("error fetching quiz %d: %w", quizID, err)
	}
	if len(quiz.Questions) == 0 {
		return nil, fmt.Errorf("quiz %d has no questions, submission is not possible", quizID)
	}

	answersByQuestion := make(map[uint]dto.QuestionAnswerDTO, len(req.Answers))
	for _, a := range req.Answers {
		answersByQuestion[a.QuestionID] = a
	}

	correctCount := 0
	results := make([]dto.QuestionResultDTO, 0, len(quiz.Questions))
	for _, question := range quiz.Questions {
		given, answered := answersByQuestion[question.ID]
		correct := answered && gradeQuestion(question, given)
		if correct {
			correctCount++
		}
		results = append(results, dto.QuestionResultDTO{QuestionID: question.ID, Correct: correct})
	}

	score := int(math.Round(100 * float64(correctCount) / float64(len(quiz.Questions))))
	attempt := model.QuizAttempt{
		UserID: req.UserID,
		QuizID: quizID,
		Score:  score,
		Passed: score >= PassScore,
	}
	if err := s.attemptRepo.Create(&attempt); err != nil {
		log.Error().Err(err).Uint("quizID", quizID).Uint("userID", req.UserID).Msg("SubmitAttempt: failed to store attempt")
		return nil, fmt.Errorf("database error storing attempt: %w", err)
	}

	return &dto.AttemptResponseDTO{
		ID:        attempt.ID,
		UserID:    attempt.UserID,
		QuizID:    attempt.QuizID,
		Score:     attempt.Score,
		Passed:    attempt.Passed,
		Results:   results,
		CreatedAt: attempt.CreatedAt,
	}, nil
}

func (s *attemptService) GetAttempts(userID, quizID uint) ([]dto.AttemptResponseDTO, error) {
	attempts, err := s.attemptRepo.FindAllByUserAndQuiz(userID, quizID)
	if err != nil {
		return nil, fmt.Errorf("error fetching attempts for user %d quiz %d: %w", userID, quizID, err)
	}

	dtos := make([]dto.AttemptResponseDTO, 0, len(attempts))
	for _, attempt := range attempts {
		dtos = append(dtos, dto.AttemptResponseDTO{
			ID:        attempt.ID,
			UserID:    attempt.UserID,
			QuizID:    attempt.QuizID,
			Score:     attempt.Score,
			Passed:    attempt.Passed,
			CreatedAt: attempt.CreatedAt,
		})
	}
	return dtos, nil
}

func gradeQuestion(question model.Question, given dto.QuestionAnswerDTO) bool {
	switch question.Type {
	case model.QuestionTypeUnique, model.QuestionTypeBool:
		if len(given.AnswerIDs) != 1 {
			return false
		}
		for _, a := range question.Answers {
			if a.Correct {
				return a.ID == given.AnswerIDs[0]
			}
		}
		return false
	case model.QuestionTypeMultiple:
		correctIDs := make(map[uint]bool)
		for _, a := range question.Answers {
			if a.Correct {
				correctIDs[a.ID] = true
			}
		}
		if len(given.AnswerIDs) != len(correctIDs) {
			return false
		}
		for _, id := range given.AnswerIDs {
			if !correctIDs[id] {
				return false
			}
		}
		return true
	case model.QuestionTypeText:
		for _, a := range question.Answers {
			if a.Correct {
				return strings.EqualFold(strings.TrimSpace(given.Text), strings.TrimSpace(a.Text))
			}
		}
		return false
	}
	return false
}
