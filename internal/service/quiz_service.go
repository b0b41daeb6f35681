package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/ndmanh/learnhub/internal/dto"
	"github.com/ndmanh/learnhub/internal/model"
	"github.com/ndmanh/learnhub/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type QuizService interface {
	CreateQuiz(lessonID uint, req dto.QuizCreateDTO) (*dto.QuizResponseDTO, error)
	GetQuiz(id uint) (*dto.QuizResponseDTO, error)
	GetQuizzesByLesson(lessonID uint) ([]dto.QuizSummaryDTO, error)
	DeleteQuiz(id uint) error
}

type quizService struct {
	quizRepo   repository.QuizRepository
	lessonRepo repository.LessonRepository
}

func NewQuizService(quizRepo repository.QuizRepository, lessonRepo repository.LessonRepository) QuizService {
	return &quizService{quizRepo: quizRepo, lessonRepo: lessonRepo}
}

// CreateQuiz validates the structural shape of the request and persists the
// quiz with all its questions and answers in a single create. Nothing is
// stored when validation fails.
func (s *quizService) CreateQuiz(lessonID uint, req dto.QuizCreateDTO) (*dto.QuizResponseDTO, error) {
	if _, err := s.lessonRepo.FindByID(lessonID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLessonNotFound
		}
		return nil, fmt.Errorf("error fetching lesson %d: %w", lessonID, err)
	}

	if err := ValidateQuiz(req); err != nil {
		return nil, err
	}

	quiz := model.Quiz{
		LessonID: lessonID,
		Title:    req.Title,
	}
	for _, qDto := range req.Questions {
		question := model.Question{
			Text: qDto.Text,
			Type: qDto.Type,
		}
		for _, aDto := range qDto.Answers {
			question.Answers = append(question.Answers, model.Answer{
				Text:    aDto.Text,
				Correct: aDto.Correct,
			})
		}
		quiz.Questions = append(quiz.Questions, question)
	}

	if err := s.quizRepo.Create(&quiz); err != nil {
		log.Error().Err(err).Uint("lessonID", lessonID).Msg("CreateQuiz: failed to create quiz")
		return nil, fmt.Errorf("database error creating quiz: %w", err)
	}

	created, err := s.quizRepo.FindByIDWithQuestions(quiz.ID)
	if err != nil {
		log.Error().Err(err).Uint("quizID", quiz.ID).Msg("CreateQuiz: failed to reload created quiz")
		var fallback dto.QuizResponseDTO
		copier.Copy(&fallback, &quiz)
		return &fallback, nil
	}

	var resp dto.QuizResponseDTO
	if err := copier.Copy(&resp, created); err != nil {
		return nil, fmt.Errorf("error preparing quiz response: %w", err)
	}
	return &resp, nil
}

func (s *quizService) GetQuiz(id uint) (*dto.QuizResponseDTO, error) {
	quiz, err := s.quizRepo.FindByIDWithQuestions(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuizNotFound
		}
		return nil, fmt.Errorf("error fetching quiz %d: %w", id, err)
	}

	var resp dto.QuizResponseDTO
	if err := copier.Copy(&resp, quiz); err != nil {
		return nil, fmt.Errorf("error preparing quiz response: %w", err)
	}
	return &resp, nil
}

func (s *quizService) GetQuizzesByLesson(lessonID uint) ([]dto.QuizSummaryDTO, error) {
	if _, err := s.lessonRepo.FindByID(lessonID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLessonNotFound
		}
		return nil, fmt.Errorf("error fetching lesson %d: %w", lessonID, err)
	}

	quizzes, err := s.quizRepo.FindByLessonID(lessonID)
	if err != nil {
		return nil, fmt.Errorf("error fetching quizzes for lesson %d: %w", lessonID, err)
	}

	dtos := make([]dto.QuizSummaryDTO, 0, len(quizzes))
	for _, quiz := range quizzes {
		dtos = append(dtos, dto.QuizSummaryDTO{
			ID:        quiz.ID,
			LessonID:  quiz.LessonID,
			Title:     quiz.Title,
			CreatedAt: quiz.CreatedAt,
		})
	}
	return dtos, nil
}

func (s *quizService) DeleteQuiz(id uint) error {
	if _, err := s.quizRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrQuizNotFound
		}
		return fmt.Errorf("error fetching quiz %d: %w", id, err)
	}
	return s.quizRepo.Delete(id)
}
