package service

import (
	"errors"
	"fmt"
	"math"

	"github.com/ndmanh/learnhub/internal/dto"
	"github.com/ndmanh/learnhub/internal/model"
	"github.com/ndmanh/learnhub/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ProgressService mediates lesson progress transitions. Marking a lesson
// COMPLETED is gated on the enrollment's user having a passing attempt for
// every quiz attached to the lesson; other statuses bypass the quiz check.
type ProgressService interface {
	UpdateProgress(enrollmentID, lessonID uint, status string) (*dto.CourseProgressResponseDTO, error)
	GetCourseProgress(enrollmentID uint) ([]dto.CourseProgressResponseDTO, error)
	GetCompletionRate(enrollmentID uint) (*dto.CompletionRateDTO, error)
	GetAnalytics() (*dto.AnalyticsDTO, error)
}

type progressService struct {
	enrollmentRepo repository.EnrollmentRepository
	lessonRepo     repository.LessonRepository
	quizRepo       repository.QuizRepository
	attemptRepo    repository.QuizAttemptRepository
	progressRepo   repository.CourseProgressRepository
}

func NewProgressService(
	enrollmentRepo repository.EnrollmentRepository,
	lessonRepo repository.LessonRepository,
	quizRepo repository.QuizRepository,
	attemptRepo repository.QuizAttemptRepository,
	progressRepo repository.CourseProgressRepository,
) ProgressService {
	return &progressService{
		enrollmentRepo: enrollmentRepo,
		lessonRepo:     lessonRepo,
		quizRepo:       quizRepo,
		attemptRepo:    attemptRepo,
		progressRepo:   progressRepo,
	}
}

// UpdateProgress upserts the (enrollment, lesson) progress row. The quiz
// requirement is re-derived from the attempt store on every completion
// attempt rather than cached, so the check is always current. The read and
// write are not one atomic transaction: concurrent completions of the same
// pair are last-writer-wins.
func (s *progressService) UpdateProgress(enrollmentID, lessonID uint, status string) (*dto.CourseProgressResponseDTO, error) {
	enrollment, err := s.enrollmentRepo.FindByID(enrollmentID, true)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("error fetching enrollment %d: %w", enrollmentID, err)
	}

	lesson, err := s.lessonRepo.FindByID(lessonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLessonNotFound
		}
		return nil, fmt.Errorf("error fetching lesson %d: %w", lessonID, err)
	}

	if status == model.ProgressCompleted {
		if err := s.checkQuizRequirement(enrollment.UserID, lessonID); err != nil {
			return nil, err
		}
	}

	progress, err := s.progressRepo.FindByEnrollmentAndLesson(enrollmentID, lessonID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("error fetching progress for enrollment %d lesson %d: %w", enrollmentID, lessonID, err)
		}
		progress = &model.CourseProgress{
			EnrollmentID: enrollmentID,
			LessonID:     lessonID,
			Status:       status,
		}
	} else {
		progress.Status = status
	}

	if err := s.progressRepo.Save(progress); err != nil {
		log.Error().Err(err).Uint("enrollmentID", enrollmentID).Uint("lessonID", lessonID).Msg("UpdateProgress: failed to save progress")
		return nil, fmt.Errorf("error saving progress: %w", err)
	}

	return &dto.CourseProgressResponseDTO{
		EnrollmentID: enrollmentID,
		LessonID:     lessonID,
		Status:       progress.Status,
		LessonTitle:  lesson.Title,
	}, nil
}

// checkQuizRequirement fails with the first quiz lacking a passing attempt,
// in quiz order. A lesson with no quizzes satisfies the gate vacuously.
func (s *progressService) checkQuizRequirement(userID, lessonID uint) error {
	quizzes, err := s.quizRepo.FindByLessonID(lessonID)
	if err != nil {
		return fmt.Errorf("error fetching quizzes for lesson %d: %w", lessonID, err)
	}

	for _, quiz := range quizzes {
		attempt, err := s.attemptRepo.FindLatestByUserAndQuiz(userID, quiz.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &QuizRequirementError{QuizTitle: quiz.Title}
			}
			return fmt.Errorf("error fetching attempt for quiz %d: %w", quiz.ID, err)
		}
		if !attempt.Passed {
			return &QuizRequirementError{QuizTitle: quiz.Title}
		}
	}
	return nil
}

func (s *progressService) GetCourseProgress(enrollmentID uint) ([]dto.CourseProgressResponseDTO, error) {
	if _, err := s.enrollmentRepo.FindByID(enrollmentID, false); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEnrollmentNotFound
		}
		return nil, fmt.Errorf("error fetching enrollment %d: %w", enrollmentID, err)
	}

	rows, err := s.progressRepo.FindByEnrollmentID(enrollmentID)
	if err != nil {
		return nil, fmt.Errorf("error fetching progress for enrollment %d: %w", enrollmentID, err)
	}

	dtos := make([]dto.CourseProgressResponseDTO, 0, len(rows))
	for _, row := range rows {
		dtos = append(dtos, dto.CourseProgressResponseDTO{
			EnrollmentID: row.EnrollmentID,
			LessonID:     row.LessonID,
			Status:       row.Status,
			LessonTitle:  row.Lesson.Title,
		})
	}
	return dtos, nil
}

// GetCompletionRate reports completed versus total progress rows for one
// enrollment, with the rate rounded to the nearest whole percent. A zero
// total short-circuits to an all-zero result.
func (s *progressService) GetCompletionRate(enrollmentID uint) (*dto.CompletionRateDTO, error) {
	total, err := s.progressRepo.Count(repository.ProgressFilter{EnrollmentID: enrollmentID})
	if err != nil {
		return nil, fmt.Errorf("error counting progress for enrollment %d: %w", enrollmentID, err)
	}
	if total == 0 {
		return &dto.CompletionRateDTO{EnrollmentID: enrollmentID}, nil
	}

	completed, err := s.progressRepo.Count(repository.ProgressFilter{
		EnrollmentID: enrollmentID,
		Status:       model.ProgressCompleted,
	})
	if err != nil {
		return nil, fmt.Errorf("error counting completed progress for enrollment %d: %w", enrollmentID, err)
	}

	return &dto.CompletionRateDTO{
		EnrollmentID:   enrollmentID,
		Completed:      completed,
		Total:          total,
		CompletionRate: int(math.Round(100 * float64(completed) / float64(total))),
	}, nil
}

// GetAnalytics reports global completion across all enrollments. The overall
// rate is deliberately unrounded.
func (s *progressService) GetAnalytics() (*dto.AnalyticsDTO, error) {
	total, err := s.progressRepo.Count(repository.ProgressFilter{})
	if err != nil {
		return nil, fmt.Errorf("error counting progress rows: %w", err)
	}

	completed, err := s.progressRepo.Count(repository.ProgressFilter{Status: model.ProgressCompleted})
	if err != nil {
		return nil, fmt.Errorf("error counting completed progress rows: %w", err)
	}

	result := &dto.AnalyticsDTO{TotalProgress: total, Completed: completed}
	if total > 0 {
		result.OverallCompletionRate = 100 * float64(completed) / float64(total)
	}
	return result, nil
}
