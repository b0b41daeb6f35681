package service

import (
	"errors"
	"fmt"

	"github.com/ndmanh/learnhub/internal/dto"
	"github.com/ndmanh/learnhub/internal/model"
	"github.com/ndmanh/learnhub/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type EnrollmentService interface {
	Enroll(req dto.EnrollmentCreateDTO) (*dto.EnrollmentResponseDTO, error)
	GetEnrollmentsByUser(userID uint) ([]dto.EnrollmentResponseDTO, error)
	GetEnrollmentsByCourse(courseID uint) ([]dto.EnrollmentResponseDTO, error)
	Unenroll(id uint) error
}

type enrollmentService struct {
	enrollmentRepo repository.EnrollmentRepository
	userRepo       repository.UserRepository
	courseRepo     repository.CourseRepository
}

func NewEnrollmentService(
	enrollmentRepo repository.EnrollmentRepository,
	userRepo repository.UserRepository,
	courseRepo repository.CourseRepository,
) EnrollmentService {
	return &enrollmentService{enrollmentRepo: enrollmentRepo, userRepo: userRepo, courseRepo: courseRepo}
}

func (s *enrollmentService) Enroll(req dto.EnrollmentCreateDTO) (*dto.EnrollmentResponseDTO, error) {
	if _, err := s.userRepo.FindByID(req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("error fetching user %d: %w", req.UserID, err)
	}
	course, err := s.courseRepo.FindByID(req.CourseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, fmt.Errorf("error fetching course %d: %w", req.CourseID, err)
	}

	if _, err := s.enrollmentRepo.FindByUserAndCourse(req.UserID, req.CourseID); err == nil {
		return nil, ErrAlreadyEnrolled
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("error checking existing enrollment: %w", err)
	}

	enrollment := model.Enrollment{
		UserID:   req.UserID,
		CourseID: req.CourseID,
	}
	if err := s.enrollmentRepo.Create(&enrollment); err != nil {
		log.Error().Err(err).Uint("userID", req.UserID).Uint("courseID", req.CourseID).Msg("Enroll: failed to create enrollment")
		return nil, fmt.Errorf("database error creating enrollment: %w", err)
	}

	return &dto.EnrollmentResponseDTO{
		ID:          enrollment.ID,
		UserID:      enrollment.UserID,
		CourseID:    enrollment.CourseID,
		CourseTitle: course.Title,
		CreatedAt:   enrollment.CreatedAt,
	}, nil
}

func (s *enrollmentService) GetEnrollmentsByUser(userID uint) ([]dto.EnrollmentResponseDTO, error) {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("error fetching user %d: %w", userID, err)
	}

	enrollments, err := s.enrollmentRepo.FindByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("error fetching enrollments for user %d: %w", userID, err)
	}

	dtos := make([]dto.EnrollmentResponseDTO, 0, len(enrollments))
	for _, enrollment := range enrollments {
		dtos = append(dtos, dto.EnrollmentResponseDTO{
			ID:          enrollment.ID,
			UserID:      enrollment.UserID,
			CourseID:    enrollment.CourseID,
			CourseTitle: enrollment.Course.Title,
			CreatedAt:   enrollment.CreatedAt,
		})
	}
	return dtos, nil
}

func (s *enrollmentService) GetEnrollmentsByCourse(courseID uint) ([]dto.EnrollmentResponseDTO, error) {
	if _, err := s.courseRepo.FindByID(courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, fmt.Errorf("error fetching course %d: %w", courseID, err)
	}

	enrollments, err := s.enrollmentRepo.FindByCourseID(courseID)
	if err != nil {
		return nil, fmt.Errorf("error fetching enrollments for course %d: %w", courseID, err)
	}

	dtos := make([]dto.EnrollmentResponseDTO, 0, len(enrollments))
	for _, enrollment := range enrollments {
		dtos = append(dtos, dto.EnrollmentResponseDTO{
			ID:        enrollment.ID,
			UserID:    enrollment.UserID,
			UserName:  enrollment.User.Name,
			CourseID:  enrollment.CourseID,
			CreatedAt: enrollment.CreatedAt,
		})
	}
	return dtos, nil
}

func (s *enrollmentService) Unenroll(id uint) error {
	if _, err := s.enrollmentRepo.FindByID(id, false); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEnrollmentNotFound
		}
		return fmt.Errorf("error fetching enrollment %d: %w", id, err)
	}
	return s.enrollmentRepo.Delete(id)
}
