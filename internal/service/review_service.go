package service

import (
	"errors"
	"fmt"

	"github.com/ndmanh/learnhub/internal/dto"
	"github.com/ndmanh/learnhub/internal/model"
	"github.com/ndmanh/learnhub/internal/repository"
	"gorm.io/gorm"
)

type ReviewService interface {
	CreateReview(req dto.ReviewCreateDTO) (*dto.ReviewResponseDTO, error)
	GetCourseReviews(courseID uint) (*dto.CourseReviewsDTO, error)
	UpdateReview(id uint, req dto.ReviewUpdateDTO) (*dto.ReviewResponseDTO, error)
	DeleteReview(id uint) error
}

type reviewService struct {
	reviewRepo     repository.ReviewRepository
	enrollmentRepo repository.EnrollmentRepository
	courseRepo     repository.CourseRepository
}

func NewReviewService(
	reviewRepo repository.ReviewRepository,
	enrollmentRepo repository.EnrollmentRepository,
	courseRepo repository.CourseRepository,
) ReviewService {
	return &reviewService{reviewRepo: reviewRepo, enrollmentRepo: enrollmentRepo, courseRepo: courseRepo}
}

// CreateReview accepts a review only from a user enrolled in the course, and
// at most one review per (user, course).
func (s *reviewService) CreateReview(req dto.ReviewCreateDTO) (*dto.ReviewResponseDTO, error) {
	if _, err := s.courseRepo.FindByID(req.CourseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, fmt.Errorf("error fetching course %d: %w", req.CourseID, err)
	}

	if _, err := s.enrollmentRepo.FindByUserAndCourse(req.UserID, req.CourseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotEnrolled
		}
		return nil, fmt.Errorf("error checking enrollment: %w", err)
	}

	if _, err := s.reviewRepo.FindByUserAndCourse(req.UserID, req.CourseID); err == nil {
		return nil, ErrAlreadyReviewed
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("error checking existing review: %w", err)
	}

	review := model.Review{
		UserID:   req.UserID,
		CourseID: req.CourseID,
		Rating:   req.Rating,
		Comment:  req.Comment,
	}
	if err := s.reviewRepo.Create(&review); err != nil {
		return nil, fmt.Errorf("database error creating review: %w", err)
	}

	return reviewToDTO(&review), nil
}

func (s *reviewService) GetCourseReviews(courseID uint) (*dto.CourseReviewsDTO, error) {
	if _, err := s.courseRepo.FindByID(courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, fmt.Errorf("error fetching course %d: %w", courseID, err)
	}

	reviews, err := s.reviewRepo.FindByCourseID(courseID)
	if err != nil {
		return nil, fmt.Errorf("error fetching reviews for course %d: %w", courseID, err)
	}
	avg, err := s.reviewRepo.AverageRatingByCourse(courseID)
	if err != nil {
		return nil, fmt.Errorf("error computing average rating for course %d: %w", courseID, err)
	}

	result := &dto.CourseReviewsDTO{
		CourseID:      courseID,
		AverageRating: avg,
		Reviews:       make([]dto.ReviewResponseDTO, 0, len(reviews)),
	}
	for i := range reviews {
		result.Reviews = append(result.Reviews, *reviewToDTO(&reviews[i]))
	}
	return result, nil
}

func (s *reviewService) UpdateReview(id uint, req dto.ReviewUpdateDTO) (*dto.ReviewResponseDTO, error) {
	review, err := s.reviewRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, fmt.Errorf("error fetching review %d: %w", id, err)
	}

	if req.Rating != nil {
		review.Rating = *req.Rating
	}
	if req.Comment != "" {
		review.Comment = req.Comment
	}

	if err := s.reviewRepo.Update(review); err != nil {
		return nil, fmt.Errorf("database error updating review %d: %w", id, err)
	}
	return reviewToDTO(review), nil
}

func (s *reviewService) DeleteReview(id uint) error {
	if _, err := s.reviewRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReviewNotFound
		}
		return fmt.Errorf("error fetching review %d: %w", id, err)
	}
	return s.reviewRepo.Delete(id)
}

func reviewToDTO(review *model.Review) *dto.ReviewResponseDTO {
	resp := &dto.ReviewResponseDTO{
		ID:        review.ID,
		UserID:    review.UserID,
		CourseID:  review.CourseID,
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
	}
	if review.User.ID != 0 {
		resp.UserName = review.User.Name
	}
	return resp
}
