package repository

import (
	"github.com/ndmanh/learnhub/internal/model"
	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(review *model.Review) error
	FindByID(id uint) (*model.Review, error)
	FindByUserAndCourse(userID, courseID uint) (*model.Review, error)
	FindByCourseID(courseID uint) ([]model.Review, error)
	AverageRatingByCourse(courseID uint) (float64, error)
	Update(review *model.Review) error
	Delete(id uint) error
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(review *model.Review) error {
	return r.db.Create(review).Error
}

func (r *reviewRepository) FindByID(id uint) (*model.Review, error) {
	var review model.Review
	if err := r.db.First(&review, id).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) FindByUserAndCourse(userID, courseID uint) (*model.Review, error) {
	var review model.Review
	err := r.db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&review).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) FindByCourseID(courseID uint) ([]model.Review, error) {
	var reviews []model.Review
	err := r.db.Where("course_id = ?", courseID).Preload("User").Order("created_at desc").Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) AverageRatingByCourse(courseID uint) (float64, error) {
	var avg *float64
	err := r.db.Model(&model.Review{}).
		Select("AVG(rating)").
		Where("course_id = ?", courseID).
		Scan(&avg).Error
	if err != nil {
		return 0, err
	}
	if avg == nil {
		return 0, nil
	}
	return *avg, nil
}

func (r *reviewRepository) Update(review *model.Review) error {
	return r.db.Save(review).Error
}

func (r *reviewRepository) Delete(id uint) error {
	return r.db.Delete(&model.Review{}, id).Error
}
