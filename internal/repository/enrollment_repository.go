package repository

import (
	"github.com/ndmanh/learnhub/internal/model"
	"gorm.io/gorm"
)

type EnrollmentRepository interface {
	Create(enrollment *model.Enrollment) error
	FindByID(id uint, withUser bool) (*model.Enrollment, error)
	FindByUserAndCourse(userID, courseID uint) (*model.Enrollment, error)
	FindByUserID(userID uint) ([]model.Enrollment, error)
	FindByCourseID(courseID uint) ([]model.Enrollment, error)
	Delete(id uint) error
}

type enrollmentRepository struct {
	db *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) EnrollmentRepository {
	return &enrollmentRepository{db: db}
}

func (r *enrollmentRepository) Create(enrollment *model.Enrollment) error {
	return r.db.Create(enrollment).Error
}

func (r *enrollmentRepository) FindByID(id uint, withUser bool) (*model.Enrollment, error) {
	var enrollment model.Enrollment
	query := r.db
	if withUser {
		query = query.Preload("User")
	}
	if err := query.First(&enrollment, id).Error; err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func (r *enrollmentRepository) FindByUserAndCourse(userID, courseID uint) (*model.Enrollment, error) {
	var enrollment model.Enrollment
	err := r.db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func (r *enrollmentRepository) FindByUserID(userID uint) ([]model.Enrollment, error) {
	var enrollments []model.Enrollment
	err := r.db.Where("user_id = ?", userID).Preload("Course").Order("created_at desc").Find(&enrollments).Error
	if err != nil {
		return nil, err
	}
	return enrollments, nil
}

func (r *enrollmentRepository) FindByCourseID(courseID uint) ([]model.Enrollment, error) {
	var enrollments []model.Enrollment
	err := r.db.Where("course_id = ?", courseID).Preload("User").Order("created_at desc").Find(&enrollments).Error
	if err != nil {
		return nil, err
	}
	return enrollments, nil
}

func (r *enrollmentRepository) Delete(id uint) error {
	return r.db.Delete(&model.Enrollment{}, id).Error
}
