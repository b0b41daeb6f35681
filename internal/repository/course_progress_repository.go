package repository

import (
	"github.com/ndmanh/learnhub/internal/model"
	"gorm.io/gorm"
)

// ProgressFilter narrows progress counts. Zero values mean "all".
type ProgressFilter struct {
	EnrollmentID uint
	Status       string
}

type CourseProgressRepository interface {
	FindByEnrollmentAndLesson(enrollmentID, lessonID uint) (*model.CourseProgress, error)
	FindByEnrollmentID(enrollmentID uint) ([]model.CourseProgress, error)
	// Save performs the insert-or-update half of the find-then-save upsert;
	// concurrent writers to the same pair are last-writer-wins (the unique
	// index on the pair keeps the table free of duplicates).
	Save(progress *model.CourseProgress) error
	Count(filter ProgressFilter) (int64, error)
}

type courseProgressRepository struct {
	db *gorm.DB
}

func NewCourseProgressRepository(db *gorm.DB) CourseProgressRepository {
	return &courseProgressRepository{db: db}
}

func (r *courseProgressRepository) FindByEnrollmentAndLesson(enrollmentID, lessonID uint) (*model.CourseProgress, error) {
	var progress model.CourseProgress
	err := r.db.Where("enrollment_id = ? AND lesson_id = ?", enrollmentID, lessonID).First(&progress).Error
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

func (r *courseProgressRepository) FindByEnrollmentID(enrollmentID uint) ([]model.CourseProgress, error) {
	var rows []model.CourseProgress
	err := r.db.Where("enrollment_id = ?", enrollmentID).Preload("Lesson").Order("lesson_id asc").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *courseProgressRepository) Save(progress *model.CourseProgress) error {
	return r.db.Save(progress).Error
}

func (r *courseProgressRepository) Count(filter ProgressFilter) (int64, error) {
	query := r.db.Model(&model.CourseProgress{})
	if filter.EnrollmentID != 0 {
		query = query.Where("enrollment_id = ?", filter.EnrollmentID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
