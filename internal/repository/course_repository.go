package repository

import (
	"github.com/ndmanh/learnhub/internal/model"
	"gorm.io/gorm"
)

// CourseFilter narrows and paginates course listings.
type CourseFilter struct {
	CategoryID *uint
	Title      string // substring match, case-insensitive
	Page       int    // 1-based; 0 means no pagination
	Limit      int
}

type CourseRepository interface {
	Create(course *model.Course) error
	FindByID(id uint) (*model.Course, error)
	FindByIDWithModules(id uint) (*model.Course, error)
	FindAll(filter CourseFilter) ([]model.Course, int64, error)
	Update(course *model.Course) error
	Delete(id uint) error
}

type courseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) Create(course *model.Course) error {
	return r.db.Create(course).Error
}

func (r *courseRepository) FindByID(id uint) (*model.Course, error) {
	var course model.Course
	if err := r.db.Preload("Instructor").Preload("Category").First(&course, id).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepository) FindByIDWithModules(id uint) (*model.Course, error) {
	var course model.Course
	err := r.db.
		Preload("Instructor").
		Preload("Category").
		Preload("Modules", func(db *gorm.DB) *gorm.DB {
			return db.Order("modules.order_in_course ASC")
		}).
		Preload("Modules.Lessons", func(db *gorm.DB) *gorm.DB {
			return db.Order("lessons.order_in_module ASC")
		}).
		First(&course, id).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepository) FindAll(filter CourseFilter) ([]model.Course, int64, error) {
	query := r.db.Model(&model.Course{})
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.Title != "" {
		query = query.Where("title ILIKE ?", "%"+filter.Title+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.Page > 0 && filter.Limit > 0 {
		query = query.Offset((filter.Page - 1) * filter.Limit).Limit(filter.Limit)
	}

	var courses []model.Course
	err := query.Preload("Instructor").Preload("Category").Order("created_at desc").Find(&courses).Error
	if err != nil {
		return nil, 0, err
	}
	return courses, total, nil
}

func (r *courseRepository) Update(course *model.Course) error {
	return r.db.Save(course).Error
}

func (r *courseRepository) Delete(id uint) error {
	return r.db.Delete(&model.Course{}, id).Error
}
