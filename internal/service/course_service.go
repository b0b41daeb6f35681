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

type CourseService interface {
	CreateCourse(req dto.CourseCreateDTO) (*dto.CourseResponseDTO, error)
	GetCourse(id uint) (*dto.CourseResponseDTO, error)
	GetCourses(filter repository.CourseFilter) (*dto.CourseListDTO, error)
	UpdateCourse(id uint, req dto.CourseUpdateDTO) (*dto.CourseResponseDTO, error)
	DeleteCourse(id uint) error
}

type courseService struct {
	courseRepo   repository.CourseRepository
	userRepo     repository.UserRepository
	categoryRepo repository.CategoryRepository
}

func NewCourseService(
	courseRepo repository.CourseRepository,
	userRepo repository.UserRepository,
	categoryRepo repository.CategoryRepository,
) CourseService {
	return &courseService{courseRepo: courseRepo, userRepo: userRepo, categoryRepo: categoryRepo}
}

func (s *courseService) CreateCourse(req dto.CourseCreateDTO) (*dto.CourseResponseDTO, error) {
	if _, err := s.userRepo.FindByID(req.InstructorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("error fetching instructor %d: %w", req.InstructorID, err)
	}
	if _, err := s.categoryRepo.FindByID(req.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("error fetching category %d: %w", req.CategoryID, err)
	}

	course := model.Course{
		Title:        req.Title,
		Description:  req.Description,
		Price:        req.Price,
		InstructorID: req.InstructorID,
		CategoryID:   req.CategoryID,
	}
	if err := s.courseRepo.Create(&course); err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("CreateCourse: failed to create course")
		return nil, fmt.Errorf("database error creating course: %w", err)
	}

	created, err := s.courseRepo.FindByID(course.ID)
	if err != nil {
		return courseToDTO(&course), nil
	}
	return courseToDTO(created), nil
}

func (s *courseService) GetCourse(id uint) (*dto.CourseResponseDTO, error) {
	course, err := s.courseRepo.FindByIDWithModules(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, fmt.Errorf("error fetching course %d: %w", id, err)
	}
	return courseToDTO(course), nil
}

func (s *courseService) GetCourses(filter repository.CourseFilter) (*dto.CourseListDTO, error) {
	courses, total, err := s.courseRepo.FindAll(filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching courses: %w", err)
	}

	dtos := make([]dto.CourseResponseDTO, 0, len(courses))
	for i := range courses {
		dtos = append(dtos, *courseToDTO(&courses[i]))
	}
	return &dto.CourseListDTO{
		Courses: dtos,
		Total:   total,
		Page:    filter.Page,
		Limit:   filter.Limit,
	}, nil
}

func (s *courseService) UpdateCourse(id uint, req dto.CourseUpdateDTO) (*dto.CourseResponseDTO, error) {
	course, err := s.courseRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, fmt.Errorf("error fetching course %d: %w", id, err)
	}

	if req.Title != "" {
		course.Title = req.Title
	}
	if req.Description != "" {
		course.Description = req.Description
	}
	if req.Price != nil {
		course.Price = *req.Price
	}
	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(*req.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCategoryNotFound
			}
			return nil, fmt.Errorf("error fetching category %d: %w", *req.CategoryID, err)
		}
		course.CategoryID = *req.CategoryID
	}

	if err := s.courseRepo.Update(course); err != nil {
		return nil, fmt.Errorf("database error updating course %d: %w", id, err)
	}
	return courseToDTO(course), nil
}

func (s *courseService) DeleteCourse(id uint) error {
	if _, err := s.courseRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCourseNotFound
		}
		return fmt.Errorf("error fetching course %d: %w", id, err)
	}
	return s.courseRepo.Delete(id)
}

func courseToDTO(course *model.Course) *dto.CourseResponseDTO {
	resp := &dto.CourseResponseDTO{
		ID:           course.ID,
		Title:        course.Title,
		Description:  course.Description,
		Price:        course.Price,
		InstructorID: course.InstructorID,
		CategoryID:   course.CategoryID,
		CreatedAt:    course.CreatedAt,
	}
	if course.Instructor.ID != 0 {
		resp.InstructorName = course.Instructor.Name
	}
	if course.Category.ID != 0 {
		resp.CategoryName = course.Category.Name
	}
	for _, module := range course.Modules {
		moduleDTO := dto.ModuleResponseDTO{
			ID:            module.ID,
			CourseID:      module.CourseID,
			Title:         module.Title,
			OrderInCourse: module.OrderInCourse,
			CreatedAt:     module.CreatedAt,
		}
		for _, lesson := range module.Lessons {
			moduleDTO.Lessons = append(moduleDTO.Lessons, dto.LessonResponseDTO{
				ID:            lesson.ID,
				ModuleID:      lesson.ModuleID,
				Title:         lesson.Title,
				Content:       lesson.Content,
				OrderInModule: lesson.OrderInModule,
				CreatedAt:     lesson.CreatedAt,
			})
		}
		resp.Modules = append(resp.Modules, moduleDTO)
	}
	return resp
}
