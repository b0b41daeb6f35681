package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/ndmanh/learnhub/internal/dto"
	"github.com/ndmanh/learnhub/internal/model"
	"github.com/ndmanh/learnhub/internal/repository"
	"gorm.io/gorm"
)

type ModuleService interface {
	CreateModule(req dto.ModuleCreateDTO) (*dto.ModuleResponseDTO, error)
	GetModule(id uint) (*dto.ModuleResponseDTO, error)
	GetModulesByCourse(courseID uint) ([]dto.ModuleResponseDTO, error)
	UpdateModule(id uint, req dto.ModuleUpdateDTO) (*dto.ModuleResponseDTO, error)
	DeleteModule(id uint) error
}

type moduleService struct {
	moduleRepo repository.ModuleRepository
	courseRepo repository.CourseRepository
}

func NewModuleService(moduleRepo repository.ModuleRepository, courseRepo repository.CourseRepository) ModuleService {
	return &moduleService{moduleRepo: moduleRepo, courseRepo: courseRepo}
}

func (s *moduleService) CreateModule(req dto.ModuleCreateDTO) (*dto.ModuleResponseDTO, error) {
	if _, err := s.courseRepo.FindByID(req.CourseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, fmt.Errorf("error fetching course %d: %w", req.CourseID, err)
	}

	module := model.Module{
		CourseID:      req.CourseID,
		Title:         req.Title,
		OrderInCourse: req.OrderInCourse,
	}
	if err := s.moduleRepo.Create(&module); err != nil {
		return nil, fmt.Errorf("database error creating module: %w", err)
	}

	var resp dto.ModuleResponseDTO
	copier.Copy(&resp, &module)
	return &resp, nil
}

func (s *moduleService) GetModule(id uint) (*dto.ModuleResponseDTO, error) {
	module, err := s.moduleRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrModuleNotFound
		}
		return nil, fmt.Errorf("error fetching module %d: %w", id, err)
	}

	var resp dto.ModuleResponseDTO
	copier.Copy(&resp, module)
	return &resp, nil
}

func (s *moduleService) GetModulesByCourse(courseID uint) ([]dto.ModuleResponseDTO, error) {
	if _, err := s.courseRepo.FindByID(courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, fmt.Errorf("error fetching course %d: %w", courseID, err)
	}

	modules, err := s.moduleRepo.FindByCourseID(courseID)
	if err != nil {
		return nil, fmt.Errorf("error fetching modules for course %d: %w", courseID, err)
	}

	dtos := make([]dto.ModuleResponseDTO, 0, len(modules))
	for _, module := range modules {
		var resp dto.ModuleResponseDTO
		copier.Copy(&resp, &module)
		dtos = append(dtos, resp)
	}
	return dtos, nil
}

func (s *moduleService) UpdateModule(id uint, req dto.ModuleUpdateDTO) (*dto.ModuleResponseDTO, error) {
	module, err := s.moduleRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrModuleNotFound
		}
		return nil, fmt.Errorf("error fetching module %d: %w", id, err)
	}

	if req.Title != "" {
		module.Title = req.Title
	}
	if req.OrderInCourse != nil {
		module.OrderInCourse = *req.OrderInCourse
	}

	if err := s.moduleRepo.Update(module); err != nil {
		return nil, fmt.Errorf("database error updating module %d: %w", id, err)
	}

	var resp dto.ModuleResponseDTO
	copier.Copy(&resp, module)
	return &resp, nil
}

func (s *moduleService) DeleteModule(id uint) error {
	if _, err := s.moduleRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrModuleNotFound
		}
		return fmt.Errorf("error fetching module %d: %w", id, err)
	}
	return s.moduleRepo.Delete(id)
}
