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

type LessonService interface {
	CreateLesson(req dto.LessonCreateDTO) (*dto.LessonResponseDTO, error)
	GetLesson(id uint) (*dto.LessonResponseDTO, error)
	GetLessonsByModule(moduleID uint) ([]dto.LessonResponseDTO, error)
	UpdateLesson(id uint, req dto.LessonUpdateDTO) (*dto.LessonResponseDTO, error)
	DeleteLesson(id uint) error
}

type lessonService struct {
	lessonRepo repository.LessonRepository
	moduleRepo repository.ModuleRepository
}

func NewLessonService(lessonRepo repository.LessonRepository, moduleRepo repository.ModuleRepository) LessonService {
	return &lessonService{lessonRepo: lessonRepo, moduleRepo: moduleRepo}
}

func (s *lessonService) CreateLesson(req dto.LessonCreateDTO) (*dto.LessonResponseDTO, error) {
	if _, err := s.moduleRepo.FindByID(req.ModuleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrModuleNotFound
		}
		return nil, fmt.Errorf("error fetching module %d: %w", req.ModuleID, err)
	}

	lesson := model.Lesson{
		ModuleID:      req.ModuleID,
		Title:         req.Title,
		Content:       req.Content,
		OrderInModule: req.OrderInModule,
	}
	if err := s.lessonRepo.Create(&lesson); err != nil {
		return nil, fmt.Errorf("database error creating lesson: %w", err)
	}

	var resp dto.LessonResponseDTO
	copier.Copy(&resp, &lesson)
	return &resp, nil
}

func (s *lessonService) GetLesson(id uint) (*dto.LessonResponseDTO, error) {
	lesson, err := s.lessonRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLessonNotFound
		}
		return nil, fmt.Errorf("error fetching lesson %d: %w", id, err)
	}

	var resp dto.LessonResponseDTO
	copier.Copy(&resp, lesson)
	return &resp, nil
}

func (s *lessonService) GetLessonsByModule(moduleID uint) ([]dto.LessonResponseDTO, error) {
	if _, err := s.moduleRepo.FindByID(moduleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrModuleNotFound
		}
		return nil, fmt.Errorf("error fetching module %d: %w", moduleID, err)
	}

	lessons, err := s.lessonRepo.FindByModuleID(moduleID)
	if err != nil {
		return nil, fmt.Errorf("error fetching lessons for module %d: %w", moduleID, err)
	}

	dtos := make([]dto.LessonResponseDTO, 0, len(lessons))
	for _, lesson := range lessons {
		var resp dto.LessonResponseDTO
		copier.Copy(&resp, &lesson)
		dtos = append(dtos, resp)
	}
	return dtos, nil
}

func (s *lessonService) UpdateLesson(id uint, req dto.LessonUpdateDTO) (*dto.LessonResponseDTO, error) {
	lesson, err := s.lessonRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLessonNotFound
		}
		return nil, fmt.Errorf("error fetching lesson %d: %w", id, err)
	}

	if req.Title != "" {
		lesson.Title = req.Title
	}
	if req.Content != "" {
		lesson.Content = req.Content
	}
	if req.OrderInModule != nil {
		lesson.OrderInModule = *req.OrderInModule
	}

	if err := s.lessonRepo.Update(lesson); err != nil {
		return nil, fmt.Errorf("database error updating lesson %d: %w", id, err)
	}

	var resp dto.LessonResponseDTO
	copier.Copy(&resp, lesson)
	return &resp, nil
}

func (s *lessonService) DeleteLesson(id uint) error {
	if _, err := s.lessonRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLessonNotFound
		}
		return fmt.Errorf("error fetching lesson %d: %w", id, err)
	}
	return s.lessonRepo.Delete(id)
}
