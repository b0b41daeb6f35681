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

type CategoryService interface {
	CreateCategory(req dto.CategoryCreateDTO) (*dto.CategoryResponseDTO, error)
	GetCategory(id uint) (*dto.CategoryResponseDTO, error)
	GetAllCategories() ([]dto.CategoryResponseDTO, error)
	UpdateCategory(id uint, req dto.CategoryUpdateDTO) (*dto.CategoryResponseDTO, error)
	DeleteCategory(id uint) error
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) CreateCategory(req dto.CategoryCreateDTO) (*dto.CategoryResponseDTO, error) {
	if _, err := s.categoryRepo.FindByName(req.Name); err == nil {
		return nil, ErrCategoryNameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("error checking category name: %w", err)
	}

	category := model.Category{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.categoryRepo.Create(&category); err != nil {
		return nil, fmt.Errorf("database error creating category: %w", err)
	}

	var resp dto.CategoryResponseDTO
	copier.Copy(&resp, &category)
	return &resp, nil
}

func (s *categoryService) GetCategory(id uint) (*dto.CategoryResponseDTO, error) {
	category, err := s.categoryRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("error fetching category %d: %w", id, err)
	}

	var resp dto.CategoryResponseDTO
	copier.Copy(&resp, category)
	return &resp, nil
}

func (s *categoryService) GetAllCategories() ([]dto.CategoryResponseDTO, error) {
	categories, err := s.categoryRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("error fetching categories: %w", err)
	}

	dtos := make([]dto.CategoryResponseDTO, 0, len(categories))
	for _, category := range categories {
		var resp dto.CategoryResponseDTO
		copier.Copy(&resp, &category)
		dtos = append(dtos, resp)
	}
	return dtos, nil
}

func (s *categoryService) UpdateCategory(id uint, req dto.CategoryUpdateDTO) (*dto.CategoryResponseDTO, error) {
	category, err := s.categoryRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("error fetching category %d: %w", id, err)
	}

	if req.Name != "" {
		category.Name = req.Name
	}
	if req.Description != "" {
		category.Description = req.Description
	}

	if err := s.categoryRepo.Update(category); err != nil {
		return nil, fmt.Errorf("database error updating category %d: %w", id, err)
	}

	var resp dto.CategoryResponseDTO
	copier.Copy(&resp, category)
	return &resp, nil
}

func (s *categoryService) DeleteCategory(id uint) error {
	if _, err := s.categoryRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		return fmt.Errorf("error fetching category %d: %w", id, err)
	}
	return s.categoryRepo.Delete(id)
}
