package dto

import "time"

type CourseCreateDTO struct {
	Title        string  `json:"title" binding:"required"`
	Description  string  `json:"description,omitempty"`
	Price        float64 `json:"price" binding:"omitempty,gte=0"`
	InstructorID uint    `json:"instructor_id" binding:"required"`
	CategoryID   uint    `json:"category_id" binding:"required"`
}

type CourseUpdateDTO struct {
	Title       string   `json:"title" binding:"omitempty"`
	Description string   `json:"description,omitempty"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
	CategoryID  *uint    `json:"category_id" binding:"omitempty"`
}

type CourseResponseDTO struct {
	ID             uint                `json:"id"`
	Title          string              `json:"title"`
	Description    string              `json:"description,omitempty"`
	Price          float64             `json:"price"`
	InstructorID   uint                `json:"instructor_id"`
	InstructorName string              `json:"instructor_name,omitempty"`
	CategoryID     uint                `json:"category_id"`
	CategoryName   string              `json:"category_name,omitempty"`
	Modules        []ModuleResponseDTO `json:"modules,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
}

type CourseListDTO struct {
	Courses []CourseResponseDTO `json:"courses"`
	Total   int64               `json:"total"`
	Page    int                 `json:"page,omitempty"`
	Limit   int                 `json:"limit,omitempty"`
}
