package dto

import "time"

type LessonCreateDTO struct {
	ModuleID      uint   `json:"module_id" binding:"required"`
	Title         string `json:"title" binding:"required"`
	Content       string `json:"content,omitempty"`
	OrderInModule int    `json:"order_in_module" binding:"omitempty,gte=0"`
}

type LessonUpdateDTO struct {
	Title         string `json:"title" binding:"omitempty"`
	Content       string `json:"content,omitempty"`
	OrderInModule *int   `json:"order_in_module" binding:"omitempty,gte=0"`
}

type LessonResponseDTO struct {
	ID            uint      `json:"id"`
	ModuleID      uint      `json:"module_id"`
	Title         string    `json:"title"`
	Content       string    `json:"content,omitempty"`
	OrderInModule int       `json:"order_in_module"`
	CreatedAt     time.Time `json:"created_at"`
}
