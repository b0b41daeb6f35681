package dto

import "time"

type CategoryCreateDTO struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description,omitempty"`
}

type CategoryUpdateDTO struct {
	Name        string `json:"name" binding:"omitempty"`
	Description string `json:"description,omitempty"`
}

type CategoryResponseDTO struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
