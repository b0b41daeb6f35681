package dto

import "time"

type ModuleCreateDTO struct {
	CourseID      uint   `json:"course_id" binding:"required"`
	Title         string `json:"title" binding:"required"`
	OrderInCourse int    `json:"order_in_course" binding:"omitempty,gte=0"`
}

type ModuleUpdateDTO struct {
	Title         string `json:"title" binding:"omitempty"`
	OrderInCourse *int   `json:"order_in_course" binding:"omitempty,gte=0"`
}

type ModuleResponseDTO struct {
	ID            uint                `json:"id"`
	CourseID      uint                `json:"course_id"`
	Title         string              `json:"title"`
	OrderInCourse int                 `json:"order_in_course"`
	Lessons       []LessonResponseDTO `json:"lessons,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
}
