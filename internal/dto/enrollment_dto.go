package dto

import "time"

type EnrollmentCreateDTO struct {
	UserID   uint `json:"user_id" binding:"required"`
	CourseID uint `json:"course_id" binding:"required"`
}

type EnrollmentResponseDTO struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"user_id"`
	UserName    string    `json:"user_name,omitempty"`
	CourseID    uint      `json:"course_id"`
	CourseTitle string    `json:"course_title,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
