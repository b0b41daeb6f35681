package dto

import "time"

type ReviewCreateDTO struct {
	UserID   uint   `json:"user_id" binding:"required"`
	CourseID uint   `json:"course_id" binding:"required"`
	Rating   int    `json:"rating" binding:"required,min=1,max=5"`
	Comment  string `json:"comment,omitempty"`
}

type ReviewUpdateDTO struct {
	Rating  *int   `json:"rating" binding:"omitempty,min=1,max=5"`
	Comment string `json:"comment,omitempty"`
}

type ReviewResponseDTO struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	UserName  string    `json:"user_name,omitempty"`
	CourseID  uint      `json:"course_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type CourseReviewsDTO struct {
	CourseID      uint                `json:"course_id"`
	AverageRating float64             `json:"average_rating"`
	Reviews       []ReviewResponseDTO `json:"reviews"`
}
