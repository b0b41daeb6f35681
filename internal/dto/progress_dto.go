package dto

type ProgressUpdateDTO struct {
	Status string `json:"status" binding:"required,oneof=NOT_STARTED IN_PROGRESS COMPLETED"`
}

type CourseProgressResponseDTO struct {
	EnrollmentID uint   `json:"enrollment_id"`
	LessonID     uint   `json:"lesson_id"`
	Status       string `json:"status"`
	LessonTitle  string `json:"lesson_title,omitempty"`
}

type CompletionRateDTO struct {
	EnrollmentID   uint  `json:"enrollment_id"`
	Completed      int64 `json:"completed"`
	Total          int64 `json:"total"`
	CompletionRate int   `json:"completion_rate"` // rounded percentage
}

type AnalyticsDTO struct {
	TotalProgress         int64   `json:"total_progress"`
	Completed             int64   `json:"completed"`
	OverallCompletionRate float64 `json:"overall_completion_rate"`
}
