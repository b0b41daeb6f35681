package model

import (
	"time"

	"gorm.io/gorm"
)

// Progress statuses. NOT_STARTED is the implicit default for lessons that
// have no row yet; a row is only created on the first progress update.
const (
	ProgressNotStarted = "NOT_STARTED"
	ProgressInProgress = "IN_PROGRESS"
	ProgressCompleted  = "COMPLETED"
)

// CourseProgress is unique per (enrollment, lesson). It is created on the
// first update for the pair and mutated in place afterwards.
type CourseProgress struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	EnrollmentID uint           `json:"enrollment_id" gorm:"not null;uniqueIndex:idx_enrollment_lesson"`
	Enrollment   Enrollment     `json:"enrollment,omitempty" gorm:"foreignKey:EnrollmentID"`
	LessonID     uint           `json:"lesson_id" gorm:"not null;uniqueIndex:idx_enrollment_lesson"`
	Lesson       Lesson         `json:"lesson,omitempty" gorm:"foreignKey:LessonID"`
	Status       string         `json:"status" gorm:"not null;default:'NOT_STARTED'"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
