package model

import (
	"time"

	"gorm.io/gorm"
)

type Enrollment struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	UserID    uint           `json:"user_id" gorm:"not null;uniqueIndex:idx_user_course"`
	User      User           `json:"user,omitempty" gorm:"foreignKey:UserID"`
	CourseID  uint           `json:"course_id" gorm:"not null;uniqueIndex:idx_user_course"`
	Course    Course         `json:"course,omitempty" gorm:"foreignKey:CourseID"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
