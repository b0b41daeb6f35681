package model

import (
	"time"

	"gorm.io/gorm"
)

type Review struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	UserID    uint           `json:"user_id" gorm:"not null;uniqueIndex:idx_user_course_review"`
	User      User           `json:"user,omitempty" gorm:"foreignKey:UserID"`
	CourseID  uint           `json:"course_id" gorm:"not null;uniqueIndex:idx_user_course_review"`
	Rating    int            `json:"rating" gorm:"not null"` // 1..5
	Comment   string         `json:"comment,omitempty" gorm:"type:text"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
