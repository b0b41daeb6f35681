package model

import (
	"time"

	"gorm.io/gorm"
)

type Lesson struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	ModuleID      uint           `json:"module_id" gorm:"not null;index"`
	Title         string         `json:"title" gorm:"not null"`
	Content       string         `json:"content,omitempty" gorm:"type:text"`
	OrderInModule int            `json:"order_in_module" gorm:"not null;default:0"`
	Quizzes       []Quiz         `json:"quizzes,omitempty" gorm:"foreignKey:LessonID"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
