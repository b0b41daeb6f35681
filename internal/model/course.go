package model

import (
	"time"

	"gorm.io/gorm"
)

type Course struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	Title        string         `json:"title" gorm:"not null"`
	Description  string         `json:"description,omitempty" gorm:"type:text"`
	Price        float64        `json:"price" gorm:"not null;default:0"`
	InstructorID uint           `json:"instructor_id" gorm:"not null;index"`
	Instructor   User           `json:"instructor,omitempty" gorm:"foreignKey:InstructorID"`
	CategoryID   uint           `json:"category_id" gorm:"not null;index"`
	Category     Category       `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Modules      []Module       `json:"modules,omitempty" gorm:"foreignKey:CourseID"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
