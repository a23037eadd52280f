package model

import (
	"time"

	"gorm.io/gorm"
)

type Resource struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CourseID  uint           `json:"course_id" gorm:"not null;index"`
	Course    Course         `json:"course,omitempty" gorm:"foreignKey:CourseID"`
	Title     string         `json:"title" gorm:"not null"`
	Type      string         `json:"type" gorm:"not null"` // "lecture_note", "slides", "past_question", "assignment"
	FileURL   string         `json:"file_url" gorm:"not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
