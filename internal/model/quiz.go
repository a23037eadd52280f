package model

import (
	"time"

	"gorm.io/gorm"
)

type Quiz struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	CourseID        uint           `json:"course_id" gorm:"not null;index"`
	Course          Course         `json:"course,omitempty" gorm:"foreignKey:CourseID"`
	Title           string         `json:"title" gorm:"not null"`
	DurationMinutes int            `json:"duration_minutes" gorm:"not null"`
	// TotalQuestions is the declared count shown on quiz cards; scoring always
	// uses the number of questions actually stored.
	TotalQuestions int            `json:"total_questions" gorm:"not null"`
	Questions      []QuizQuestion `json:"questions,omitempty" gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE;"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
