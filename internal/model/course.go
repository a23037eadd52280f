package model

import (
	"time"

	"gorm.io/gorm"
)

type Course struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	ProgramID uint           `json:"program_id" gorm:"not null;index"`
	Program   Program        `json:"program,omitempty" gorm:"foreignKey:ProgramID"`
	Code      string         `json:"code" gorm:"not null;uniqueIndex"` // "CS101"
	Name      string         `json:"name" gorm:"not null"`
	Semester  int            `json:"semester" gorm:"not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
