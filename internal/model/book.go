package model

import (
	"time"

	"gorm.io/gorm"
)

type Book struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	ProgramID     uint           `json:"program_id" gorm:"not null;index"`
	Program       Program        `json:"program,omitempty" gorm:"foreignKey:ProgramID"`
	Title         string         `json:"title" gorm:"not null"`
	Author        string         `json:"author,omitempty"`
	Description   string         `json:"description,omitempty" gorm:"type:text"`
	FileURL       string         `json:"file_url" gorm:"not null"`
	CoverImageURL *string        `json:"cover_image_url,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
