package model

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	SchoolID     string         `json:"school_id" gorm:"not null;uniqueIndex"`
	Email        string         `json:"email" gorm:"not null;uniqueIndex"`
	Phone        string         `json:"phone,omitempty" gorm:"index"`
	FullName     string         `json:"full_name" gorm:"not null"`
	PasswordHash string         `json:"-" gorm:"not null"`
	ProgramID    uint           `json:"program_id" gorm:"not null;index"`
	Program      Program        `json:"program,omitempty" gorm:"foreignKey:ProgramID"`
	Semester     int            `json:"semester" gorm:"not null;default:1"`
	AvatarURL    *string        `json:"avatar_url,omitempty"`
	IsAdmin      bool           `json:"is_admin" gorm:"not null;default:false"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
