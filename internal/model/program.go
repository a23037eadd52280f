package model

import (
	"time"

	"gorm.io/gorm"
)

type Program struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Name        string         `json:"name" gorm:"not null;uniqueIndex"`
	Code        string         `json:"code" gorm:"not null;uniqueIndex"` // "CS", "CPE", "IT", ...
	Description string         `json:"description,omitempty"`
	Courses     []Course       `json:"courses,omitempty" gorm:"foreignKey:ProgramID"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
