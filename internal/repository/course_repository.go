package repository

import (
	"github.com/easylearn/easylearn/internal/model"
	"gorm.io/gorm"
)

type CourseRepository interface {
	FindByID(id uint) (*model.Course, error)
	FindByProgramID(programID uint) ([]model.Course, error)
	FindIDsByProgramID(programID uint) ([]uint, error)
	FindAll() ([]model.Course, error)
}

type courseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) FindByID(id uint) (*model.Course, error) {
	var course model.Course
	if err := r.db.First(&course, id).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepository) FindByProgramID(programID uint) ([]model.Course, error) {
	var courses []model.Course
	err := r.db.Where("program_id = ?", programID).Order("semester ASC, code ASC").Find(&courses).Error
	return courses, err
}

func (r *courseRepository) FindIDsByProgramID(programID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&model.Course{}).Where("program_id = ?", programID).Pluck("id", &ids).Error
	return ids, err
}

func (r *courseRepository) FindAll() ([]model.Course, error) {
	var courses []model.Course
	err := r.db.Preload("Program").Order("code ASC").Find(&courses).Error
	return courses, err
}
