package repository

import (
	"github.com/easylearn/easylearn/internal/model"
	"gorm.io/gorm"
)

type ResourceRepository interface {
	Create(resource *model.Resource) error
	FindByCourseIDs(courseIDs []uint) ([]model.Resource, error)
	FindRecentByCourseIDs(courseIDs []uint, limit int) ([]model.Resource, error)
	CountByCourseIDs(courseIDs []uint) (int64, error)
	Delete(id uint) error
}

type resourceRepository struct {
	db *gorm.DB
}

func NewResourceRepository(db *gorm.DB) ResourceRepository {
	return &resourceRepository{db: db}
}

func (r *resourceRepository) Create(resource *model.Resource) error {
	return r.db.Create(resource).Error
}

func (r *resourceRepository) FindByCourseIDs(courseIDs []uint) ([]model.Resource, error) {
	var resources []model.Resource
	if len(courseIDs) == 0 {
		return resources, nil
	}
	err := r.db.Preload("Course").
		Where("course_id IN ?", courseIDs).
		Order("created_at DESC").
		Find(&resources).Error
	return resources, err
}

func (r *resourceRepository) FindRecentByCourseIDs(courseIDs []uint, limit int) ([]model.Resource, error) {
	var resources []model.Resource
	if len(courseIDs) == 0 {
		return resources, nil
	}
	err := r.db.Preload("Course").
		Where("course_id IN ?", courseIDs).
		Order("created_at DESC").
		Limit(limit).
		Find(&resources).Error
	return resources, err
}

func (r *resourceRepository) CountByCourseIDs(courseIDs []uint) (int64, error) {
	if len(courseIDs) == 0 {
		return 0, nil
	}
	var count int64
	err := r.db.Model(&model.Resource{}).Where("course_id IN ?", courseIDs).Count(&count).Error
	return count, err
}

func (r *resourceRepository) Delete(id uint) error {
	return r.db.Delete(&model.Resource{}, id).Error
}
