package repository

import (
	"github.com/easylearn/easylearn/internal/model"
	"gorm.io/gorm"
)

// SubmissionRepository only ever inserts and reads; submissions are immutable.
type SubmissionRepository interface {
	Create(submission *model.QuizSubmission) error
	FindByUserID(userID uint) ([]model.QuizSubmission, error)
	CountByUserID(userID uint) (int64, error)
}

type submissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) Create(submission *model.QuizSubmission) error {
	return r.db.Create(submission).Error
}

func (r *submissionRepository) FindByUserID(userID uint) ([]model.QuizSubmission, error) {
	var submissions []model.QuizSubmission
	err := r.db.Preload("Quiz").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&submissions).Error
	return submissions, err
}

func (r *submissionRepository) CountByUserID(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.QuizSubmission{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
