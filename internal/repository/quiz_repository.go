package repository

import (
	"github.com/easylearn/easylearn/internal/model"
	"gorm.io/gorm"
)

type QuizRepository interface {
	Create(quiz *model.Quiz) error
	FindByID(id uint) (*model.Quiz, error)
	FindByCourseIDs(courseIDs []uint) ([]model.Quiz, error)
	FindAllWithCourse() ([]model.Quiz, error)
	Delete(id uint) error
}

type quizRepository struct {
	db *gorm.DB
}

func NewQuizRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) Create(quiz *model.Quiz) error {
	return r.db.Create(quiz).Error
}

func (r *quizRepository) FindByID(id uint) (*model.Quiz, error) {
	var quiz model.Quiz
	if err := r.db.Preload("Course").First(&quiz, id).Error; err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *quizRepository) FindByCourseIDs(courseIDs []uint) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	if len(courseIDs) == 0 {
		return quizzes, nil
	}
	err := r.db.Preload("Course").
		Where("course_id IN ?", courseIDs).
		Order("created_at DESC").
		Find(&quizzes).Error
	return quizzes, err
}

func (r *quizRepository) FindAllWithCourse() ([]model.Quiz, error) {
	var quizzes []model.Quiz
	err := r.db.Preload("Course").Order("created_at DESC").Find(&quizzes).Error
	return quizzes, err
}

func (r *quizRepository) Delete(id uint) error {
	// Questions carry an OnDelete:CASCADE constraint; soft-delete them too so
	// queries through GORM stay consistent.
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quiz_id = ?", id).Delete(&model.QuizQuestion{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Quiz{}, id).Error
	})
}
