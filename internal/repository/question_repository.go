package repository

import (
	"github.com/easylearn/easylearn/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(question *model.QuizQuestion) error
	FindByQuizID(quizID uint) ([]model.QuizQuestion, error)
	CountByQuizID(quizID uint) (int64, error)
	Delete(id uint) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(question *model.QuizQuestion) error {
	return r.db.Create(question).Error
}

func (r *questionRepository) FindByQuizID(quizID uint) ([]model.QuizQuestion, error) {
	var questions []model.QuizQuestion
	// Fetch order is the session's question order.
	err := r.db.Where("quiz_id = ?", quizID).Order("id ASC").Find(&questions).Error
	return questions, err
}

func (r *questionRepository) CountByQuizID(quizID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.QuizQuestion{}).Where("quiz_id = ?", quizID).Count(&count).Error
	return count, err
}

func (r *questionRepository) Delete(id uint) error {
	return r.db.Delete(&model.QuizQuestion{}, id).Error
}
