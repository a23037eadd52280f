package repository

import (
	"github.com/easylearn/easylearn/internal/model"
	"gorm.io/gorm"
)

type BookRepository interface {
	Create(book *model.Book) error
	FindByProgramID(programID uint) ([]model.Book, error)
	FindRecentByProgramID(programID uint, limit int) ([]model.Book, error)
	CountByProgramID(programID uint) (int64, error)
	FindAll() ([]model.Book, error)
	Delete(id uint) error
}

type bookRepository struct {
	db *gorm.DB
}

func NewBookRepository(db *gorm.DB) BookRepository {
	return &bookRepository{db: db}
}

func (r *bookRepository) Create(book *model.Book) error {
	return r.db.Create(book).Error
}

func (r *bookRepository) FindByProgramID(programID uint) ([]model.Book, error) {
	var books []model.Book
	err := r.db.Where("program_id = ?", programID).Order("created_at DESC").Find(&books).Error
	return books, err
}

func (r *bookRepository) FindRecentByProgramID(programID uint, limit int) ([]model.Book, error) {
	var books []model.Book
	err := r.db.Where("program_id = ?", programID).Order("created_at DESC").Limit(limit).Find(&books).Error
	return books, err
}

func (r *bookRepository) CountByProgramID(programID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Book{}).Where("program_id = ?", programID).Count(&count).Error
	return count, err
}

func (r *bookRepository) FindAll() ([]model.Book, error) {
	var books []model.Book
	err := r.db.Order("created_at DESC").Find(&books).Error
	return books, err
}

func (r *bookRepository) Delete(id uint) error {
	return r.db.Delete(&model.Book{}, id).Error
}
