//go:generate mockery --name QuizRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"scrum_sensei/internal/middleware"
	"scrum_sensei/internal/model"

	"gorm.io/gorm"
)

type QuizRepository interface {
	Create(ctx context.Context, tx *gorm.DB, quiz *model.Quiz) error
	FindByID(ctx context.Context, db *gorm.DB, quizID string) (*model.Quiz, error)
	FindByContentID(ctx context.Context, db *gorm.DB, contentID string) ([]*model.Quiz, error)
	DeleteByContentID(ctx context.Context, tx *gorm.DB, contentID string) error
}

type gormQuizRepository struct{}

func NewGormQuizRepository() QuizRepository {
	return &gormQuizRepository{}
}

func (r *gormQuizRepository) Create(ctx context.Context, tx *gorm.DB, quiz *model.Quiz) error {
	logger := middleware.GetLogger(ctx)
	if err := tx.WithContext(ctx).Create(quiz).Error; err != nil {
		if isDuplicateKeyError(err) {
			logger.Warn("Duplicate key error on create quiz", "error", err, "quiz_id", quiz.ID)
			return model.ErrConflict
		}
		logger.Error("Error creating quiz in DB", "error", err, "quiz_id", quiz.ID)
		return fmt.Errorf("gormQuizRepository.Create: %w", err)
	}
	return nil
}

func (r *gormQuizRepository) FindByID(ctx context.Context, db *gorm.DB, quizID string) (*model.Quiz, error) {
	var quiz model.Quiz
	if err := db.WithContext(ctx).Where("id = ?", quizID).First(&quiz).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error("Error finding quiz by ID in DB", "error", err, "quiz_id", quizID)
		return nil, fmt.Errorf("gormQuizRepository.FindByID: %w", err)
	}
	return &quiz, nil
}

func (r *gormQuizRepository) FindByContentID(ctx context.Context, db *gorm.DB, contentID string) ([]*model.Quiz, error) {
	var quizzes []*model.Quiz
	if err := db.WithContext(ctx).Where("content_id = ?", contentID).Order("created_at ASC").Find(&quizzes).Error; err != nil {
		return nil, fmt.Errorf("gormQuizRepository.FindByContentID: %w", err)
	}
	return quizzes, nil
}

func (r *gormQuizRepository) DeleteByContentID(ctx context.Context, tx *gorm.DB, contentID string) error {
	if err := tx.WithContext(ctx).Where("content_id = ?", contentID).Delete(&model.Quiz{}).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error deleting quizzes", "error", err, "content_id", contentID)
		return fmt.Errorf("gormQuizRepository.DeleteByContentID: %w", err)
	}
	return nil
}
