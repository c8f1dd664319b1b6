//go:generate mockery --name ContentRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"scrum_sensei/internal/middleware"
	"scrum_sensei/internal/model"

	"gorm.io/gorm"
)

type ContentRepository interface {
	Create(ctx context.Context, tx *gorm.DB, content *model.Content) error
	FindByID(ctx context.Context, db *gorm.DB, contentID string) (*model.Content, error)
	List(ctx context.Context, db *gorm.DB, status model.ContentStatus) ([]*model.Content, error)
	Update(ctx context.Context, tx *gorm.DB, contentID string, updates map[string]interface{}) error
	ReplaceSections(ctx context.Context, tx *gorm.DB, contentID string, sections []model.ContentSection) error
	UpdateStatus(ctx context.Context, tx *gorm.DB, contentID string, status model.ContentStatus, at time.Time) (int64, error)
	Delete(ctx context.Context, tx *gorm.DB, contentID string) (int64, error)
}

type gormContentRepository struct{}

func NewGormContentRepository() ContentRepository {
	return &gormContentRepository{}
}

func (r *gormContentRepository) Create(ctx context.Context, tx *gorm.DB, content *model.Content) error {
	logger := middleware.GetLogger(ctx)

	db := tx.WithContext(ctx)

	// 関連の自動保存は衝突を黙って無視するため、セクションは明示的に INSERT する
	if err := db.Omit("Sections").Create(content).Error; err != nil {
		if isDuplicateKeyError(err) {
			logger.Warn("Duplicate key error on create content", "error", err, "content_id", content.ID)
			return model.ErrConflict
		}
		logger.Error("Error creating content in DB", "error", err, "content_id", content.ID)
		return fmt.Errorf("gormContentRepository.Create: %w", err)
	}
	if len(content.Sections) == 0 {
		return nil
	}
	for i := range content.Sections {
		content.Sections[i].ContentID = content.ID
	}
	if err := db.Create(&content.Sections).Error; err != nil {
		if isDuplicateKeyError(err) {
			logger.Warn("Duplicate section id on create content", "error", err, "content_id", content.ID)
			return model.ErrConflict
		}
		logger.Error("Error creating content sections in DB", "error", err, "content_id", content.ID)
		return fmt.Errorf("gormContentRepository.Create: %w", err)
	}
	return nil
}

func (r *gormContentRepository) FindByID(ctx context.Context, db *gorm.DB, contentID string) (*model.Content, error) {
	var content model.Content

	result := db.WithContext(ctx).
		Preload("Sections", func(db *gorm.DB) *gorm.DB {
			return db.Order("section_order ASC")
		}).
		Where("id = ?", contentID).
		First(&content)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error("Error finding content by ID in DB", "error", result.Error, "content_id", contentID)
		return nil, fmt.Errorf("gormContentRepository.FindByID: %w", result.Error)
	}
	return &content, nil
}

// List は status が空なら全件を返します (作成日時の新しい順)
func (r *gormContentRepository) List(ctx context.Context, db *gorm.DB, status model.ContentStatus) ([]*model.Content, error) {
	var contents []*model.Content

	query := db.WithContext(ctx).
		Preload("Sections", func(db *gorm.DB) *gorm.DB {
			return db.Order("section_order ASC")
		}).
		Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Find(&contents).Error; err != nil {
		middleware.GetLogger(ctx).Error("Error listing contents in DB", "error", err, "status", status)
		return nil, fmt.Errorf("gormContentRepository.List: %w", err)
	}
	return contents, nil
}

func (r *gormContentRepository) Update(ctx context.Context, tx *gorm.DB, contentID string, updates map[string]interface{}) error {
	result := tx.WithContext(ctx).Model(&model.Content{}).Where("id = ?", contentID).Updates(updates)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error updating content in DB", "error", result.Error, "content_id", contentID)
		return fmt.Errorf("gormContentRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

// ReplaceSections は既存セクションを全削除してから入れ直します (差分更新はしない)
func (r *gormContentRepository) ReplaceSections(ctx context.Context, tx *gorm.DB, contentID string, sections []model.ContentSection) error {
	logger := middleware.GetLogger(ctx)

	if err := tx.WithContext(ctx).Where("content_id = ?", contentID).Delete(&model.ContentSection{}).Error; err != nil {
		logger.Error("Error deleting content sections", "error", err, "content_id", contentID)
		return fmt.Errorf("gormContentRepository.ReplaceSections: %w", err)
	}
	if len(sections) == 0 {
		return nil
	}

	for i := range sections {
		sections[i].ContentID = contentID
	}
	if err := tx.WithContext(ctx).Create(&sections).Error; err != nil {
		if isDuplicateKeyError(err) {
			logger.Warn("Duplicate section id on replace", "error", err, "content_id", contentID)
			return model.ErrConflict
		}
		logger.Error("Error inserting content sections", "error", err, "content_id", contentID)
		return fmt.Errorf("gormContentRepository.ReplaceSections: %w", err)
	}
	return nil
}

// UpdateStatus は status と日時を更新し、影響行数を返します。
// published への遷移時のみ published_at を設定する。
func (r *gormContentRepository) UpdateStatus(ctx context.Context, tx *gorm.DB, contentID string, status model.ContentStatus, at time.Time) (int64, error) {
	updates := map[string]interface{}{
		"status":     status,
		"updated_at": at,
	}
	if status == model.ContentStatusPublished {
		updates["published_at"] = at
	}

	result := tx.WithContext(ctx).Model(&model.Content{}).Where("id = ?", contentID).Updates(updates)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error updating content status", "error", result.Error, "content_id", contentID)
		return 0, fmt.Errorf("gormContentRepository.UpdateStatus: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// Delete はセクションとコンテンツ本体を削除します。進捗・クイズの削除は呼び出し側で行う。
func (r *gormContentRepository) Delete(ctx context.Context, tx *gorm.DB, contentID string) (int64, error) {
	logger := middleware.GetLogger(ctx)

	if err := tx.WithContext(ctx).Where("content_id = ?", contentID).Delete(&model.ContentSection{}).Error; err != nil {
		logger.Error("Error deleting content sections", "error", err, "content_id", contentID)
		return 0, fmt.Errorf("gormContentRepository.Delete: %w", err)
	}

	result := tx.WithContext(ctx).Where("id = ?", contentID).Delete(&model.Content{})
	if result.Error != nil {
		logger.Error("Error deleting content", "error", result.Error, "content_id", contentID)
		return 0, fmt.Errorf("gormContentRepository.Delete: %w", result.Error)
	}
	return result.RowsAffected, nil
}
