//go:generate mockery --name ProgressRepository --output ./mocks --outpkg mocks --case=underscore
// internal/repository/progress_repository.go
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"scrum_sensei/internal/middleware"
	"scrum_sensei/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepository interface {
	FindByID(ctx context.Context, db *gorm.DB, progressID string) (*model.UserProgress, error)
	FindByUserID(ctx context.Context, db *gorm.DB, userID string) ([]*model.UserProgress, error)
	FindByUserAndContent(ctx context.Context, db *gorm.DB, userID, contentID string) (*model.UserProgress, error)
	FindUserIDsByContentID(ctx context.Context, db *gorm.DB, contentID string) ([]string, error)
	Upsert(ctx context.Context, tx *gorm.DB, progress *model.UserProgress) (*model.UserProgress, error)
	Update(ctx context.Context, tx *gorm.DB, progressID string, updates map[string]interface{}) error
	UpsertSection(ctx context.Context, tx *gorm.DB, section *model.SectionProgress) error
	CountCompletedSections(ctx context.Context, db *gorm.DB, progressID string, sectionIDs []string) (int64, error)
	CreateQuizResult(ctx context.Context, tx *gorm.DB, result *model.QuizResult) error
	FindLatestQuizResult(ctx context.Context, db *gorm.DB, progressID, quizID string) (*model.QuizResult, error)
	SumByUser(ctx context.Context, db *gorm.DB, userID string) (*model.ProgressTotals, error)
	AverageScoreByUser(ctx context.Context, db *gorm.DB, userID string) (avg float64, count int64, err error)
	FindScoredTagsByUser(ctx context.Context, db *gorm.DB, userID string) ([]model.ScoredTags, error)
	DeleteByContentID(ctx context.Context, tx *gorm.DB, contentID string) error
}

type gormProgressRepository struct{}

func NewGormProgressRepository() ProgressRepository {
	return &gormProgressRepository{}
}

// hydrate は子テーブル (セクション進捗・クイズ結果・回答) を Preload します。
// 子テーブルごとに1クエリで取得するため、行数に比例したクエリにはならない。
func hydrate(db *gorm.DB) *gorm.DB {
	return db.
		Preload("SectionProgress", func(db *gorm.DB) *gorm.DB {
			return db.Order("last_accessed ASC")
		}).
		Preload("QuizResults", func(db *gorm.DB) *gorm.DB {
			return db.Order("completed_at ASC")
		}).
		Preload("QuizResults.Answers")
}

func (r *gormProgressRepository) FindByID(ctx context.Context, db *gorm.DB, progressID string) (*model.UserProgress, error) {
	var progress model.UserProgress
	result := hydrate(db.WithContext(ctx)).Where("id = ?", progressID).First(&progress)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error("Error finding progress by ID", "error", result.Error, "progress_id", progressID)
		return nil, fmt.Errorf("gormProgressRepository.FindByID: %w", result.Error)
	}
	return &progress, nil
}

func (r *gormProgressRepository) FindByUserID(ctx context.Context, db *gorm.DB, userID string) ([]*model.UserProgress, error) {
	var progresses []*model.UserProgress
	result := hydrate(db.WithContext(ctx)).
		Where("user_id = ?", userID).
		Order("last_accessed DESC").
		Find(&progresses)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error finding progress by user", "error", result.Error, "user_id", userID)
		return nil, fmt.Errorf("gormProgressRepository.FindByUserID: %w", result.Error)
	}
	return progresses, nil
}

func (r *gormProgressRepository) FindByUserAndContent(ctx context.Context, db *gorm.DB, userID, contentID string) (*model.UserProgress, error) {
	var progress model.UserProgress
	result := hydrate(db.WithContext(ctx)).
		Where("user_id = ? AND content_id = ?", userID, contentID).
		First(&progress)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error("Error finding progress by user and content",
			"error", result.Error, "user_id", userID, "content_id", contentID)
		return nil, fmt.Errorf("gormProgressRepository.FindByUserAndContent: %w", result.Error)
	}
	return &progress, nil
}

// FindUserIDsByContentID はコンテンツに進捗を持つユーザーIDの一覧を返します。
func (r *gormProgressRepository) FindUserIDsByContentID(ctx context.Context, db *gorm.DB, contentID string) ([]string, error) {
	var userIDs []string
	err := db.WithContext(ctx).Model(&model.UserProgress{}).
		Where("content_id = ?", contentID).
		Distinct().
		Pluck("user_id", &userIDs).Error
	if err != nil {
		return nil, fmt.Errorf("gormProgressRepository.FindUserIDsByContentID: %w", err)
	}
	return userIDs, nil
}

// Upsert は (user_id, content_id) で INSERT … ON CONFLICT DO UPDATE を実行します。
// 既存行がある場合は time_spent を加算し、last_accessed / updated_at を更新する。
// 戻り値は保存後の行 (子テーブルは含まない)。
func (r *gormProgressRepository) Upsert(ctx context.Context, tx *gorm.DB, progress *model.UserProgress) (*model.UserProgress, error) {
	logger := middleware.GetLogger(ctx)

	result := tx.WithContext(ctx).
		Omit("SectionProgress", "QuizResults").
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "content_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"time_spent":    gorm.Expr("user_progress.time_spent + excluded.time_spent"),
				"last_accessed": gorm.Expr("excluded.last_accessed"),
				"updated_at":    gorm.Expr("excluded.updated_at"),
			}),
		}).
		Create(progress)
	if result.Error != nil {
		logger.Error("Error upserting progress", "error", result.Error,
			"user_id", progress.UserID, "content_id", progress.ContentID)
		return nil, fmt.Errorf("gormProgressRepository.Upsert: %w", result.Error)
	}

	// 競合時は既存行のIDになるため読み直す
	var saved model.UserProgress
	if err := tx.WithContext(ctx).
		Where("user_id = ? AND content_id = ?", progress.UserID, progress.ContentID).
		First(&saved).Error; err != nil {
		logger.Error("Error reloading upserted progress", "error", err,
			"user_id", progress.UserID, "content_id", progress.ContentID)
		return nil, fmt.Errorf("gormProgressRepository.Upsert: %w", err)
	}
	return &saved, nil
}

// Update は指定カラムだけを更新します。updates に gorm.Expr を渡せば加算も可能。
func (r *gormProgressRepository) Update(ctx context.Context, tx *gorm.DB, progressID string, updates map[string]interface{}) error {
	result := tx.WithContext(ctx).Model(&model.UserProgress{}).Where("id = ?", progressID).Updates(updates)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error updating progress", "error", result.Error, "progress_id", progressID)
		return fmt.Errorf("gormProgressRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

// UpsertSection は (progress_id, section_id) でセクション進捗を挿入または上書きします。
func (r *gormProgressRepository) UpsertSection(ctx context.Context, tx *gorm.DB, section *model.SectionProgress) error {
	result := tx.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "progress_id"}, {Name: "section_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"completed", "time_spent", "last_accessed"}),
		}).
		Create(section)
	if result.Error != nil {
		middleware.GetLogger(ctx).Error("Error upserting section progress", "error", result.Error,
			"progress_id", section.ProgressID, "section_id", section.SectionID)
		return fmt.Errorf("gormProgressRepository.UpsertSection: %w", result.Error)
	}
	return nil
}

// CountCompletedSections は sectionIDs に含まれる完了済みセクション進捗を数えます。
// セクション差し替えで消えたセクションの行は数えない。
func (r *gormProgressRepository) CountCompletedSections(ctx context.Context, db *gorm.DB, progressID string, sectionIDs []string) (int64, error) {
	if len(sectionIDs) == 0 {
		return 0, nil
	}
	var count int64
	err := db.WithContext(ctx).Model(&model.SectionProgress{}).
		Where("progress_id = ? AND completed = ? AND section_id IN ?", progressID, true, sectionIDs).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("gormProgressRepository.CountCompletedSections: %w", err)
	}
	return count, nil
}

// CreateQuizResult はクイズ結果と回答明細を追加します (既存の結果は変更しない)
func (r *gormProgressRepository) CreateQuizResult(ctx context.Context, tx *gorm.DB, result *model.QuizResult) error {
	if err := tx.WithContext(ctx).Create(result).Error; err != nil {
		if isDuplicateKeyError(err) {
			middleware.GetLogger(ctx).Warn("Duplicate key error on create quiz result", "error", err, "quiz_result_id", result.ID)
			return model.ErrConflict
		}
		middleware.GetLogger(ctx).Error("Error creating quiz result", "error", err,
			"progress_id", result.ProgressID, "quiz_id", result.QuizID)
		return fmt.Errorf("gormProgressRepository.CreateQuizResult: %w", err)
	}
	return nil
}

func (r *gormProgressRepository) FindLatestQuizResult(ctx context.Context, db *gorm.DB, progressID, quizID string) (*model.QuizResult, error) {
	var result model.QuizResult
	err := db.WithContext(ctx).
		Preload("Answers").
		Where("progress_id = ? AND quiz_id = ?", progressID, quizID).
		Order("completed_at DESC").
		First(&result).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormProgressRepository.FindLatestQuizResult: %w", err)
	}
	return &result, nil
}

func (r *gormProgressRepository) SumByUser(ctx context.Context, db *gorm.DB, userID string) (*model.ProgressTotals, error) {
	var totals model.ProgressTotals
	err := db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(time_spent), 0) AS total_time_spent,
		       COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS completed,
		       COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS in_progress
		FROM user_progress
		WHERE user_id = ?`,
		model.ProgressStatusCompleted, model.ProgressStatusInProgress, userID,
	).Scan(&totals).Error
	if err != nil {
		return nil, fmt.Errorf("gormProgressRepository.SumByUser: %w", err)
	}
	return &totals, nil
}

// AverageScoreByUser はユーザーの全クイズ結果の平均スコアと件数を返します。
func (r *gormProgressRepository) AverageScoreByUser(ctx context.Context, db *gorm.DB, userID string) (float64, int64, error) {
	var row struct {
		Average sql.NullFloat64
		Total   int64
	}
	err := db.WithContext(ctx).Raw(`
		SELECT AVG(qr.score) AS average, COUNT(qr.id) AS total
		FROM quiz_results qr
		JOIN user_progress up ON up.id = qr.progress_id
		WHERE up.user_id = ?`, userID,
	).Scan(&row).Error
	if err != nil {
		return 0, 0, fmt.Errorf("gormProgressRepository.AverageScoreByUser: %w", err)
	}
	return row.Average.Float64, row.Total, nil
}

// FindScoredTagsByUser はクイズ結果ごとのスコアとコンテンツのタグを返します。
// タグの展開はDB方言に依存するため集計はサービス層で行う。
func (r *gormProgressRepository) FindScoredTagsByUser(ctx context.Context, db *gorm.DB, userID string) ([]model.ScoredTags, error) {
	var rows []model.ScoredTags
	err := db.WithContext(ctx).Raw(`
		SELECT qr.score AS score, c.tags AS tags
		FROM quiz_results qr
		JOIN user_progress up ON up.id = qr.progress_id
		JOIN contents c ON c.id = up.content_id
		WHERE up.user_id = ?`, userID,
	).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("gormProgressRepository.FindScoredTagsByUser: %w", err)
	}
	return rows, nil
}

// DeleteByContentID はコンテンツに紐づく進捗と子テーブルをまとめて削除します。
func (r *gormProgressRepository) DeleteByContentID(ctx context.Context, tx *gorm.DB, contentID string) error {
	logger := middleware.GetLogger(ctx).With("content_id", contentID)
	db := tx.WithContext(ctx)

	progressIDs := db.Model(&model.UserProgress{}).Select("id").Where("content_id = ?", contentID)
	resultIDs := db.Model(&model.QuizResult{}).Select("id").Where("progress_id IN (?)", progressIDs)

	steps := []struct {
		name string
		run  func() error
	}{
		{"answer_details", func() error {
			return db.Where("quiz_result_id IN (?)", resultIDs).Delete(&model.AnswerDetail{}).Error
		}},
		{"quiz_results", func() error {
			return db.Where("progress_id IN (?)", progressIDs).Delete(&model.QuizResult{}).Error
		}},
		{"section_progress", func() error {
			return db.Where("progress_id IN (?)", progressIDs).Delete(&model.SectionProgress{}).Error
		}},
		{"user_progress", func() error {
			return db.Where("content_id = ?", contentID).Delete(&model.UserProgress{}).Error
		}},
	}
	for _, step := range steps {
		if err := step.run(); err != nil {
			logger.Error("Error deleting progress rows", "error", err, "table", step.name)
			return fmt.Errorf("gormProgressRepository.DeleteByContentID(%s): %w", step.name, err)
		}
	}
	return nil
}

