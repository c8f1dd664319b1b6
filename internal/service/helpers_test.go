package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"scrum_sensei/internal/model"
	"scrum_sensei/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB はテストごとに独立したインメモリDBを作成します。
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxLifetime(0)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, repository.AutoMigrate(db))
	return db
}

// seedContent はセクション数とタグを指定してコンテンツを作成します。
func seedContent(t *testing.T, db *gorm.DB, tags []string, sectionCount int) *model.Content {
	t.Helper()

	content := &model.Content{
		ID:        uuid.NewString(),
		Title:     "スクラム入門",
		Status:    model.ContentStatusDraft,
		Tags:      tags,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	for i := 0; i < sectionCount; i++ {
		content.Sections = append(content.Sections, model.ContentSection{
			ID:    uuid.NewString(),
			Title: fmt.Sprintf("セクション%d", i+1),
			Order: i,
		})
	}
	require.NoError(t, repository.NewGormContentRepository().Create(context.Background(), db, content))
	return content
}

func intPtr(v int) *int { return &v }

func statusPtr(s model.ProgressStatus) *model.ProgressStatus { return &s }

// realServices は実DBを使うサービス一式を組み立てます (キャッシュは任意)
func realServices(db *gorm.DB, cache repository.StatsCache) (ProgressService, ContentService, QuizService) {
	contentRepo := repository.NewGormContentRepository()
	progRepo := repository.NewGormProgressRepository()
	quizRepo := repository.NewGormQuizRepository()

	progressSvc := NewProgressService(db, progRepo, contentRepo, cache, 3)
	contentSvc := NewContentService(db, contentRepo, progRepo, quizRepo, cache)
	quizSvc := NewQuizService(db, quizRepo, contentRepo, progRepo, progressSvc)
	return progressSvc, contentSvc, quizSvc
}
