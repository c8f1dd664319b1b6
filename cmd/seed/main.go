// cmd/seed/main.go
//
// 開発用のサンプルデータ投入ツール。
// 設定は本体と同じ configs/config.yaml と APP_ 環境変数から読み込む。
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"

	"scrum_sensei/internal/config"
	"scrum_sensei/internal/model"
	"scrum_sensei/internal/repository"
	"scrum_sensei/internal/service"
)

func main() {
	configDir := os.Getenv("APP_CONFIG_DIR")
	if configDir == "" {
		configDir = "configs"
	}
	if err := config.LoadConfig(configDir); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelInfo, TimeFormat: time.Kitchen}))
	slog.SetDefault(logger)

	dbCfg := config.Cfg.Database
	dbCfg.AutoMigrate = true // 空のDBでも投入できるようにする
	db, err := repository.NewDB(dbCfg, logger)
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get underlying sql.DB: %v", err)
	}
	defer sqlDB.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	contentRepo := repository.NewGormContentRepository()
	progressRepo := repository.NewGormProgressRepository()
	quizRepo := repository.NewGormQuizRepository()
	progressService := service.NewProgressService(db, progressRepo, contentRepo, nil, config.Cfg.App.TopicLimit)
	contentService := service.NewContentService(db, contentRepo, progressRepo, quizRepo, nil)
	quizService := service.NewQuizService(db, quizRepo, contentRepo, progressRepo, progressService)

	existing, err := contentService.ListContents(ctx, "")
	if err != nil {
		log.Fatalf("Failed to list contents: %v", err)
	}
	if len(existing) > 0 && os.Getenv("SEED_FORCE") == "" {
		slog.Info("Contents already exist, skipping seed (set SEED_FORCE=1 to add anyway)", slog.Int("count", len(existing)))
		return
	}

	for _, s := range samples() {
		content, err := contentService.CreateContent(ctx, &s.content)
		if err != nil {
			log.Fatalf("Failed to create content %q: %v", s.content.Title, err)
		}
		if _, err := contentService.PublishContent(ctx, content.ID); err != nil {
			log.Fatalf("Failed to publish content %q: %v", s.content.Title, err)
		}

		s.quiz.ContentID = content.ID
		q, err := quizService.CreateQuiz(ctx, &s.quiz)
		if err != nil {
			log.Fatalf("Failed to create quiz for %q: %v", s.content.Title, err)
		}
		slog.Info("Seeded content",
			slog.String("content_id", content.ID),
			slog.String("title", content.Title),
			slog.Int("sections", len(content.Sections)),
			slog.String("quiz_id", q.ID),
		)
	}
}

type sample struct {
	content model.CreateContentRequest
	quiz    model.CreateQuizRequest
}

func samples() []sample {
	return []sample{
		{
			content: model.CreateContentRequest{
				Title:         "スクラムの3つの役割",
				Description:   "プロダクトオーナー、スクラムマスター、開発者の責任を学ぶ",
				Type:          "lesson",
				Tags:          []string{"scrum", "roles"},
				Difficulty:    "beginner",
				EstimatedTime: 15,
				Sections: []model.SectionRequest{
					{Title: "プロダクトオーナー", Content: "プロダクトバックログの管理に責任を持つ。", Order: 0},
					{Title: "スクラムマスター", Content: "スクラムの理解と実践を支援する。", Order: 1},
					{Title: "開発者", Content: "各スプリントで利用可能なインクリメントを作成する。", Order: 2},
				},
			},
			quiz: model.CreateQuizRequest{
				Title: "役割の確認",
				Questions: []model.Question{
					{
						ID: "q1", Type: model.QuestionTypeMultipleChoice,
						Text: "プロダクトバックログの並び替えに責任を持つのは?",
						Options: []model.QuestionOption{
							{ID: "a", Text: "スクラムマスター"},
							{ID: "b", Text: "プロダクトオーナー", IsCorrect: true},
							{ID: "c", Text: "開発者"},
						},
					},
					{
						ID: "q2", Type: model.QuestionTypeShortAnswer,
						Text:          "スクラムの理論と実践を支援する役割は?",
						CorrectAnswer: "スクラムマスター",
					},
				},
			},
		},
		{
			content: model.CreateContentRequest{
				Title:         "スクラムイベント",
				Description:   "スプリントを構成する5つのイベント",
				Type:          "lesson",
				Tags:          []string{"scrum", "events"},
				Difficulty:    "intermediate",
				EstimatedTime: 20,
				Sections: []model.SectionRequest{
					{Title: "スプリントプランニング", Order: 0},
					{Title: "デイリースクラム", Order: 1},
					{Title: "スプリントレビューとレトロスペクティブ", Order: 2},
				},
			},
			quiz: model.CreateQuizRequest{
				Title: "イベントの確認",
				Questions: []model.Question{
					{
						ID: "q1", Type: model.QuestionTypeMultipleSelect,
						Text: "スプリントの最後に行うイベントをすべて選べ",
						Options: []model.QuestionOption{
							{ID: "a", Text: "スプリントレビュー", IsCorrect: true},
							{ID: "b", Text: "スプリントレトロスペクティブ", IsCorrect: true},
							{ID: "c", Text: "デイリースクラム"},
						},
					},
					{
						ID: "q2", Type: model.QuestionTypeShortAnswer,
						Text:          "毎日15分で行うイベントは?",
						CorrectAnswer: "Daily Scrum",
						Points:        2,
					},
				},
			},
		},
	}
}
