//go:generate mockery --name ProgressService --output ./mocks --outpkg mocks --case=underscore
// internal/service/progress_service.go
package service

import (
	"cmp"
	"context"
	"errors"
	"math"
	"slices"
	"time"

	"scrum_sensei/internal/middleware"
	"scrum_sensei/internal/model"
	"scrum_sensei/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProgressService interface {
	GetUserProgress(ctx context.Context, userID string) ([]*model.UserProgress, error)
	GetContentProgress(ctx context.Context, userID, contentID string) (*model.UserProgress, error)
	CreateProgress(ctx context.Context, req *model.CreateProgressRequest) (*model.UserProgress, error)
	UpdateProgress(ctx context.Context, progressID string, req *model.UpdateProgressRequest) (*model.UserProgress, error)
	RecordQuizResult(ctx context.Context, userID, contentID string, result *model.QuizResult) (*model.UserProgress, error)
	GetUserStats(ctx context.Context, userID string) (*model.LearningStatistics, error)
}

type progressService struct {
	db          *gorm.DB
	progRepo    repository.ProgressRepository
	contentRepo repository.ContentRepository
	cache       repository.StatsCache // nil ならキャッシュしない
	topicLimit  int
	now         func() time.Time
}

func NewProgressService(
	db *gorm.DB,
	progRepo repository.ProgressRepository,
	contentRepo repository.ContentRepository,
	cache repository.StatsCache,
	topicLimit int,
) ProgressService {
	if topicLimit <= 0 {
		topicLimit = 3
	}
	return &progressService{
		db:          db,
		progRepo:    progRepo,
		contentRepo: contentRepo,
		cache:       cache,
		topicLimit:  topicLimit,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *progressService) GetUserProgress(ctx context.Context, userID string) ([]*model.UserProgress, error) {
	if userID == "" {
		return nil, invalidInput("MISSING_USER_ID", "ユーザーIDは必須です。", "userId")
	}
	progresses, err := s.progRepo.FindByUserID(ctx, s.db, userID)
	if err != nil {
		return nil, internalError("学習進捗の取得に失敗しました。", err)
	}
	return progresses, nil
}

func (s *progressService) GetContentProgress(ctx context.Context, userID, contentID string) (*model.UserProgress, error) {
	progress, err := s.progRepo.FindByUserAndContent(ctx, s.db, userID, contentID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, notFound("PROGRESS_NOT_FOUND", "学習進捗が見つかりません。")
		}
		return nil, internalError("学習進捗の取得に失敗しました。", err)
	}
	return progress, nil
}

// CreateProgress は (userId, contentId) の進捗を作成します。
// 既に存在する場合は学習時間を加算し、最終アクセス日時を更新する。
func (s *progressService) CreateProgress(ctx context.Context, req *model.CreateProgressRequest) (*model.UserProgress, error) {
	if req.UserID == "" || req.ContentID == "" {
		return nil, invalidInput("VALIDATION_ERROR", "ユーザーIDとコンテンツIDは必須です。", "")
	}

	var saved *model.UserProgress
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		content, err := s.findContent(ctx, tx, req.ContentID)
		if err != nil {
			return err
		}

		progress, err := s.upsertProgress(ctx, tx, req.UserID, req.ContentID, req.TimeSpent, req.Status)
		if err != nil {
			return err
		}

		saved, err = s.apply(ctx, tx, progress, content, &model.UpdateProgressRequest{
			Status:          req.Status,
			SectionProgress: req.SectionProgress,
		}, false)
		return err
	})
	if err != nil {
		return nil, passThrough("学習進捗の作成に失敗しました。", err)
	}

	s.invalidate(ctx, req.UserID)
	return saved, nil
}

// UpdateProgress は指定されたフィールドだけを更新します。
// セクション進捗はupsert、クイズ結果は追加のみ。完了率はセクション数から再計算する。
func (s *progressService) UpdateProgress(ctx context.Context, progressID string, req *model.UpdateProgressRequest) (*model.UserProgress, error) {
	if progressID == "" {
		return nil, invalidInput("MISSING_PROGRESS_ID", "進捗IDは必須です。", "id")
	}

	var saved *model.UserProgress
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := s.progRepo.FindByID(ctx, tx, progressID)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return notFound("PROGRESS_NOT_FOUND", "更新対象の学習進捗が見つかりませんでした。")
			}
			return internalError("学習進捗の取得に失敗しました。", err)
		}

		content, err := s.contentRepo.FindByID(ctx, tx, current.ContentID)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			return internalError("コンテンツの取得に失敗しました。", err)
		}

		saved, err = s.apply(ctx, tx, current, content, req, true)
		return err
	})
	if err != nil {
		return nil, passThrough("学習進捗の更新に失敗しました。", err)
	}

	s.invalidate(ctx, saved.UserID)
	return saved, nil
}

// RecordQuizResult は進捗の作成 (または最終アクセス更新) とクイズ結果の追加を1トランザクションで行います。
func (s *progressService) RecordQuizResult(ctx context.Context, userID, contentID string, result *model.QuizResult) (*model.UserProgress, error) {
	var saved *model.UserProgress
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		content, err := s.findContent(ctx, tx, contentID)
		if err != nil {
			return err
		}
		progress, err := s.upsertProgress(ctx, tx, userID, contentID, 0, nil)
		if err != nil {
			return err
		}
		saved, err = s.apply(ctx, tx, progress, content, &model.UpdateProgressRequest{QuizResult: result}, false)
		return err
	})
	if err != nil {
		return nil, passThrough("クイズ結果の保存に失敗しました。", err)
	}

	s.invalidate(ctx, userID)
	return saved, nil
}

func (s *progressService) findContent(ctx context.Context, tx *gorm.DB, contentID string) (*model.Content, error) {
	content, err := s.contentRepo.FindByID(ctx, tx, contentID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, notFound("CONTENT_NOT_FOUND", "コンテンツが見つかりません。")
		}
		return nil, internalError("コンテンツの取得に失敗しました。", err)
	}
	return content, nil
}

func (s *progressService) upsertProgress(ctx context.Context, tx *gorm.DB, userID, contentID string, timeSpent int, status *model.ProgressStatus) (*model.UserProgress, error) {
	now := s.now()
	progress := &model.UserProgress{
		ID:           uuid.NewString(),
		UserID:       userID,
		ContentID:    contentID,
		Status:       model.ProgressStatusInProgress,
		TimeSpent:    max(timeSpent, 0),
		LastAccessed: now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if status != nil {
		progress.Status = *status
	}

	saved, err := s.progRepo.Upsert(ctx, tx, progress)
	if err != nil {
		return nil, internalError("学習進捗の保存に失敗しました。", err)
	}
	return saved, nil
}

// apply は進捗行に更新内容を反映し、再読み込みした進捗を返します。
// touch が true なら最終アクセス日時を更新する (upsert 直後は更新済み)。
func (s *progressService) apply(ctx context.Context, tx *gorm.DB, current *model.UserProgress, content *model.Content, req *model.UpdateProgressRequest, touch bool) (*model.UserProgress, error) {
	logger := middleware.GetLogger(ctx).With("progress_id", current.ID)
	now := s.now()

	hasSections := content != nil && len(content.Sections) > 0
	if hasSections && req.CompletionPercentage != nil {
		return nil, invalidInput("COMPLETION_DERIVED", "セクションを持つコンテンツの完了率はセクション進捗から計算されます。", "completionPercentage")
	}

	updates := make(map[string]interface{})
	if touch {
		updates["last_accessed"] = now
		updates["updated_at"] = now
	}
	if req.TimeSpent != nil && *req.TimeSpent > 0 {
		updates["time_spent"] = gorm.Expr("time_spent + ?", *req.TimeSpent)
	}
	if req.CompletionPercentage != nil {
		updates["completion_percentage"] = *req.CompletionPercentage
	}
	status := current.Status
	if req.Status != nil {
		status = *req.Status
		updates["status"] = status
	}

	// セクション進捗
	knownSections := make(map[string]struct{})
	if content != nil {
		for _, sec := range content.Sections {
			knownSections[sec.ID] = struct{}{}
		}
	}
	for _, sp := range req.SectionProgress {
		if _, ok := knownSections[sp.SectionID]; !ok {
			return nil, invalidInput("UNKNOWN_SECTION", "指定されたセクションはこのコンテンツに存在しません。", "sectionId")
		}
		if err := s.progRepo.UpsertSection(ctx, tx, &model.SectionProgress{
			ID:           uuid.NewString(),
			ProgressID:   current.ID,
			SectionID:    sp.SectionID,
			Completed:    sp.Completed,
			TimeSpent:    max(sp.TimeSpent, 0),
			LastAccessed: now,
		}); err != nil {
			return nil, internalError("セクション進捗の保存に失敗しました。", err)
		}
	}

	// クイズ結果 (履歴として追加)
	if req.QuizResult != nil {
		result, err := prepareQuizResult(req.QuizResult, current.ID, now)
		if err != nil {
			return nil, err
		}
		if err := s.progRepo.CreateQuizResult(ctx, tx, result); err != nil {
			if errors.Is(err, model.ErrConflict) {
				return nil, model.NewAppError("DUPLICATE_QUIZ_RESULT", "このクイズ結果は既に保存されています。", "quizResult", model.ErrConflict)
			}
			return nil, internalError("クイズ結果の保存に失敗しました。", err)
		}
		logger.Info("Quiz result recorded", "quiz_id", result.QuizID, "score", result.Score)
	}

	// 完了率の再計算 (セクションを持つコンテンツのみ)
	if hasSections {
		sectionIDs := make([]string, 0, len(content.Sections))
		for _, sec := range content.Sections {
			sectionIDs = append(sectionIDs, sec.ID)
		}
		completed, err := s.progRepo.CountCompletedSections(ctx, tx, current.ID, sectionIDs)
		if err != nil {
			return nil, internalError("完了率の計算に失敗しました。", err)
		}
		percentage := completionPercentage(int(completed), len(content.Sections))
		updates["completion_percentage"] = percentage

		switch {
		case percentage == 100:
			status = model.ProgressStatusCompleted
			updates["status"] = status
		case status == model.ProgressStatusCompleted:
			// セクションが増えて100%を下回った
			status = model.ProgressStatusInProgress
			updates["status"] = status
		case status == model.ProgressStatusNotStarted && percentage > 0:
			status = model.ProgressStatusInProgress
			updates["status"] = status
		}
	} else if req.CompletionPercentage != nil && *req.CompletionPercentage == 100 {
		updates["status"] = model.ProgressStatusCompleted
	}

	if len(updates) > 0 {
		if err := s.progRepo.Update(ctx, tx, current.ID, updates); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return nil, notFound("PROGRESS_NOT_FOUND", "更新対象の学習進捗が見つかりませんでした。")
			}
			return nil, internalError("学習進捗の更新に失敗しました。", err)
		}
	}

	saved, err := s.progRepo.FindByID(ctx, tx, current.ID)
	if err != nil {
		return nil, internalError("学習進捗の再取得に失敗しました。", err)
	}
	return saved, nil
}

// prepareQuizResult は保存用にIDと親IDを採番したコピーを返します。
func prepareQuizResult(in *model.QuizResult, progressID string, now time.Time) (*model.QuizResult, error) {
	if in.QuizID == "" {
		return nil, invalidInput("VALIDATION_ERROR", "クイズIDは必須です。", "quizId")
	}
	if in.Score < 0 || in.Score > 100 {
		return nil, invalidInput("VALIDATION_ERROR", "スコアは0以上100以下で入力してください。", "score")
	}
	if in.CorrectAnswers < 0 || in.TotalQuestions < 0 || in.CorrectAnswers > in.TotalQuestions {
		return nil, invalidInput("VALIDATION_ERROR", "正解数は設問数以下である必要があります。", "correctAnswers")
	}

	result := *in
	if result.ID == "" {
		result.ID = uuid.NewString()
	}
	result.ProgressID = progressID
	if result.CompletedAt.IsZero() {
		result.CompletedAt = now
	}
	result.TimeSpent = max(result.TimeSpent, 0)

	result.Answers = make([]model.AnswerDetail, len(in.Answers))
	for i, a := range in.Answers {
		if a.QuestionID == "" {
			return nil, invalidInput("VALIDATION_ERROR", "設問IDは必須です。", "questionId")
		}
		a.ID = uuid.NewString()
		a.QuizResultID = result.ID
		if len(a.UserAnswer) == 0 {
			a.UserAnswer = []byte("null")
		}
		a.TimeSpent = max(a.TimeSpent, 0)
		result.Answers[i] = a
	}
	return &result, nil
}

func completionPercentage(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return min(100, int(math.Round(100*float64(completed)/float64(total))))
}

// GetUserStats はユーザーの学習統計を集計します。データが無い場合はゼロ値を返す。
func (s *progressService) GetUserStats(ctx context.Context, userID string) (*model.LearningStatistics, error) {
	if userID == "" {
		return nil, invalidInput("MISSING_USER_ID", "ユーザーIDは必須です。", "userId")
	}
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, userID)
		if err != nil {
			logger.Warn("Stats cache read failed", "error", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	var stats *model.LearningStatistics
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		totals, err := s.progRepo.SumByUser(ctx, tx, userID)
		if err != nil {
			return err
		}
		avg, quizzes, err := s.progRepo.AverageScoreByUser(ctx, tx, userID)
		if err != nil {
			return err
		}
		scored, err := s.progRepo.FindScoredTagsByUser(ctx, tx, userID)
		if err != nil {
			return err
		}

		strong, weak := rankTopics(scored, s.topicLimit)
		stats = &model.LearningStatistics{
			TotalTimeSpent:     totals.TotalTimeSpent,
			CompletedContents:  totals.Completed,
			InProgressContents: totals.InProgress,
			AverageScore:       int(math.Round(avg)),
			TotalQuizzes:       int(quizzes),
			StrongTopics:       strong,
			WeakTopics:         weak,
		}
		return nil
	})
	if err != nil {
		return nil, internalError("学習統計の取得に失敗しました。", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, userID, stats); err != nil {
			logger.Warn("Stats cache write failed", "error", err)
		}
	}
	return stats, nil
}

func (s *progressService) invalidate(ctx context.Context, userID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, userID); err != nil {
		middleware.GetLogger(ctx).Warn("Stats cache invalidation failed", "error", err, "user_id", userID)
	}
}

type topicScore struct {
	tag     string
	average float64
}

// rankTopics はタグごとの平均スコアから上位・下位 limit 件を返します。
// 同点はタグ名の昇順。件数による重み付けはしない。
func rankTopics(scored []model.ScoredTags, limit int) (strong, weak []string) {
	sums := make(map[string]int)
	counts := make(map[string]int)
	for _, row := range scored {
		for _, tag := range row.Tags {
			sums[tag] += row.Score
			counts[tag]++
		}
	}

	topics := make([]topicScore, 0, len(sums))
	for tag, sum := range sums {
		topics = append(topics, topicScore{tag: tag, average: float64(sum) / float64(counts[tag])})
	}

	slices.SortFunc(topics, func(a, b topicScore) int {
		if c := cmp.Compare(b.average, a.average); c != 0 {
			return c
		}
		return cmp.Compare(a.tag, b.tag)
	})
	strong = make([]string, 0, limit)
	for _, t := range topics[:min(limit, len(topics))] {
		strong = append(strong, t.tag)
	}

	slices.SortFunc(topics, func(a, b topicScore) int {
		if c := cmp.Compare(a.average, b.average); c != 0 {
			return c
		}
		return cmp.Compare(a.tag, b.tag)
	})
	weak = make([]string, 0, limit)
	for _, t := range topics[:min(limit, len(topics))] {
		weak = append(weak, t.tag)
	}
	return strong, weak
}
