//go:generate mockery --name ContentService --output ./mocks --outpkg mocks --case=underscore
// internal/service/content_service.go
package service

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"scrum_sensei/internal/middleware"
	"scrum_sensei/internal/model"
	"scrum_sensei/internal/repository"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ContentService interface {
	CreateContent(ctx context.Context, req *model.CreateContentRequest) (*model.Content, error)
	GetContent(ctx context.Context, contentID string) (*model.Content, error)
	ListContents(ctx context.Context, status model.ContentStatus) ([]*model.Content, error)
	UpdateContent(ctx context.Context, contentID string, req *model.UpdateContentRequest) (*model.Content, error)
	PublishContent(ctx context.Context, contentID string) (*model.Content, error)
	DeleteContent(ctx context.Context, contentID string) error
}

type contentService struct {
	db          *gorm.DB
	contentRepo repository.ContentRepository
	progRepo    repository.ProgressRepository
	quizRepo    repository.QuizRepository
	cache       repository.StatsCache
	now         func() time.Time
}

func NewContentService(
	db *gorm.DB,
	contentRepo repository.ContentRepository,
	progRepo repository.ProgressRepository,
	quizRepo repository.QuizRepository,
	cache repository.StatsCache,
) ContentService {
	return &contentService{
		db:          db,
		contentRepo: contentRepo,
		progRepo:    progRepo,
		quizRepo:    quizRepo,
		cache:       cache,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *contentService) CreateContent(ctx context.Context, req *model.CreateContentRequest) (*model.Content, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, invalidInput("VALIDATION_ERROR", "タイトルは必須項目です。", "title")
	}

	contentID := uuid.NewString()
	sections, err := normalizeSections(contentID, req.Sections)
	if err != nil {
		return nil, err
	}

	now := s.now()
	content := &model.Content{
		ID:            contentID,
		Title:         req.Title,
		Description:   req.Description,
		Type:          req.Type,
		Status:        model.ContentStatusDraft,
		Tags:          normalizeTags(req.Tags),
		Difficulty:    req.Difficulty,
		EstimatedTime: req.EstimatedTime,
		CreatedAt:     now,
		UpdatedAt:     now,
		Sections:      sections,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.contentRepo.Create(ctx, tx, content); err != nil {
			if errors.Is(err, model.ErrConflict) {
				return model.NewAppError("DUPLICATE_SECTION_ID", "セクションIDが重複しています。", "sections", model.ErrConflict)
			}
			return internalError("コンテンツの作成に失敗しました。", err)
		}
		return nil
	})
	if err != nil {
		return nil, passThrough("コンテンツの作成に失敗しました。", err)
	}

	middleware.GetLogger(ctx).Info("Content created", "content_id", content.ID, "sections", len(sections))
	return content, nil
}

func (s *contentService) GetContent(ctx context.Context, contentID string) (*model.Content, error) {
	content, err := s.contentRepo.FindByID(ctx, s.db, contentID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, notFound("CONTENT_NOT_FOUND", "コンテンツが見つかりません。")
		}
		return nil, internalError("コンテンツの取得に失敗しました。", err)
	}
	return content, nil
}

func (s *contentService) ListContents(ctx context.Context, status model.ContentStatus) ([]*model.Content, error) {
	switch status {
	case "", model.ContentStatusDraft, model.ContentStatusPublished, model.ContentStatusArchived:
	default:
		return nil, invalidInput("INVALID_STATUS", "ステータスは[draft published archived]のいずれかを指定してください。", "status")
	}

	contents, err := s.contentRepo.List(ctx, s.db, status)
	if err != nil {
		return nil, internalError("コンテンツ一覧の取得に失敗しました。", err)
	}
	return contents, nil
}

// UpdateContent は全フィールドを更新し、セクションを丸ごと置き換えます。
func (s *contentService) UpdateContent(ctx context.Context, contentID string, req *model.UpdateContentRequest) (*model.Content, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, invalidInput("VALIDATION_ERROR", "タイトルは必須項目です。", "title")
	}
	sections, err := normalizeSections(contentID, req.Sections)
	if err != nil {
		return nil, err
	}

	var updated *model.Content
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"title":          req.Title,
			"description":    req.Description,
			"type":           req.Type,
			"tags":           datatypes.JSONSlice[string](normalizeTags(req.Tags)),
			"difficulty":     req.Difficulty,
			"estimated_time": req.EstimatedTime,
			"updated_at":     s.now(),
		}
		if err := s.contentRepo.Update(ctx, tx, contentID, updates); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return notFound("CONTENT_NOT_FOUND", "更新対象のコンテンツが見つかりませんでした。")
			}
			return internalError("コンテンツの更新に失敗しました。", err)
		}

		if err := s.contentRepo.ReplaceSections(ctx, tx, contentID, sections); err != nil {
			if errors.Is(err, model.ErrConflict) {
				return model.NewAppError("DUPLICATE_SECTION_ID", "セクションIDが重複しています。", "sections", model.ErrConflict)
			}
			return internalError("セクションの更新に失敗しました。", err)
		}

		found, err := s.contentRepo.FindByID(ctx, tx, contentID)
		if err != nil {
			return internalError("コンテンツの再取得に失敗しました。", err)
		}
		updated = found
		return nil
	})
	if err != nil {
		return nil, passThrough("コンテンツの更新に失敗しました。", err)
	}
	return updated, nil
}

// PublishContent はステータスを published にし、公開日時を記録します。
func (s *contentService) PublishContent(ctx context.Context, contentID string) (*model.Content, error) {
	var published *model.Content
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rows, err := s.contentRepo.UpdateStatus(ctx, tx, contentID, model.ContentStatusPublished, s.now())
		if err != nil {
			return internalError("コンテンツの公開に失敗しました。", err)
		}
		if rows == 0 {
			return notFound("CONTENT_NOT_FOUND", "公開対象のコンテンツが見つかりませんでした。")
		}

		published, err = s.contentRepo.FindByID(ctx, tx, contentID)
		if err != nil {
			return internalError("コンテンツの再取得に失敗しました。", err)
		}
		return nil
	})
	if err != nil {
		return nil, passThrough("コンテンツの公開に失敗しました。", err)
	}

	middleware.GetLogger(ctx).Info("Content published", "content_id", contentID)
	return published, nil
}

// DeleteContent はコンテンツと、それに紐づく進捗・クイズ・セクションを1トランザクションで削除します。
func (s *contentService) DeleteContent(ctx context.Context, contentID string) error {
	var affectedUsers []string
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		userIDs, err := s.progRepo.FindUserIDsByContentID(ctx, tx, contentID)
		if err != nil {
			return internalError("コンテンツの削除に失敗しました。", err)
		}
		if err := s.progRepo.DeleteByContentID(ctx, tx, contentID); err != nil {
			return internalError("学習進捗の削除に失敗しました。", err)
		}
		if err := s.quizRepo.DeleteByContentID(ctx, tx, contentID); err != nil {
			return internalError("クイズの削除に失敗しました。", err)
		}

		rows, err := s.contentRepo.Delete(ctx, tx, contentID)
		if err != nil {
			return internalError("コンテンツの削除に失敗しました。", err)
		}
		if rows == 0 {
			return notFound("CONTENT_NOT_FOUND", "削除対象のコンテンツが見つかりませんでした。")
		}
		affectedUsers = userIDs
		return nil
	})
	if err != nil {
		return passThrough("コンテンツの削除に失敗しました。", err)
	}

	logger := middleware.GetLogger(ctx)
	if s.cache != nil {
		for _, userID := range affectedUsers {
			if err := s.cache.Invalidate(ctx, userID); err != nil {
				logger.Warn("Stats cache invalidation failed", "error", err, "user_id", userID)
			}
		}
	}
	logger.Info("Content deleted", "content_id", contentID, "affected_users", len(affectedUsers))
	return nil
}

// normalizeSections は order の昇順で安定ソートし、0 からの連番に振り直します。
func normalizeSections(contentID string, reqs []model.SectionRequest) ([]model.ContentSection, error) {
	sorted := slices.Clone(reqs)
	slices.SortStableFunc(sorted, func(a, b model.SectionRequest) int {
		return a.Order - b.Order
	})

	seen := make(map[string]struct{}, len(sorted))
	sections := make([]model.ContentSection, 0, len(sorted))
	for i, r := range sorted {
		if strings.TrimSpace(r.Title) == "" {
			return nil, invalidInput("VALIDATION_ERROR", "セクションのタイトルは必須項目です。", "sections")
		}
		id := r.ID
		if id == "" {
			id = uuid.NewString()
		}
		if _, dup := seen[id]; dup {
			return nil, invalidInput("DUPLICATE_SECTION_ID", "セクションIDが重複しています。", "sections")
		}
		seen[id] = struct{}{}

		sections = append(sections, model.ContentSection{
			ID:         id,
			ContentID:  contentID,
			Title:      r.Title,
			Content:    r.Content,
			Order:      i,
			AudioURL:   r.AudioURL,
			SourceText: r.SourceText,
		})
	}
	return sections, nil
}

// normalizeTags は前後の空白を除き、重複を取り除きます (順序は維持)
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
