//go:generate mockery --name QuizService --output ./mocks --outpkg mocks --case=underscore
// internal/service/quiz_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"scrum_sensei/internal/middleware"
	"scrum_sensei/internal/model"
	"scrum_sensei/internal/quiz"
	"scrum_sensei/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuizService interface {
	CreateQuiz(ctx context.Context, req *model.CreateQuizRequest) (*model.Quiz, error)
	GetQuiz(ctx context.Context, quizID string) (*model.Quiz, error)
	ListQuizzes(ctx context.Context, contentID string) ([]*model.Quiz, error)
	SubmitAttempt(ctx context.Context, quizID string, req *model.SubmitAttemptRequest) (*model.AttemptResponse, error)
}

type quizService struct {
	db          *gorm.DB
	quizRepo    repository.QuizRepository
	contentRepo repository.ContentRepository
	progRepo    repository.ProgressRepository
	progressSvc ProgressService
	now         func() time.Time
}

func NewQuizService(
	db *gorm.DB,
	quizRepo repository.QuizRepository,
	contentRepo repository.ContentRepository,
	progRepo repository.ProgressRepository,
	progressSvc ProgressService,
) QuizService {
	return &quizService{
		db:          db,
		quizRepo:    quizRepo,
		contentRepo: contentRepo,
		progRepo:    progRepo,
		progressSvc: progressSvc,
		now:         time.Now,
	}
}

func (s *quizService) CreateQuiz(ctx context.Context, req *model.CreateQuizRequest) (*model.Quiz, error) {
	if err := validateQuestions(req.Questions); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	q := &model.Quiz{
		ID:        uuid.NewString(),
		ContentID: req.ContentID,
		Title:     req.Title,
		Questions: req.Questions,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.contentRepo.FindByID(ctx, tx, req.ContentID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return notFound("CONTENT_NOT_FOUND", "コンテンツが見つかりません。")
			}
			return internalError("コンテンツの取得に失敗しました。", err)
		}
		if err := s.quizRepo.Create(ctx, tx, q); err != nil {
			return internalError("クイズの作成に失敗しました。", err)
		}
		return nil
	})
	if err != nil {
		return nil, passThrough("クイズの作成に失敗しました。", err)
	}

	middleware.GetLogger(ctx).Info("Quiz created", "quiz_id", q.ID, "content_id", q.ContentID, "questions", len(q.Questions))
	return q, nil
}

func (s *quizService) GetQuiz(ctx context.Context, quizID string) (*model.Quiz, error) {
	q, err := s.quizRepo.FindByID(ctx, s.db, quizID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, notFound("QUIZ_NOT_FOUND", "クイズが見つかりません。")
		}
		return nil, internalError("クイズの取得に失敗しました。", err)
	}
	return q, nil
}

func (s *quizService) ListQuizzes(ctx context.Context, contentID string) ([]*model.Quiz, error) {
	quizzes, err := s.quizRepo.FindByContentID(ctx, s.db, contentID)
	if err != nil {
		return nil, internalError("クイズ一覧の取得に失敗しました。", err)
	}
	return quizzes, nil
}

// SubmitAttempt は回答を採点し、save が true のときだけ進捗にクイズ結果を追加します。
// review が true の場合は、前回保存した結果で不正解だった設問だけを採点対象にする。
func (s *quizService) SubmitAttempt(ctx context.Context, quizID string, req *model.SubmitAttemptRequest) (*model.AttemptResponse, error) {
	logger := middleware.GetLogger(ctx).With("quiz_id", quizID)

	q, err := s.GetQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}
	if req.ContentID != "" && req.ContentID != q.ContentID {
		return nil, invalidInput("CONTENT_MISMATCH", "コンテンツIDがクイズと一致しません。", "contentId")
	}
	if (req.Save || req.Review) && req.UserID == "" {
		return nil, invalidInput("VALIDATION_ERROR", "ユーザーIDは必須項目です。", "userId")
	}

	session, err := s.newSession(ctx, q, req)
	if err != nil {
		return nil, err
	}

	for _, a := range req.Answers {
		if err := session.AnswerQuestion(a.QuestionID, a.Answer, a.TimeSpent); err != nil {
			if errors.Is(err, quiz.ErrUnknownQuestion) {
				return nil, invalidInput("UNKNOWN_QUESTION",
					fmt.Sprintf("設問 %s はこのクイズに含まれていません。", a.QuestionID), "questionId")
			}
			return nil, internalError("回答の記録に失敗しました。", err)
		}
	}

	result := session.Finish()
	if req.TimeSpent > 0 {
		result.TimeSpent = req.TimeSpent
	}
	logger.Info("Quiz attempt scored",
		"score", result.Score, "correct", result.CorrectAnswers, "total", result.TotalQuestions, "review", result.IsReviewMode)

	resp := &model.AttemptResponse{Result: result}
	if !req.Save {
		return resp, nil
	}

	progress, err := s.progressSvc.RecordQuizResult(ctx, req.UserID, q.ContentID, result)
	if err != nil {
		return nil, err
	}
	resp.Progress = progress
	for i := range progress.QuizResults {
		if progress.QuizResults[i].ID == result.ID {
			resp.Result = &progress.QuizResults[i]
			break
		}
	}
	return resp, nil
}

func (s *quizService) newSession(ctx context.Context, q *model.Quiz, req *model.SubmitAttemptRequest) (*quiz.Session, error) {
	if !req.Review {
		session, err := quiz.NewSession(q)
		if err != nil {
			return nil, invalidInput("EMPTY_QUIZ", "このクイズには設問がありません。", "")
		}
		return session, nil
	}

	progress, err := s.progRepo.FindByUserAndContent(ctx, s.db, req.UserID, q.ContentID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, invalidInput("NO_PREVIOUS_RESULT", "復習できるクイズ結果がありません。", "review")
		}
		return nil, internalError("学習進捗の取得に失敗しました。", err)
	}
	latest, err := s.progRepo.FindLatestQuizResult(ctx, s.db, progress.ID, q.ID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, invalidInput("NO_PREVIOUS_RESULT", "復習できるクイズ結果がありません。", "review")
		}
		return nil, internalError("クイズ結果の取得に失敗しました。", err)
	}

	session, err := quiz.NewReviewSession(q, IncorrectQuestionIDs(latest))
	if err != nil {
		return nil, invalidInput("NOTHING_TO_REVIEW", "前回のクイズで不正解の設問はありません。", "review")
	}
	return session, nil
}

// IncorrectQuestionIDs は結果のうち不正解だった設問IDを返します (復習モード用)
func IncorrectQuestionIDs(result *model.QuizResult) []string {
	ids := make([]string, 0, len(result.Answers))
	for _, a := range result.Answers {
		if !a.IsCorrect {
			ids = append(ids, a.QuestionID)
		}
	}
	return ids
}

// validateQuestions は設問タイプごとの整合性を確認します。
// validator のタグでは表現しにくい条件なのでここで見る。
func validateQuestions(questions []model.Question) error {
	if len(questions) == 0 {
		return invalidInput("VALIDATION_ERROR", "設問は1問以上必要です。", "questions")
	}

	seen := make(map[string]struct{}, len(questions))
	for _, q := range questions {
		if _, dup := seen[q.ID]; dup {
			return invalidInput("DUPLICATE_QUESTION_ID", fmt.Sprintf("設問ID %s が重複しています。", q.ID), "questions")
		}
		seen[q.ID] = struct{}{}

		switch q.Type {
		case model.QuestionTypeMultipleChoice, model.QuestionTypeMultipleSelect:
			if len(q.Options) < 2 {
				return invalidInput("INVALID_OPTIONS", fmt.Sprintf("設問 %s には選択肢が2つ以上必要です。", q.ID), "options")
			}
			optionIDs := make(map[string]struct{}, len(q.Options))
			correct := 0
			for _, opt := range q.Options {
				if _, dup := optionIDs[opt.ID]; dup {
					return invalidInput("INVALID_OPTIONS", fmt.Sprintf("設問 %s の選択肢IDが重複しています。", q.ID), "options")
				}
				optionIDs[opt.ID] = struct{}{}
				if opt.IsCorrect {
					correct++
				}
			}
			if q.Type == model.QuestionTypeMultipleChoice && correct != 1 {
				return invalidInput("INVALID_OPTIONS", fmt.Sprintf("設問 %s の正解は1つだけ指定してください。", q.ID), "options")
			}
			if q.Type == model.QuestionTypeMultipleSelect && correct == 0 {
				return invalidInput("INVALID_OPTIONS", fmt.Sprintf("設問 %s には正解の選択肢が必要です。", q.ID), "options")
			}
		case model.QuestionTypeShortAnswer:
			if strings.TrimSpace(q.CorrectAnswer) == "" {
				return invalidInput("MISSING_CORRECT_ANSWER", fmt.Sprintf("設問 %s の正解を入力してください。", q.ID), "correctAnswer")
			}
		default:
			return invalidInput("VALIDATION_ERROR", fmt.Sprintf("設問 %s の種類が正しくありません。", q.ID), "type")
		}
	}
	return nil
}
