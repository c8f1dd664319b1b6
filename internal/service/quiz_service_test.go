// internal/service/quiz_service_test.go
package service

import (
	"context"
	"encoding/json"
	"testing"

	"scrum_sensei/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrumQuestions() []model.Question {
	return []model.Question{
		{
			ID: "q1", Type: model.QuestionTypeMultipleChoice, Text: "スプリントの長さの上限は?",
			Options: []model.QuestionOption{{ID: "a", Text: "1週間"}, {ID: "b", Text: "1か月", IsCorrect: true}},
		},
		{
			ID: "q2", Type: model.QuestionTypeMultipleSelect, Text: "スクラムの作成物を選べ",
			Options: []model.QuestionOption{
				{ID: "a", Text: "プロダクトバックログ", IsCorrect: true},
				{ID: "b", Text: "インクリメント", IsCorrect: true},
				{ID: "c", Text: "WBS"},
			},
		},
		{ID: "q3", Type: model.QuestionTypeShortAnswer, Text: "毎日行うイベントは?", CorrectAnswer: "Daily Scrum"},
	}
}

func answer(t *testing.T, questionID string, v interface{}) model.SubmittedAnswer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return model.SubmittedAnswer{QuestionID: questionID, Answer: b, TimeSpent: 10}
}

func Test_validateQuestions(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(qs []model.Question) []model.Question
		wantErr bool
	}{
		{"正常系: 全タイプ", func(qs []model.Question) []model.Question { return qs }, false},
		{"異常系: 設問なし", func([]model.Question) []model.Question { return nil }, true},
		{"異常系: 設問ID重複", func(qs []model.Question) []model.Question {
			qs[1].ID = "q1"
			return qs
		}, true},
		{"異常系: 単一選択で正解が2つ", func(qs []model.Question) []model.Question {
			qs[0].Options[0].IsCorrect = true
			return qs
		}, true},
		{"異常系: 複数選択で正解なし", func(qs []model.Question) []model.Question {
			for i := range qs[1].Options {
				qs[1].Options[i].IsCorrect = false
			}
			return qs
		}, true},
		{"異常系: 選択肢が1つ", func(qs []model.Question) []model.Question {
			qs[0].Options = qs[0].Options[1:]
			return qs
		}, true},
		{"異常系: 記述式の正解が空", func(qs []model.Question) []model.Question {
			qs[2].CorrectAnswer = " "
			return qs
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qs := scrumQuestions()
			err := validateQuestions(tt.mutate(qs))
			if tt.wantErr {
				assert.ErrorIs(t, err, model.ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func Test_quizService_CreateQuiz(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	content := seedContent(t, db, nil, 1)
	_, _, svc := realServices(db, nil)

	created, err := svc.CreateQuiz(ctx, &model.CreateQuizRequest{ContentID: content.ID, Title: "確認テスト", Questions: scrumQuestions()})
	require.NoError(t, err)

	got, err := svc.GetQuiz(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "確認テスト", got.Title)
	require.Len(t, got.Questions, 3)
	assert.Equal(t, model.QuestionTypeShortAnswer, got.Questions[2].Type)
	assert.Equal(t, "Daily Scrum", got.Questions[2].CorrectAnswer)

	list, err := svc.ListQuizzes(ctx, content.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = svc.CreateQuiz(ctx, &model.CreateQuizRequest{ContentID: "missing", Title: "x", Questions: scrumQuestions()})
	assert.ErrorIs(t, err, model.ErrNotFound)

	_, err = svc.GetQuiz(ctx, "missing")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func Test_quizService_SubmitAttempt(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (QuizService, ProgressService, *model.Content, *model.Quiz) {
		db := setupTestDB(t)
		content := seedContent(t, db, []string{"scrum"}, 2)
		progressSvc, _, quizSvc := realServices(db, nil)
		q, err := quizSvc.CreateQuiz(ctx, &model.CreateQuizRequest{ContentID: content.ID, Title: "確認", Questions: scrumQuestions()})
		require.NoError(t, err)
		return quizSvc, progressSvc, content, q
	}

	t.Run("正常系: 保存しない採点では何も永続化されない", func(t *testing.T) {
		quizSvc, progressSvc, _, q := setup(t)

		resp, err := quizSvc.SubmitAttempt(ctx, q.ID, &model.SubmitAttemptRequest{
			Answers: []model.SubmittedAnswer{answer(t, "q1", "b")},
		})
		require.NoError(t, err)
		assert.Equal(t, 33, resp.Result.Score)
		assert.Nil(t, resp.Progress)

		list, err := progressSvc.GetUserProgress(ctx, "user-1")
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("正常系: セクション1完了で50、3問中2問正解で67点、セクション2完了で100かつ完了", func(t *testing.T) {
		quizSvc, progressSvc, content, q := setup(t)

		p, err := progressSvc.CreateProgress(ctx, &model.CreateProgressRequest{UserID: "user-1", ContentID: content.ID})
		require.NoError(t, err)

		p, err = progressSvc.UpdateProgress(ctx, p.ID, &model.UpdateProgressRequest{
			SectionProgress: []model.SectionProgressRequest{{SectionID: content.Sections[0].ID, Completed: true, TimeSpent: 120}},
		})
		require.NoError(t, err)
		assert.Equal(t, 50, p.CompletionPercentage)
		assert.Equal(t, model.ProgressStatusInProgress, p.Status)

		resp, err := quizSvc.SubmitAttempt(ctx, q.ID, &model.SubmitAttemptRequest{
			UserID: "user-1",
			Save:   true,
			Answers: []model.SubmittedAnswer{
				answer(t, "q1", "b"),
				answer(t, "q2", []string{"a", "b", "c"}),
				answer(t, "q3", "  daily scrum "),
			},
			TimeSpent: 95,
		})
		require.NoError(t, err)

		assert.Equal(t, 67, resp.Result.Score)
		assert.Equal(t, 2, resp.Result.CorrectAnswers)
		assert.Equal(t, 3, resp.Result.TotalQuestions)
		assert.Equal(t, 95, resp.Result.TimeSpent)
		require.NotNil(t, resp.Progress)
		assert.Equal(t, p.ID, resp.Progress.ID)
		assert.Equal(t, 50, resp.Progress.CompletionPercentage, "クイズでは完了率は変わらない")
		require.Len(t, resp.Progress.QuizResults, 1)
		assert.Len(t, resp.Progress.QuizResults[0].Answers, 3)

		p, err = progressSvc.UpdateProgress(ctx, p.ID, &model.UpdateProgressRequest{
			SectionProgress: []model.SectionProgressRequest{{SectionID: content.Sections[1].ID, Completed: true, TimeSpent: 60}},
		})
		require.NoError(t, err)
		assert.Equal(t, 100, p.CompletionPercentage)
		assert.Equal(t, model.ProgressStatusCompleted, p.Status)
		require.Len(t, p.QuizResults, 1)
		assert.Equal(t, 67, p.QuizResults[0].Score)

		stats, err := progressSvc.GetUserStats(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, 67, stats.AverageScore)
		assert.Equal(t, 1, stats.TotalQuizzes)
		assert.Equal(t, 1, stats.CompletedContents)
		assert.Equal(t, []string{"scrum"}, stats.StrongTopics)
	})

	t.Run("正常系: 復習モードは前回不正解の設問だけを採点する", func(t *testing.T) {
		quizSvc, _, _, q := setup(t)

		_, err := quizSvc.SubmitAttempt(ctx, q.ID, &model.SubmitAttemptRequest{
			UserID: "user-1",
			Save:   true,
			Answers: []model.SubmittedAnswer{
				answer(t, "q1", "b"),
				answer(t, "q2", []string{"a"}),
			},
		})
		require.NoError(t, err)

		resp, err := quizSvc.SubmitAttempt(ctx, q.ID, &model.SubmitAttemptRequest{
			UserID: "user-1",
			Review: true,
			Save:   true,
			Answers: []model.SubmittedAnswer{
				answer(t, "q2", []string{"b", "a"}),
				answer(t, "q3", "Daily Scrum"),
			},
		})
		require.NoError(t, err)
		assert.True(t, resp.Result.IsReviewMode)
		assert.Equal(t, 2, resp.Result.TotalQuestions)
		assert.Equal(t, 100, resp.Result.Score)
		require.Len(t, resp.Progress.QuizResults, 2)

		// 復習対象外の設問への回答はエラー
		_, err = quizSvc.SubmitAttempt(ctx, q.ID, &model.SubmitAttemptRequest{
			UserID:  "user-1",
			Review:  true,
			Answers: []model.SubmittedAnswer{answer(t, "q1", "b")},
		})
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})

	t.Run("異常系: 前回結果なしで復習", func(t *testing.T) {
		quizSvc, _, _, q := setup(t)

		_, err := quizSvc.SubmitAttempt(ctx, q.ID, &model.SubmitAttemptRequest{UserID: "user-1", Review: true})
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})

	t.Run("異常系: 保存にはユーザーIDが必要", func(t *testing.T) {
		quizSvc, _, _, q := setup(t)

		_, err := quizSvc.SubmitAttempt(ctx, q.ID, &model.SubmitAttemptRequest{Save: true})
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})

	t.Run("異常系: コンテンツIDの不一致", func(t *testing.T) {
		quizSvc, _, _, q := setup(t)

		_, err := quizSvc.SubmitAttempt(ctx, q.ID, &model.SubmitAttemptRequest{ContentID: "other"})
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})

	t.Run("異常系: クイズが存在しない", func(t *testing.T) {
		quizSvc, _, _, _ := setup(t)

		_, err := quizSvc.SubmitAttempt(ctx, "missing", &model.SubmitAttemptRequest{})
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}
