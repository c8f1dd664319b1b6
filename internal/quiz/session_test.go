package quiz

import (
	"encoding/json"
	"testing"
	"time"

	"scrum_sensei/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func raw(t *testing.T, v interface{}) json.RawMessage {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

func sampleQuiz() *model.Quiz {
	return &model.Quiz{
		ID:        "quiz-1",
		ContentID: "content-1",
		Title:     "スクラム基礎",
		Questions: []model.Question{
			{
				ID:   "q1",
				Type: model.QuestionTypeMultipleChoice,
				Text: "スプリントの最大期間は?",
				Options: []model.QuestionOption{
					{ID: "a", Text: "1週間"},
					{ID: "b", Text: "1か月", IsCorrect: true},
				},
			},
			{
				ID:   "q2",
				Type: model.QuestionTypeMultipleSelect,
				Text: "スクラムの作成物は?",
				Options: []model.QuestionOption{
					{ID: "a", Text: "プロダクトバックログ", IsCorrect: true},
					{ID: "b", Text: "スプリントバックログ", IsCorrect: true},
					{ID: "c", Text: "ガントチャート"},
				},
			},
			{
				ID:            "q3",
				Type:          model.QuestionTypeShortAnswer,
				Text:          "フランスの首都は?",
				CorrectAnswer: "Paris",
			},
		},
	}
}

func TestIsCorrect(t *testing.T) {
	q := sampleQuiz()
	multipleChoice, multipleSelect, shortAnswer := q.Questions[0], q.Questions[1], q.Questions[2]

	tests := []struct {
		name     string
		question model.Question
		answer   interface{}
		want     bool
	}{
		{"正常系: 単一選択 正解", multipleChoice, "b", true},
		{"正常系: 単一選択 不正解", multipleChoice, "a", false},
		{"正常系: 単一選択 存在しない選択肢", multipleChoice, "z", false},
		{"正常系: 単一選択 配列で2つ選択", multipleChoice, []string{"a", "b"}, false},
		{"正常系: 複数選択 完全一致", multipleSelect, []string{"a", "b"}, true},
		{"正常系: 複数選択 順序違いでも一致", multipleSelect, []string{"b", "a"}, true},
		{"正常系: 複数選択 余分な選択肢あり", multipleSelect, []string{"a", "b", "c"}, false},
		{"正常系: 複数選択 不足", multipleSelect, []string{"a"}, false},
		{"正常系: 記述 前後空白と大文字小文字を無視", shortAnswer, "  Paris ", true},
		{"正常系: 記述 小文字", shortAnswer, "paris", true},
		{"正常系: 記述 綴り違い", shortAnswer, "Pariss", false},
		{"正常系: 記述 空文字", shortAnswer, "  ", false},
		{"異常系: 解釈できない回答", shortAnswer, map[string]int{"x": 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCorrect(tt.question, raw(t, tt.answer)))
		})
	}
}

func TestScore(t *testing.T) {
	assert.Equal(t, 67, Score(2, 3))
	assert.Equal(t, 33, Score(1, 3))
	assert.Equal(t, 100, Score(5, 5))
	assert.Equal(t, 0, Score(0, 4))
	assert.Equal(t, 0, Score(0, 0), "満点0なら0点")
}

func TestSession_Navigation(t *testing.T) {
	s, err := NewSession(sampleQuiz())
	require.NoError(t, err)

	assert.Equal(t, StateAnswering, s.State())
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 0, s.Index())

	// 先頭で Prev しても動かない
	require.NoError(t, s.Prev())
	assert.Equal(t, 0, s.Index())

	require.NoError(t, s.Next())
	require.NoError(t, s.Next())
	assert.Equal(t, 2, s.Index())
	current, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "q3", current.ID)

	require.NoError(t, s.Prev())
	assert.Equal(t, 1, s.Index())
	require.NoError(t, s.Next())

	// 最後の設問で Next すると完了
	require.NoError(t, s.Next())
	assert.Equal(t, StateCompleted, s.State())
	_, ok = s.Current()
	assert.False(t, ok)

	assert.ErrorIs(t, s.Next(), ErrSessionCompleted)
	assert.ErrorIs(t, s.Prev(), ErrSessionCompleted)
	assert.ErrorIs(t, s.Answer(raw(t, "b"), 1), ErrSessionCompleted)
}

func TestSession_Finish(t *testing.T) {
	fixed := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
	s, err := NewSession(sampleQuiz(), WithClock(func() time.Time { return fixed }))
	require.NoError(t, err)

	require.NoError(t, s.Answer(raw(t, "b"), 10))
	require.NoError(t, s.Next())
	require.NoError(t, s.Answer(raw(t, []string{"a", "b", "c"}), 20))
	require.NoError(t, s.Next())
	require.NoError(t, s.Answer(raw(t, " PARIS"), 5))

	result := s.Finish()
	assert.Equal(t, "quiz-1", result.QuizID)
	assert.Equal(t, 3, result.TotalQuestions)
	assert.Equal(t, 2, result.CorrectAnswers)
	assert.Equal(t, 67, result.Score)
	assert.Equal(t, 35, result.TimeSpent)
	assert.Equal(t, fixed, result.CompletedAt)
	assert.False(t, result.IsReviewMode)
	require.Len(t, result.Answers, 3)
	assert.True(t, result.Answers[0].IsCorrect)
	assert.False(t, result.Answers[1].IsCorrect)
	assert.True(t, result.Answers[2].IsCorrect)
	assert.Equal(t, result.ID, result.Answers[0].QuizResultID)

	// 2回目は同じ結果
	assert.Same(t, result, s.Finish())
	got, ok := s.Result()
	assert.True(t, ok)
	assert.Same(t, result, got)
}

func TestSession_UnansweredIsIncorrect(t *testing.T) {
	s, err := NewSession(sampleQuiz())
	require.NoError(t, err)

	require.NoError(t, s.AnswerQuestion("q1", raw(t, "b"), 3))

	result := s.Finish()
	assert.Equal(t, 1, result.CorrectAnswers)
	assert.Equal(t, 33, result.Score)
	assert.JSONEq(t, "null", string(result.Answers[1].UserAnswer))
	assert.False(t, result.Answers[2].IsCorrect)
}

func TestSession_Points(t *testing.T) {
	q := sampleQuiz()
	q.Questions[0].Points = 3 // q1 だけ3点

	s, err := NewSession(q)
	require.NoError(t, err)
	require.NoError(t, s.AnswerQuestion("q1", raw(t, "b"), 0))

	result := s.Finish()
	assert.Equal(t, 60, result.Score) // 3 / 5
	assert.Equal(t, 1, result.CorrectAnswers)
}

func TestSession_AnswerQuestion(t *testing.T) {
	s, err := NewSession(sampleQuiz())
	require.NoError(t, err)

	assert.ErrorIs(t, s.AnswerQuestion("unknown", raw(t, "x"), 0), ErrUnknownQuestion)

	// 上書き
	require.NoError(t, s.AnswerQuestion("q1", raw(t, "a"), 1))
	require.NoError(t, s.AnswerQuestion("q1", raw(t, "b"), 2))
	assert.Equal(t, 0, s.Index(), "現在位置は動かない")

	result := s.Finish()
	assert.True(t, result.Answers[0].IsCorrect)
	assert.Equal(t, 2, result.Answers[0].TimeSpent)
}

func TestNewReviewSession(t *testing.T) {
	tests := []struct {
		name      string
		incorrect []string
		wantIDs   []string
		wantErr   error
	}{
		{
			name:      "正常系: 不正解の設問だけをクイズの順序で出題",
			incorrect: []string{"q3", "q1"},
			wantIDs:   []string{"q1", "q3"},
		},
		{
			name:      "正常系: 存在しないIDは無視",
			incorrect: []string{"q2", "zzz"},
			wantIDs:   []string{"q2"},
		},
		{
			name:      "異常系: 復習対象なし",
			incorrect: nil,
			wantErr:   ErrNoQuestions,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewReviewSession(sampleQuiz(), tt.incorrect)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, s)
				return
			}
			require.NoError(t, err)
			assert.True(t, s.Review())

			var ids []string
			for s.State() == StateAnswering {
				q, ok := s.Current()
				require.True(t, ok)
				ids = append(ids, q.ID)
				require.NoError(t, s.Next())
			}
			assert.Equal(t, tt.wantIDs, ids)

			result, ok := s.Result()
			require.True(t, ok)
			assert.True(t, result.IsReviewMode)
			assert.Equal(t, len(tt.wantIDs), result.TotalQuestions)
		})
	}
}

func TestNewSession_Empty(t *testing.T) {
	_, err := NewSession(&model.Quiz{ID: "empty"})
	assert.ErrorIs(t, err, ErrNoQuestions)
}
