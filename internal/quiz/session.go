// Package quiz はクイズ1回分の回答と採点を管理する状態機械です。
// 状態は answering(index) → completed の一方向のみ。
package quiz

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"time"

	"scrum_sensei/internal/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type State int

const (
	StateAnswering State = iota
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateAnswering:
		return "answering"
	case StateCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

var (
	ErrNoQuestions      = errors.New("quiz has no questions")
	ErrSessionCompleted = errors.New("quiz session already completed")
	ErrUnknownQuestion  = errors.New("question not in session")
)

type Option func(*Session)

// WithClock は完了時刻の取得に使う時計を差し替えます (テスト用)
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

type response struct {
	raw       json.RawMessage
	timeSpent int
	answered  bool
}

type Session struct {
	quizID    string
	questions []model.Question
	responses []response
	index     int
	state     State
	review    bool
	now       func() time.Time
	result    *model.QuizResult
}

func NewSession(q *model.Quiz, opts ...Option) (*Session, error) {
	return newSession(q, q.Questions, false, opts)
}

// NewReviewSession は前回不正解だった設問だけで復習セッションを作ります。
// incorrectIDs の並びではなく、クイズ定義上の順序を保つ。
func NewReviewSession(q *model.Quiz, incorrectIDs []string, opts ...Option) (*Session, error) {
	wanted := make(map[string]struct{}, len(incorrectIDs))
	for _, id := range incorrectIDs {
		wanted[id] = struct{}{}
	}
	var questions []model.Question
	for _, question := range q.Questions {
		if _, ok := wanted[question.ID]; ok {
			questions = append(questions, question)
		}
	}
	return newSession(q, questions, true, opts)
}

func newSession(q *model.Quiz, questions []model.Question, review bool, opts []Option) (*Session, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	s := &Session{
		quizID:    q.ID,
		questions: questions,
		responses: make([]response, len(questions)),
		state:     StateAnswering,
		review:    review,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *Session) State() State { return s.state }
func (s *Session) Index() int   { return s.index }
func (s *Session) Len() int     { return len(s.questions) }
func (s *Session) Review() bool { return s.review }

// Current は回答中の設問を返します。完了後は false。
func (s *Session) Current() (model.Question, bool) {
	if s.state == StateCompleted {
		return model.Question{}, false
	}
	return s.questions[s.index], true
}

// Answer は現在の設問への回答を記録します。同じ設問への再回答は上書き。
func (s *Session) Answer(raw json.RawMessage, timeSpent int) error {
	if s.state == StateCompleted {
		return ErrSessionCompleted
	}
	s.record(s.index, raw, timeSpent)
	return nil
}

// AnswerQuestion は設問IDを指定して回答を記録します。現在位置は動かさない。
func (s *Session) AnswerQuestion(questionID string, raw json.RawMessage, timeSpent int) error {
	if s.state == StateCompleted {
		return ErrSessionCompleted
	}
	for i, q := range s.questions {
		if q.ID == questionID {
			s.record(i, raw, timeSpent)
			return nil
		}
	}
	return ErrUnknownQuestion
}

func (s *Session) record(i int, raw json.RawMessage, timeSpent int) {
	if timeSpent < 0 {
		timeSpent = 0
	}
	s.responses[i] = response{
		raw:       append(json.RawMessage(nil), raw...),
		timeSpent: timeSpent,
		answered:  len(raw) > 0 && string(raw) != "null",
	}
}

// Next は次の設問へ進みます。最後の設問で呼ぶと採点して完了する。
func (s *Session) Next() error {
	if s.state == StateCompleted {
		return ErrSessionCompleted
	}
	if s.index == len(s.questions)-1 {
		s.Finish()
		return nil
	}
	s.index++
	return nil
}

func (s *Session) Prev() error {
	if s.state == StateCompleted {
		return ErrSessionCompleted
	}
	if s.index > 0 {
		s.index--
	}
	return nil
}

// Finish は採点して完了状態にします。2回目以降は同じ結果を返す。
func (s *Session) Finish() *model.QuizResult {
	if s.result != nil {
		return s.result
	}

	result := &model.QuizResult{
		ID:             uuid.NewString(),
		QuizID:         s.quizID,
		TotalQuestions: len(s.questions),
		CompletedAt:    s.now().UTC(),
		IsReviewMode:   s.review,
		Answers:        make([]model.AnswerDetail, 0, len(s.questions)),
	}

	earned, possible := 0, 0
	for i, q := range s.questions {
		resp := s.responses[i]
		correct := resp.answered && IsCorrect(q, resp.raw)

		possible += q.PointValue()
		if correct {
			earned += q.PointValue()
			result.CorrectAnswers++
		}
		result.TimeSpent += resp.timeSpent

		userAnswer := datatypes.JSON("null")
		if resp.answered {
			userAnswer = datatypes.JSON(resp.raw)
		}
		result.Answers = append(result.Answers, model.AnswerDetail{
			ID:           uuid.NewString(),
			QuizResultID: result.ID,
			QuestionID:   q.ID,
			UserAnswer:   userAnswer,
			IsCorrect:    correct,
			TimeSpent:    resp.timeSpent,
		})
	}
	result.Score = Score(earned, possible)

	s.result = result
	s.state = StateCompleted
	return result
}

// Result は完了済みなら採点結果を返します。
func (s *Session) Result() (*model.QuizResult, bool) {
	return s.result, s.result != nil
}

// Score は獲得点の百分率 (四捨五入)。満点が0なら0。
func Score(earned, possible int) int {
	if possible <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(earned) / float64(possible)))
}

// IsCorrect は設問タイプごとのルールで回答を判定します。
// 回答は文字列か文字列配列のJSON。解釈できない回答は不正解。
func IsCorrect(q model.Question, raw json.RawMessage) bool {
	answers, ok := decodeAnswer(raw)
	if !ok {
		return false
	}

	switch q.Type {
	case model.QuestionTypeMultipleChoice:
		if len(answers) != 1 {
			return false
		}
		for _, opt := range q.Options {
			if opt.IsCorrect && opt.ID == answers[0] {
				return true
			}
		}
		return false

	case model.QuestionTypeMultipleSelect:
		correct := make(map[string]struct{})
		for _, opt := range q.Options {
			if opt.IsCorrect {
				correct[opt.ID] = struct{}{}
			}
		}
		selected := make(map[string]struct{}, len(answers))
		for _, a := range answers {
			selected[a] = struct{}{}
		}
		if len(selected) != len(correct) {
			return false
		}
		for id := range selected {
			if _, ok := correct[id]; !ok {
				return false
			}
		}
		return true

	case model.QuestionTypeShortAnswer:
		if len(answers) != 1 {
			return false
		}
		got := strings.TrimSpace(answers[0])
		want := strings.TrimSpace(q.CorrectAnswer)
		return got != "" && strings.EqualFold(got, want)
	}
	return false
}

func decodeAnswer(raw json.RawMessage) ([]string, bool) {
	if len(raw) == 0 {
		return nil, false
	}
	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return []string{single}, true
	}
	var multi []string
	if err := json.Unmarshal(raw, &multi); err == nil {
		return multi, true
	}
	return nil, false
}
