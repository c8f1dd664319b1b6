// internal/model/quiz.go
package model

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

type QuestionType string

const (
	QuestionTypeMultipleChoice QuestionType = "multiple-choice"
	QuestionTypeMultipleSelect QuestionType = "multiple-select"
	QuestionTypeShortAnswer    QuestionType = "short-answer"
)

// Quiz はコンテンツに紐づくクイズ定義。設問はJSONカラムに保存する。
type Quiz struct {
	ID        string                        `gorm:"type:varchar(36);primaryKey" json:"id"`
	ContentID string                        `gorm:"type:varchar(36);not null;index" json:"contentId"`
	Title     string                        `gorm:"not null" json:"title"`
	Questions datatypes.JSONSlice[Question] `json:"questions"`
	CreatedAt time.Time                     `json:"createdAt"`
	UpdatedAt time.Time                     `json:"updatedAt"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

// Question は設問。正解情報 (isCorrect / correctAnswer) を含む。
type Question struct {
	ID            string           `json:"id" validate:"required"`
	Type          QuestionType     `json:"type" validate:"required,oneof=multiple-choice multiple-select short-answer"`
	Text          string           `json:"question" validate:"required"`
	Options       []QuestionOption `json:"options,omitempty" validate:"omitempty,dive"`
	CorrectAnswer string           `json:"correctAnswer,omitempty"`
	Points        int              `json:"points,omitempty" validate:"gte=0"`
	Explanation   string           `json:"explanation,omitempty"`
}

// PointValue は配点 (未設定なら1点)
func (q Question) PointValue() int {
	if q.Points <= 0 {
		return 1
	}
	return q.Points
}

type QuestionOption struct {
	ID        string `json:"id" validate:"required"`
	Text      string `json:"text"`
	IsCorrect bool   `json:"isCorrect"`
}

// クイズ作成リクエストDTO
type CreateQuizRequest struct {
	ContentID string     `json:"contentId" validate:"required"`
	Title     string     `json:"title" validate:"required,max=200"`
	Questions []Question `json:"questions" validate:"required,min=1,dive"`
}

// SubmittedAnswer は1問分の回答。answer は設問タイプに応じたJSON (文字列 or 文字列配列)。
type SubmittedAnswer struct {
	QuestionID string          `json:"questionId" validate:"required"`
	Answer     json.RawMessage `json:"answer"`
	TimeSpent  int             `json:"timeSpent" validate:"gte=0"`
}

// SubmitAttemptRequest は POST /api/quizzes/{quiz_id}/attempts のリクエストDTO
type SubmitAttemptRequest struct {
	UserID    string            `json:"userId" validate:"required_if=Save true,required_if=Review true,max=64"`
	ContentID string            `json:"contentId,omitempty" validate:"max=36"`
	Answers   []SubmittedAnswer `json:"answers" validate:"omitempty,dive"`
	Review    bool              `json:"review"`
	TimeSpent int               `json:"timeSpent" validate:"gte=0"`
	Save      bool              `json:"save"`
}

// AttemptResponse は採点結果。save=true の場合は更新後の進捗も返す。
type AttemptResponse struct {
	Result   *QuizResult   `json:"result"`
	Progress *UserProgress `json:"progress,omitempty"`
}
