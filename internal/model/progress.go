// internal/model/progress.go
package model

import (
	"time"

	"gorm.io/datatypes"
)

type ProgressStatus string

const (
	ProgressStatusNotStarted ProgressStatus = "not_started"
	ProgressStatusInProgress ProgressStatus = "in_progress"
	ProgressStatusCompleted  ProgressStatus = "completed"
)

// UserProgress はユーザー×コンテンツ単位の学習進捗を表します
type UserProgress struct {
	ID                   string         `gorm:"type:varchar(36);primaryKey" json:"id"`
	UserID               string         `gorm:"type:varchar(64);not null;uniqueIndex:idx_user_content" json:"userId"` // 複合ユニークインデックスの一部
	ContentID            string         `gorm:"type:varchar(36);not null;uniqueIndex:idx_user_content" json:"contentId"`
	Status               ProgressStatus `gorm:"type:varchar(20);not null;default:'in_progress'" json:"status"`
	CompletionPercentage int            `gorm:"not null;default:0" json:"completionPercentage"`
	TimeSpent            int            `gorm:"not null;default:0" json:"timeSpent"` // 秒
	LastAccessed         time.Time      `gorm:"not null" json:"lastAccessed"`
	CreatedAt            time.Time      `json:"createdAt"`
	UpdatedAt            time.Time      `json:"updatedAt"`

	// 関連 (Preload用)
	SectionProgress []SectionProgress `gorm:"foreignKey:ProgressID" json:"sectionProgress"`
	QuizResults     []QuizResult      `gorm:"foreignKey:ProgressID" json:"quizResults"`
}

func (UserProgress) TableName() string {
	return "user_progress"
}

// SectionProgress はセクション単位の進捗。(progress_id, section_id) で一意。
type SectionProgress struct {
	ID           string    `gorm:"type:varchar(36);primaryKey" json:"-"`
	ProgressID   string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_progress_section" json:"-"`
	SectionID    string    `gorm:"type:varchar(36);not null;uniqueIndex:idx_progress_section" json:"sectionId"`
	Completed    bool      `gorm:"not null;default:false" json:"completed"`
	TimeSpent    int       `gorm:"not null;default:0" json:"timeSpent"`
	LastAccessed time.Time `gorm:"not null" json:"lastAccessed"`
}

func (SectionProgress) TableName() string {
	return "section_progress"
}

// QuizResult はクイズ1回分の結果。履歴として追加のみ行い、更新はしない。
type QuizResult struct {
	ID             string         `gorm:"type:varchar(36);primaryKey" json:"id"`
	ProgressID     string         `gorm:"type:varchar(36);not null;index" json:"-"`
	QuizID         string         `gorm:"type:varchar(64);not null;index" json:"quizId" validate:"required"`
	Score          int            `gorm:"not null" json:"score" validate:"gte=0,lte=100"`
	TotalQuestions int            `gorm:"not null" json:"totalQuestions" validate:"gte=0"`
	CorrectAnswers int            `gorm:"not null" json:"correctAnswers" validate:"gte=0,ltefield=TotalQuestions"`
	CompletedAt    time.Time      `gorm:"not null" json:"completedAt"`
	TimeSpent      int            `gorm:"not null;default:0" json:"timeSpent" validate:"gte=0"`
	IsReviewMode   bool           `gorm:"not null;default:false" json:"isReviewMode,omitempty"`
	Answers        []AnswerDetail `gorm:"foreignKey:QuizResultID" json:"answers" validate:"omitempty,dive"`
}

func (QuizResult) TableName() string {
	return "quiz_results"
}

// AnswerDetail は設問ごとの回答。作成後は変更しない。
type AnswerDetail struct {
	ID           string         `gorm:"type:varchar(36);primaryKey" json:"-"`
	QuizResultID string         `gorm:"type:varchar(36);not null;index" json:"-"`
	QuestionID   string         `gorm:"type:varchar(64);not null" json:"questionId" validate:"required"`
	UserAnswer   datatypes.JSON `json:"userAnswer"`
	IsCorrect    bool           `gorm:"not null" json:"isCorrect"`
	TimeSpent    int            `gorm:"not null;default:0" json:"timeSpent,omitempty" validate:"gte=0"`
}

func (AnswerDetail) TableName() string {
	return "answer_details"
}

// SectionProgressRequest はセクション進捗の更新内容
type SectionProgressRequest struct {
	SectionID string `json:"sectionId" validate:"required"`
	Completed bool   `json:"completed"`
	TimeSpent int    `json:"timeSpent" validate:"gte=0"`
}

// CreateProgressRequest は POST /api/user/progress のリクエストDTO
type CreateProgressRequest struct {
	UserID          string                   `json:"userId" validate:"required,max=64"`
	ContentID       string                   `json:"contentId" validate:"required,max=36"`
	Status          *ProgressStatus          `json:"status,omitempty" validate:"omitempty,oneof=not_started in_progress completed"`
	TimeSpent       int                      `json:"timeSpent" validate:"gte=0"`
	SectionProgress []SectionProgressRequest `json:"sectionProgress,omitempty" validate:"omitempty,dive"`
}

// UpdateProgressRequest は PUT /api/user/progress の部分更新DTO。nil のフィールドは更新しない。
// CompletionPercentage はセクションを持たないコンテンツにだけ指定できる。
type UpdateProgressRequest struct {
	Status               *ProgressStatus          `json:"status,omitempty" validate:"omitempty,oneof=not_started in_progress completed"`
	CompletionPercentage *int                     `json:"completionPercentage,omitempty" validate:"omitempty,gte=0,lte=100"`
	TimeSpent            *int                     `json:"timeSpent,omitempty" validate:"omitempty,gte=0"`
	SectionProgress      []SectionProgressRequest `json:"sectionProgress,omitempty" validate:"omitempty,dive"`
	QuizResult           *QuizResult              `json:"quizResult,omitempty"`
}

// LearningStatistics はユーザーの学習統計
type LearningStatistics struct {
	TotalTimeSpent     int      `json:"totalTimeSpent"`
	CompletedContents  int      `json:"completedContents"`
	InProgressContents int      `json:"inProgressContents"`
	AverageScore       int      `json:"averageScore"`
	TotalQuizzes       int      `json:"totalQuizzes"`
	StrongTopics       []string `json:"strongTopics"`
	WeakTopics         []string `json:"weakTopics"`
}

// ProgressTotals は user_progress の集計結果
type ProgressTotals struct {
	TotalTimeSpent int
	Completed      int
	InProgress     int
}

// ScoredTags はクイズ結果のスコアと、そのコンテンツのタグ
type ScoredTags struct {
	Score int
	Tags  datatypes.JSONSlice[string]
}
