// internal/model/content.go
package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ContentStatus string

const (
	ContentStatusDraft     ContentStatus = "draft"
	ContentStatusPublished ContentStatus = "published"
	ContentStatusArchived  ContentStatus = "archived"
)

// Content は管理者が作成する学習コンテンツ (順序付きセクションの集まり)
type Content struct {
	ID            string                      `gorm:"type:varchar(36);primaryKey" json:"id"`
	Title         string                      `gorm:"not null" json:"title"`
	Description   string                      `json:"description"`
	Type          string                      `gorm:"type:varchar(50)" json:"type"`
	Status        ContentStatus               `gorm:"type:varchar(20);not null;default:'draft';index" json:"status"`
	Tags          datatypes.JSONSlice[string] `json:"tags"`
	Difficulty    string                      `gorm:"type:varchar(20)" json:"difficulty"`
	EstimatedTime int                         `gorm:"not null;default:0" json:"estimatedTime"` // 分
	CreatedAt     time.Time                   `json:"createdAt"`
	UpdatedAt     time.Time                   `json:"updatedAt"`
	PublishedAt   *time.Time                  `json:"publishedAt,omitempty"`

	// status から導出する (カラムは持たない)
	Published bool `gorm:"-" json:"published"`

	Sections []ContentSection `gorm:"foreignKey:ContentID" json:"sections"`
}

func (Content) TableName() string {
	return "contents"
}

// AfterFind で published を status から導出する
func (c *Content) AfterFind(tx *gorm.DB) error {
	c.Published = c.Status == ContentStatusPublished
	return nil
}

// ContentSection はコンテンツ内のセクション。Order は 0 から連番。
type ContentSection struct {
	ID         string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	ContentID  string    `gorm:"type:varchar(36);not null;index" json:"-"`
	Title      string    `gorm:"not null" json:"title"`
	Content    string    `json:"content"`
	Order      int       `gorm:"column:section_order;not null" json:"order"`
	AudioURL   *string   `json:"audioUrl,omitempty"`
	SourceText *string   `json:"sourceText,omitempty"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`
}

func (ContentSection) TableName() string {
	return "content_sections"
}

// コンテンツ作成リクエストDTO
type CreateContentRequest struct {
	Title         string           `json:"title" validate:"required,max=200"`
	Description   string           `json:"description"`
	Type          string           `json:"type" validate:"omitempty,max=50"`
	Tags          []string         `json:"tags" validate:"omitempty,dive,required"`
	Difficulty    string           `json:"difficulty" validate:"omitempty,oneof=beginner intermediate advanced"`
	EstimatedTime int              `json:"estimatedTime" validate:"gte=0"`
	Sections      []SectionRequest `json:"sections" validate:"omitempty,dive"`
}

// コンテンツ更新（全体）リクエストDTO。sections は丸ごと置き換える。
type UpdateContentRequest struct {
	Title         string           `json:"title" validate:"required,max=200"`
	Description   string           `json:"description"`
	Type          string           `json:"type" validate:"omitempty,max=50"`
	Tags          []string         `json:"tags" validate:"omitempty,dive,required"`
	Difficulty    string           `json:"difficulty" validate:"omitempty,oneof=beginner intermediate advanced"`
	EstimatedTime int              `json:"estimatedTime" validate:"gte=0"`
	Sections      []SectionRequest `json:"sections" validate:"omitempty,dive"`
}

// SectionRequest は作成・更新時のセクション。ID を省略すると新規採番される。
type SectionRequest struct {
	ID         string  `json:"id,omitempty"`
	Title      string  `json:"title" validate:"required"`
	Content    string  `json:"content"`
	Order      int     `json:"order" validate:"gte=0"`
	AudioURL   *string `json:"audioUrl,omitempty" validate:"omitempty,url"`
	SourceText *string `json:"sourceText,omitempty"`
}
