package model

import (
	"time"
)

// ReactionType 反应类型（reactions 替代了早期的 hearts）
type ReactionType string

const (
	ReactionHeart ReactionType = "heart"
	ReactionHappy ReactionType = "happy"
	ReactionSad   ReactionType = "sad"
	ReactionAngry ReactionType = "angry"
)

// ValidReactionType 反应类型白名单
func ValidReactionType(t string) bool {
	switch ReactionType(t) {
	case ReactionHeart, ReactionHappy, ReactionSad, ReactionAngry:
		return true
	}
	return false
}

// Entry 日记帖子，系统的核心内容单元
type Entry struct {
	UUIDBase
	Content  string     `gorm:"type:text;not null" json:"content"`
	AuthorID string     `gorm:"index;size:64" json:"authorId,omitempty"` // 匿名发布时为空
	Emotion  string     `gorm:"size:20" json:"emotion,omitempty"`
	ImageURL string     `gorm:"size:255" json:"imageUrl,omitempty"`
	DiaryDate *time.Time `json:"diaryDate,omitempty"` // 预定的日记日期
	RepostOf  *string    `gorm:"index;type:varchar(36)" json:"repostOf,omitempty"`

	// 冗余计数，与 Reaction/Reply 表在同一事务内维护
	RepliesCount   int `gorm:"default:0" json:"repliesCount"`
	ReactionsHeart int `gorm:"default:0" json:"-"`
	ReactionsHappy int `gorm:"default:0" json:"-"`
	ReactionsSad   int `gorm:"default:0" json:"-"`
	ReactionsAngry int `gorm:"default:0" json:"-"`
}

func (Entry) TableName() string {
	return "entries"
}

// Reply 帖子下的评论
type Reply struct {
	UUIDBase
	EntryID  string `gorm:"index;type:varchar(36);not null" json:"entryId"`
	AuthorID string `gorm:"index;size:64" json:"authorId,omitempty"`
	Content  string `gorm:"type:text;not null" json:"content"`
}

func (Reply) TableName() string {
	return "replies"
}

// Reaction 每个用户对每个帖子至多一条
type Reaction struct {
	UUIDBase
	EntryID string       `gorm:"uniqueIndex:idx_entry_user;type:varchar(36);not null" json:"entryId"`
	UserID  string       `gorm:"uniqueIndex:idx_entry_user;size:64;not null" json:"userId"`
	Type    ReactionType `gorm:"size:10;not null" json:"type"`
}

func (Reaction) TableName() string {
	return "reactions"
}
