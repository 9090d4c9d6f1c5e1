package repository

import (
	"diary_backend/internal/model"

	"gorm.io/gorm"
)

type ReplyRepository struct {
	DB *gorm.DB
}

func NewReplyRepository(db *gorm.DB) *ReplyRepository {
	return &ReplyRepository{DB: db}
}

// Create 插入回复并在同一事务内递增帖子的 replies_count。
// 帖子不存在时返回 gorm.ErrRecordNotFound。
func (r *ReplyRepository) Create(reply *model.Reply) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var entry model.Entry
		if err := tx.Select("id").First(&entry, "id = ?", reply.EntryID).Error; err != nil {
			return err
		}
		if err := tx.Create(reply).Error; err != nil {
			return err
		}
		return tx.Model(&model.Entry{}).Where("id = ?", entry.ID).
			Update("replies_count", gorm.Expr("replies_count + 1")).Error
	})
}

func (r *ReplyRepository) FindByEntry(entryID string, offset, limit int) ([]model.Reply, error) {
	var replies []model.Reply
	err := r.DB.Where("entry_id = ?", entryID).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&replies).Error
	return replies, err
}

func (r *ReplyRepository) CountByEntry(entryID string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Reply{}).Where("entry_id = ?", entryID).Count(&count).Error
	return count, err
}
