package repository

import (
	"diary_backend/internal/model"
	"errors"

	"gorm.io/gorm"
)

type ReactionRepository struct {
	DB *gorm.DB
}

func NewReactionRepository(db *gorm.DB) *ReactionRepository {
	return &ReactionRepository{DB: db}
}

func counterColumn(t model.ReactionType) string {
	switch t {
	case model.ReactionHeart:
		return "reactions_heart"
	case model.ReactionHappy:
		return "reactions_happy"
	case model.ReactionSad:
		return "reactions_sad"
	case model.ReactionAngry:
		return "reactions_angry"
	}
	return ""
}

// React 反应状态机。台账行与帖子上的冗余计数在同一事务内落库：
// 无反应 -> T        建台账行，T 计数 +1
// T -> T             幂等空操作
// T -> U (U != T)    台账改类型，T 计数 -1（下限 0），U 计数 +1
// 任何路径都不会删除已有反应。
func (r *ReactionRepository) React(entryID, userID string, t model.ReactionType) (*model.Entry, error) {
	var entry model.Entry

	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&entry, "id = ?", entryID).Error; err != nil {
			return err
		}

		var existing model.Reaction
		err := tx.Where("entry_id = ? AND user_id = ?", entryID, userID).
			First(&existing).Error

		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := tx.Create(&model.Reaction{EntryID: entryID, UserID: userID, Type: t}).Error; err != nil {
				return err
			}
			col := counterColumn(t)
			if err := tx.Model(&model.Entry{}).Where("id = ?", entryID).
				Update(col, gorm.Expr(col+" + 1")).Error; err != nil {
				return err
			}

		case err != nil:
			return err

		case existing.Type == t:
			// 重复同类型反应，计数保持不变

		default:
			if err := tx.Model(&model.Reaction{}).Where("id = ?", existing.ID).
				Update("type", t).Error; err != nil {
				return err
			}
			oldCol := counterColumn(existing.Type)
			newCol := counterColumn(t)
			if err := tx.Model(&model.Entry{}).Where("id = ?", entryID).
				Updates(map[string]interface{}{
					oldCol: gorm.Expr("CASE WHEN " + oldCol + " > 0 THEN " + oldCol + " - 1 ELSE 0 END"),
					newCol: gorm.Expr(newCol + " + 1"),
				}).Error; err != nil {
				return err
			}
		}

		return tx.First(&entry, "id = ?", entryID).Error
	})

	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *ReactionRepository) FindByEntryAndUser(entryID, userID string) (*model.Reaction, error) {
	var reaction model.Reaction
	err := r.DB.Where("entry_id = ? AND user_id = ?", entryID, userID).
		First(&reaction).Error
	return &reaction, err
}

func (r *ReactionRepository) CountByEntry(entryID string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Reaction{}).Where("entry_id = ?", entryID).Count(&count).Error
	return count, err
}
