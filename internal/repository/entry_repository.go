package repository

import (
	"context"
	"diary_backend/internal/model"
	"diary_backend/internal/util"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

type EntryRepository struct {
	DB       *gorm.DB
	Redis    *redis.Client
	ctx      context.Context
	cacheTTL time.Duration
}

func NewEntryRepository(db *gorm.DB, rdb *redis.Client, cacheTTL time.Duration) *EntryRepository {
	if cacheTTL <= 0 {
		cacheTTL = 30 * time.Second
	}
	return &EntryRepository{
		DB:       db,
		Redis:    rdb,
		ctx:      context.Background(),
		cacheTTL: cacheTTL,
	}
}

func (r *EntryRepository) Create(entry *model.Entry) error {
	return r.DB.Create(entry).Error
}

func (r *EntryRepository) FindByID(id string) (*model.Entry, error) {
	var entry model.Entry
	err := r.DB.First(&entry, "id = ?", id).Error
	return &entry, err
}

func (r *EntryRepository) FindLatest(offset, limit int) ([]model.Entry, error) {
	var entries []model.Entry
	err := r.DB.Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&entries).Error
	return entries, err
}

// FindRecommended 按全部反应数+回复数排序，再按时间；首页走 Redis 短时缓存
func (r *EntryRepository) FindRecommended(offset, limit int) ([]model.Entry, error) {
	cacheKey := fmt.Sprintf("feed:recommended:o%d:l%d", offset, limit)
	if r.Redis != nil && offset == 0 {
		if cached, err := r.Redis.Get(r.ctx, cacheKey).Result(); err == nil {
			var entries []model.Entry
			if json.Unmarshal([]byte(cached), &entries) == nil {
				return entries, nil
			}
		}
	}

	var entries []model.Entry
	err := r.DB.
		Order("(reactions_heart + reactions_happy + reactions_sad + reactions_angry + replies_count) DESC, created_at DESC").
		Offset(offset).Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	if r.Redis != nil && offset == 0 {
		if payload, err := json.Marshal(entries); err == nil {
			r.Redis.Set(r.ctx, cacheKey, payload, r.cacheTTL)
		}
	}
	return entries, nil
}

// FindRandom 均匀随机抽样。gorm 没有 $sample 等价物，按方言选随机函数。
func (r *EntryRepository) FindRandom(limit int) ([]model.Entry, error) {
	randFn := "RAND()"
	if r.DB.Dialector.Name() == "sqlite" {
		randFn = "RANDOM()"
	}

	var entries []model.Entry
	err := r.DB.Order(randFn).Limit(limit).Find(&entries).Error
	return entries, err
}

func (r *EntryRepository) FindByAuthor(authorID string, offset, limit int) ([]model.Entry, int64, error) {
	var entries []model.Entry
	var total int64

	db := r.DB.Model(&model.Entry{}).Where("author_id = ?", authorID)
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&entries).Error
	return entries, total, err
}

// FindReactedBy 当前用户做出过反应的帖子（旧版叫 my-hearts）
func (r *EntryRepository) FindReactedBy(userID string, offset, limit int) ([]model.Entry, int64, error) {
	var entries []model.Entry
	var total int64

	db := r.DB.Model(&model.Entry{}).
		Joins("JOIN reactions ON reactions.entry_id = entries.id").
		Where("reactions.user_id = ?", userID)

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Order("reactions.created_at DESC").
		Offset(offset).Limit(limit).
		Find(&entries).Error
	return entries, total, err
}

func (r *EntryRepository) Update(id string, updates map[string]interface{}) error {
	return r.DB.Model(&model.Entry{}).Where("id = ?", id).Updates(updates).Error
}

// Delete 删除帖子并级联清理回复与反应，保证不留孤儿记录
func (r *EntryRepository) Delete(id string) error {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("entry_id = ?", id).Delete(&model.Reply{}).Error; err != nil {
			return err
		}
		if err := tx.Where("entry_id = ?", id).Delete(&model.Reaction{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Entry{}, "id = ?", id).Error
	})

	if err == nil {
		r.invalidateFeedCache()
	}
	return err
}

// CreateRepost 转发：每个身份全局只允许一次，且不能转发自己的帖子
func (r *EntryRepository) CreateRepost(original *model.Entry, authorID string) (*model.Entry, error) {
	if original.AuthorID != "" && original.AuthorID == authorID {
		return nil, util.ErrCannotRepostOwn
	}

	repost := &model.Entry{
		Content:  original.Content,
		AuthorID: authorID,
		Emotion:  original.Emotion,
		ImageURL: original.ImageURL,
		RepostOf: &original.ID,
	}

	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Entry{}).
			Where("author_id = ? AND repost_of IS NOT NULL", authorID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return util.ErrDuplicateRepost
		}
		return tx.Create(repost).Error
	})
	if err != nil {
		return nil, err
	}
	return repost, nil
}

func (r *EntryRepository) invalidateFeedCache() {
	if r.Redis == nil {
		return
	}
	iter := r.Redis.Scan(r.ctx, 0, "feed:recommended:*", 0).Iterator()
	for iter.Next(r.ctx) {
		r.Redis.Del(r.ctx, iter.Val())
	}
}
