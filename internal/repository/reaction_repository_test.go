package repository

import (
	"diary_backend/internal/model"
	"errors"
	"testing"

	"gorm.io/gorm"
)

func createTestEntry(t *testing.T, db *gorm.DB, content, authorID string) *model.Entry {
	t.Helper()
	entry := &model.Entry{Content: content, AuthorID: authorID}
	if err := db.Create(entry).Error; err != nil {
		t.Fatalf("创建帖子失败: %v", err)
	}
	return entry
}

func TestReact_FirstReaction(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReactionRepository(db)
	entry := createTestEntry(t, db, "今天天气不错", "author-1")

	updated, err := repo.React(entry.ID, "user-1", model.ReactionHeart)
	if err != nil {
		t.Fatalf("首次反应失败: %v", err)
	}
	if updated.ReactionsHeart != 1 {
		t.Errorf("heart 计数 = %d, 期望 1", updated.ReactionsHeart)
	}

	count, _ := repo.CountByEntry(entry.ID)
	if count != 1 {
		t.Errorf("台账行数 = %d, 期望 1", count)
	}
}

func TestReact_SameTypeIdempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReactionRepository(db)
	entry := createTestEntry(t, db, "内容", "author-1")

	// 同类型重复 3 次，计数和台账都不应变化
	for i := 0; i < 3; i++ {
		updated, err := repo.React(entry.ID, "user-1", model.ReactionHappy)
		if err != nil {
			t.Fatalf("第 %d 次反应失败: %v", i+1, err)
		}
		if updated.ReactionsHappy != 1 {
			t.Errorf("第 %d 次后 happy 计数 = %d, 期望 1", i+1, updated.ReactionsHappy)
		}
	}

	count, _ := repo.CountByEntry(entry.ID)
	if count != 1 {
		t.Errorf("台账行数 = %d, 期望 1", count)
	}
}

func TestReact_SwitchTypeMovesCounter(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReactionRepository(db)
	entry := createTestEntry(t, db, "内容", "author-1")

	if _, err := repo.React(entry.ID, "user-1", model.ReactionHeart); err != nil {
		t.Fatalf("首次反应失败: %v", err)
	}
	updated, err := repo.React(entry.ID, "user-1", model.ReactionSad)
	if err != nil {
		t.Fatalf("换类型失败: %v", err)
	}

	// 旧计数 -1 新计数 +1，总量守恒
	if updated.ReactionsHeart != 0 {
		t.Errorf("heart 计数 = %d, 期望 0", updated.ReactionsHeart)
	}
	if updated.ReactionsSad != 1 {
		t.Errorf("sad 计数 = %d, 期望 1", updated.ReactionsSad)
	}

	// 台账仍然只有一条，且类型已迁移
	count, _ := repo.CountByEntry(entry.ID)
	if count != 1 {
		t.Errorf("台账行数 = %d, 期望 1", count)
	}
	reaction, err := repo.FindByEntryAndUser(entry.ID, "user-1")
	if err != nil {
		t.Fatalf("查台账失败: %v", err)
	}
	if reaction.Type != model.ReactionSad {
		t.Errorf("台账类型 = %s, 期望 sad", reaction.Type)
	}
}

func TestReact_SwitchFloorsAtZero(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReactionRepository(db)
	entry := createTestEntry(t, db, "内容", "author-1")

	// 人为制造台账与计数漂移：台账有 heart 行但计数是 0
	if err := db.Create(&model.Reaction{EntryID: entry.ID, UserID: "user-1", Type: model.ReactionHeart}).Error; err != nil {
		t.Fatalf("插入台账失败: %v", err)
	}

	updated, err := repo.React(entry.ID, "user-1", model.ReactionAngry)
	if err != nil {
		t.Fatalf("换类型失败: %v", err)
	}
	if updated.ReactionsHeart != 0 {
		t.Errorf("heart 计数 = %d, 不应跌破 0", updated.ReactionsHeart)
	}
	if updated.ReactionsAngry != 1 {
		t.Errorf("angry 计数 = %d, 期望 1", updated.ReactionsAngry)
	}
}

func TestReact_MultipleUsers(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReactionRepository(db)
	entry := createTestEntry(t, db, "内容", "author-1")

	for _, uid := range []string{"user-1", "user-2", "user-3"} {
		if _, err := repo.React(entry.ID, uid, model.ReactionHeart); err != nil {
			t.Fatalf("用户 %s 反应失败: %v", uid, err)
		}
	}

	var got model.Entry
	if err := db.First(&got, "id = ?", entry.ID).Error; err != nil {
		t.Fatalf("查帖子失败: %v", err)
	}
	if got.ReactionsHeart != 3 {
		t.Errorf("heart 计数 = %d, 期望 3", got.ReactionsHeart)
	}
}

func TestReact_EntryNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewReactionRepository(db)

	_, err := repo.React(model.GenerateUUID(), "user-1", model.ReactionHeart)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("错误 = %v, 期望 ErrRecordNotFound", err)
	}
}
