package repository

import (
	"diary_backend/internal/model"
	"diary_backend/internal/util"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"
)

func newEntryRepo(db *gorm.DB) *EntryRepository {
	return NewEntryRepository(db, nil, 0)
}

func TestEntryCreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := newEntryRepo(db)

	entry := &model.Entry{Content: "第一篇日记", AuthorID: "author-1", Emotion: "happy"}
	if err := repo.Create(entry); err != nil {
		t.Fatalf("创建失败: %v", err)
	}
	if entry.ID == "" {
		t.Fatal("创建后应有 uuid 主键")
	}

	got, err := repo.FindByID(entry.ID)
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if got.Content != "第一篇日记" || got.Emotion != "happy" {
		t.Errorf("查询结果不匹配: %+v", got)
	}
	if got.RepliesCount != 0 || got.ReactionsHeart != 0 {
		t.Errorf("新帖子计数应全为 0: %+v", got)
	}
}

func TestEntryFindLatest(t *testing.T) {
	db := setupTestDB(t)
	repo := newEntryRepo(db)

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		entry := &model.Entry{Content: "内容", AuthorID: "a"}
		entry.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		if err := repo.Create(entry); err != nil {
			t.Fatalf("创建失败: %v", err)
		}
	}

	entries, err := repo.FindLatest(0, 10)
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("条数 = %d, 期望 3", len(entries))
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].CreatedAt.After(entries[i-1].CreatedAt) {
			t.Errorf("latest 应按时间倒序")
		}
	}

	// 分页
	page2, err := repo.FindLatest(2, 10)
	if err != nil {
		t.Fatalf("分页查询失败: %v", err)
	}
	if len(page2) != 1 {
		t.Errorf("偏移 2 后条数 = %d, 期望 1", len(page2))
	}
}

func TestEntryFindRecommended(t *testing.T) {
	db := setupTestDB(t)
	repo := newEntryRepo(db)

	cold := &model.Entry{Content: "冷门"}
	hot := &model.Entry{Content: "热门", ReactionsHeart: 5, ReactionsSad: 2, RepliesCount: 3}
	warm := &model.Entry{Content: "一般", ReactionsHappy: 4}
	for _, e := range []*model.Entry{cold, hot, warm} {
		if err := repo.Create(e); err != nil {
			t.Fatalf("创建失败: %v", err)
		}
	}

	entries, err := repo.FindRecommended(0, 10)
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("条数 = %d, 期望 3", len(entries))
	}
	if entries[0].Content != "热门" || entries[1].Content != "一般" || entries[2].Content != "冷门" {
		t.Errorf("推荐排序错误: %s, %s, %s", entries[0].Content, entries[1].Content, entries[2].Content)
	}
}

func TestEntryFindRandom(t *testing.T) {
	db := setupTestDB(t)
	repo := newEntryRepo(db)

	for i := 0; i < 5; i++ {
		if err := repo.Create(&model.Entry{Content: "内容"}); err != nil {
			t.Fatalf("创建失败: %v", err)
		}
	}

	entries, err := repo.FindRandom(3)
	if err != nil {
		t.Fatalf("随机抽样失败: %v", err)
	}
	if len(entries) != 3 {
		t.Errorf("条数 = %d, 期望 3", len(entries))
	}

	all, err := repo.FindRandom(50)
	if err != nil {
		t.Fatalf("随机抽样失败: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("limit 大于总量时条数 = %d, 期望 5", len(all))
	}
}

func TestEntryDeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	repo := newEntryRepo(db)
	replyRepo := NewReplyRepository(db)
	reactionRepo := NewReactionRepository(db)

	entry := createTestEntry(t, db, "要删的帖子", "author-1")
	if err := replyRepo.Create(&model.Reply{EntryID: entry.ID, Content: "回复"}); err != nil {
		t.Fatalf("创建回复失败: %v", err)
	}
	if _, err := reactionRepo.React(entry.ID, "user-1", model.ReactionHeart); err != nil {
		t.Fatalf("创建反应失败: %v", err)
	}

	if err := repo.Delete(entry.ID); err != nil {
		t.Fatalf("删除失败: %v", err)
	}

	if _, err := repo.FindByID(entry.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("删除后查询错误 = %v, 期望 ErrRecordNotFound", err)
	}
	// 不留孤儿回复和反应
	replyCount, _ := replyRepo.CountByEntry(entry.ID)
	if replyCount != 0 {
		t.Errorf("残留回复 %d 条", replyCount)
	}
	reactionCount, _ := reactionRepo.CountByEntry(entry.ID)
	if reactionCount != 0 {
		t.Errorf("残留反应 %d 条", reactionCount)
	}
}

func TestEntryCreateRepost(t *testing.T) {
	db := setupTestDB(t)
	repo := newEntryRepo(db)

	original := createTestEntry(t, db, "被转发的帖子", "author-1")

	// 不能转发自己的帖子
	if _, err := repo.CreateRepost(original, "author-1"); !errors.Is(err, util.ErrCannotRepostOwn) {
		t.Errorf("转发自己帖子的错误 = %v, 期望 ErrCannotRepostOwn", err)
	}

	repost, err := repo.CreateRepost(original, "author-2")
	if err != nil {
		t.Fatalf("转发失败: %v", err)
	}
	if repost.RepostOf == nil || *repost.RepostOf != original.ID {
		t.Errorf("repostOf 未指向原帖")
	}
	if repost.Content != original.Content {
		t.Errorf("转发内容应复制原帖")
	}

	// 每个身份全局只能转发一次，换一篇帖子也不行
	other := createTestEntry(t, db, "另一篇", "author-1")
	if _, err := repo.CreateRepost(other, "author-2"); !errors.Is(err, util.ErrDuplicateRepost) {
		t.Errorf("二次转发的错误 = %v, 期望 ErrDuplicateRepost", err)
	}
}

func TestEntryFindByAuthor(t *testing.T) {
	db := setupTestDB(t)
	repo := newEntryRepo(db)

	for i := 0; i < 3; i++ {
		createTestEntry(t, db, "我的帖子", "author-1")
	}
	createTestEntry(t, db, "别人的帖子", "author-2")

	entries, total, err := repo.FindByAuthor("author-1", 0, 2)
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if total != 3 {
		t.Errorf("总数 = %d, 期望 3", total)
	}
	if len(entries) != 2 {
		t.Errorf("分页条数 = %d, 期望 2", len(entries))
	}
}

func TestEntryFindReactedBy(t *testing.T) {
	db := setupTestDB(t)
	repo := newEntryRepo(db)
	reactionRepo := NewReactionRepository(db)

	reacted := createTestEntry(t, db, "反应过", "author-1")
	createTestEntry(t, db, "没反应过", "author-1")
	if _, err := reactionRepo.React(reacted.ID, "user-1", model.ReactionHeart); err != nil {
		t.Fatalf("反应失败: %v", err)
	}

	entries, total, err := repo.FindReactedBy("user-1", 0, 10)
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if total != 1 || len(entries) != 1 {
		t.Fatalf("total = %d, len = %d, 期望各为 1", total, len(entries))
	}
	if entries[0].ID != reacted.ID {
		t.Errorf("查到的帖子不对")
	}
}

func TestEntryUpdate(t *testing.T) {
	db := setupTestDB(t)
	repo := newEntryRepo(db)

	entry := createTestEntry(t, db, "旧内容", "author-1")
	if err := repo.Update(entry.ID, map[string]interface{}{"content": "新内容", "emotion": "sad"}); err != nil {
		t.Fatalf("更新失败: %v", err)
	}

	got, err := repo.FindByID(entry.ID)
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if got.Content != "新内容" || got.Emotion != "sad" {
		t.Errorf("更新未生效: %+v", got)
	}
}
