package repository

import (
	"diary_backend/internal/model"
	"testing"
	"time"
)

func seedMessage(t *testing.T, repo *MessageRepository, sender, receiver, content string, at time.Time) {
	t.Helper()
	msg := &model.Message{SenderID: sender, ReceiverID: receiver, Content: content}
	msg.CreatedAt = at
	if err := repo.Create(msg); err != nil {
		t.Fatalf("创建消息失败: %v", err)
	}
}

func TestMessageCreate_DerivesConversationKey(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMessageRepository(db)

	msg := &model.Message{SenderID: "bob", ReceiverID: "alice", Content: "你好"}
	if err := repo.Create(msg); err != nil {
		t.Fatalf("创建消息失败: %v", err)
	}
	// 键按两端排序，和方向无关
	if msg.ConversationKey != "alice:bob" {
		t.Errorf("会话键 = %s, 期望 alice:bob", msg.ConversationKey)
	}
}

func TestMessageFindConversation(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMessageRepository(db)

	base := time.Now().Add(-time.Hour)
	seedMessage(t, repo, "alice", "bob", "第一条", base)
	seedMessage(t, repo, "bob", "alice", "第二条", base.Add(time.Minute))
	seedMessage(t, repo, "alice", "bob", "第三条", base.Add(2*time.Minute))
	// 无关会话不应混入
	seedMessage(t, repo, "alice", "carol", "别的会话", base.Add(3*time.Minute))

	key := model.ConversationKey("bob", "alice")
	msgs, err := repo.FindConversation(key, 0, 10)
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if len(msgs) != 3 {
		t.Fatalf("条数 = %d, 期望 3", len(msgs))
	}
	if msgs[0].Content != "第三条" {
		t.Errorf("应最新在前, 首条 = %s", msgs[0].Content)
	}

	count, _ := repo.CountConversation(key)
	if count != 3 {
		t.Errorf("会话消息总数 = %d, 期望 3", count)
	}
}

func TestMessageFindConversationSummaries(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMessageRepository(db)

	base := time.Now().Add(-time.Hour)
	seedMessage(t, repo, "alice", "bob", "旧消息", base)
	seedMessage(t, repo, "bob", "alice", "bob会话最新", base.Add(time.Minute))
	seedMessage(t, repo, "alice", "carol", "carol会话最新", base.Add(2*time.Minute))
	// alice 不参与的会话不应出现
	seedMessage(t, repo, "bob", "carol", "别人的会话", base.Add(3*time.Minute))

	summaries, err := repo.FindConversationSummaries("alice")
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("会话数 = %d, 期望 2", len(summaries))
	}
	// 最新会话在前，每个会话只取最新一条
	if summaries[0].Content != "carol会话最新" {
		t.Errorf("首个会话 = %s, 期望 carol会话最新", summaries[0].Content)
	}
	if summaries[1].Content != "bob会话最新" {
		t.Errorf("第二个会话 = %s, 期望 bob会话最新", summaries[1].Content)
	}
}
