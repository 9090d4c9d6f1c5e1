package service

import (
	"diary_backend/internal/model"
	"diary_backend/internal/repository"
	"testing"
)

type recordingNotifier struct {
	anonID string
	tokens []string
	title  string
	body   string
	calls  int
}

func (n *recordingNotifier) Notify(anonID string, tokens []string, title, body string) error {
	n.anonID = anonID
	n.tokens = tokens
	n.title = title
	n.body = body
	n.calls++
	return nil
}

func TestRegisterToken_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	s := NewNotificationService(repository.NewUserRepository(db), nil)

	for i := 0; i < 2; i++ {
		if err := s.RegisterToken("anon-1", TokenRequest{Token: "tok-1", Platform: "ios"}); err != nil {
			t.Fatalf("登记失败: %v", err)
		}
	}
	if err := s.RegisterToken("anon-1", TokenRequest{Token: "tok-2", Platform: "android"}); err != nil {
		t.Fatalf("登记失败: %v", err)
	}

	var count int64
	db.Model(&model.DeviceToken{}).Where("anon_id = ?", "anon-1").Count(&count)
	if count != 2 {
		t.Errorf("令牌数 = %d, 期望 2", count)
	}

	// 登记顺带保证身份档案存在
	var users int64
	db.Table("users").Where("anon_id = ?", "anon-1").Count(&users)
	if users != 1 {
		t.Errorf("用户记录数 = %d, 期望 1", users)
	}
}

func TestPush_UsesInjectedNotifier(t *testing.T) {
	db := setupTestDB(t)
	notifier := &recordingNotifier{}
	s := NewNotificationService(repository.NewUserRepository(db), notifier)

	// 没有令牌时不下发
	s.Push("anon-1", "标题", "正文")
	if notifier.calls != 0 {
		t.Errorf("无令牌时不应调用下发")
	}

	if err := s.RegisterToken("anon-1", TokenRequest{Token: "tok-1"}); err != nil {
		t.Fatalf("登记失败: %v", err)
	}
	s.Push("anon-1", "标题", "正文")
	if notifier.calls != 1 {
		t.Fatalf("下发次数 = %d, 期望 1", notifier.calls)
	}
	if notifier.anonID != "anon-1" || len(notifier.tokens) != 1 || notifier.tokens[0] != "tok-1" {
		t.Errorf("下发参数不对: %+v", notifier)
	}
}
