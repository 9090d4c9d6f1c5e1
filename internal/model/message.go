package model

import "strings"

// Message 私信记录，创建后不可变
type Message struct {
	UUIDBase
	ConversationKey string `gorm:"index;size:130;not null" json:"-"`
	SenderID        string `gorm:"index;size:64;not null" json:"senderId"`
	ReceiverID      string `gorm:"index;size:64;not null" json:"receiverId"`
	Content         string `gorm:"type:text;not null" json:"content"`
}

func (Message) TableName() string {
	return "messages"
}

// ConversationKey 两个参与者的规范会话键，与收发方向无关
func ConversationKey(a, b string) string {
	if strings.Compare(a, b) > 0 {
		a, b = b, a
	}
	return a + ":" + b
}
