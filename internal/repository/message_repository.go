package repository

import (
	"diary_backend/internal/model"

	"gorm.io/gorm"
)

type MessageRepository struct {
	DB *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{DB: db}
}

func (r *MessageRepository) Create(msg *model.Message) error {
	if msg.ConversationKey == "" {
		msg.ConversationKey = model.ConversationKey(msg.SenderID, msg.ReceiverID)
	}
	return r.DB.Create(msg).Error
}

// FindConversation 按会话键取消息，内部最新在前，展示层再反转为时间序
func (r *MessageRepository) FindConversation(key string, offset, limit int) ([]model.Message, error) {
	var msgs []model.Message
	err := r.DB.Where("conversation_key = ?", key).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&msgs).Error
	return msgs, err
}

// FindConversationSummaries 每个会话的最新一条消息，最新会话在前
func (r *MessageRepository) FindConversationSummaries(userID string) ([]model.Message, error) {
	var msgs []model.Message
	err := r.DB.Raw(`
		SELECT m.* FROM messages m
		JOIN (
			SELECT conversation_key AS ck, MAX(created_at) AS latest
			FROM messages
			WHERE sender_id = ? OR receiver_id = ?
			GROUP BY conversation_key
		) t ON m.conversation_key = t.ck AND m.created_at = t.latest
		ORDER BY m.created_at DESC`,
		userID, userID,
	).Scan(&msgs).Error
	return msgs, err
}

func (r *MessageRepository) CountConversation(key string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Message{}).Where("conversation_key = ?", key).Count(&count).Error
	return count, err
}
