package service

import (
	"diary_backend/internal/model"
	"diary_backend/internal/repository"
	"diary_backend/internal/util"
	"strings"
	"time"
	"unicode/utf8"
)

type MessageService struct {
	MessageRepo *repository.MessageRepository
}

func NewMessageService(messageRepo *repository.MessageRepository) *MessageService {
	return &MessageService{MessageRepo: messageRepo}
}

type MessageRequest struct {
	Content string `json:"content"`
}

type MessageResponse struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"senderId"`
	ReceiverID string    `json:"receiverId"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ConversationSummary 会话列表条目：对端 id + 最新一条消息
type ConversationSummary struct {
	PeerID        string    `json:"peerId"`
	LastContent   string    `json:"lastContent"`
	LastSenderID  string    `json:"lastSenderId"`
	LastCreatedAt time.Time `json:"lastCreatedAt"`
}

func toMessageResponse(m *model.Message) MessageResponse {
	return MessageResponse{
		ID:         m.ID,
		SenderID:   m.SenderID,
		ReceiverID: m.ReceiverID,
		Content:    m.Content,
		CreatedAt:  m.CreatedAt,
	}
}

func (s *MessageService) Send(senderID, receiverID string, req MessageRequest) (*MessageResponse, error) {
	if senderID == receiverID {
		return nil, util.ErrSelfMessage
	}
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, util.ErrEmptyContent
	}
	// 按字符数限长，中文等多字节内容不吃亏
	if utf8.RuneCountInString(content) > util.MaxMessageContentLen {
		return nil, util.ErrContentTooLong
	}

	msg := &model.Message{
		ConversationKey: model.ConversationKey(senderID, receiverID),
		SenderID:        senderID,
		ReceiverID:      receiverID,
		Content:         content,
	}
	if err := s.MessageRepo.Create(msg); err != nil {
		return nil, err
	}

	resp := toMessageResponse(msg)
	return &resp, nil
}

// GetConversation 内部按最新在前分页，返回前反转为时间序便于展示
func (s *MessageService) GetConversation(userID, peerID string, page, limit int) ([]MessageResponse, error) {
	offset := (page - 1) * limit
	key := model.ConversationKey(userID, peerID)

	msgs, err := s.MessageRepo.FindConversation(key, offset, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]MessageResponse, len(msgs))
	for i, m := range msgs {
		responses[len(msgs)-1-i] = toMessageResponse(&m)
	}
	return responses, nil
}

// ListConversations 每个会话取最新一条消息，投影出相对请求者的对端 id
func (s *MessageService) ListConversations(userID string) ([]ConversationSummary, error) {
	latest, err := s.MessageRepo.FindConversationSummaries(userID)
	if err != nil {
		return nil, err
	}

	summaries := make([]ConversationSummary, len(latest))
	for i, m := range latest {
		peer := m.SenderID
		if peer == userID {
			peer = m.ReceiverID
		}
		summaries[i] = ConversationSummary{
			PeerID:        peer,
			LastContent:   m.Content,
			LastSenderID:  m.SenderID,
			LastCreatedAt: m.CreatedAt,
		}
	}
	return summaries, nil
}
