package service

import (
	"diary_backend/internal/model"
	"diary_backend/internal/repository"
	"diary_backend/pkg/logger"

	"go.uber.org/zap"
)

// Notifier 推送下发的可选协作方，启动时显式注入。
// 本服务只负责令牌登记；真正的下发实现（FCM 等）由部署方提供。
type Notifier interface {
	Notify(anonID string, tokens []string, title, body string) error
}

// NopNotifier 未配置推送时的默认实现
type NopNotifier struct{}

func (NopNotifier) Notify(anonID string, tokens []string, title, body string) error {
	return nil
}

type NotificationService struct {
	UserRepo *repository.UserRepository
	Notifier Notifier
}

func NewNotificationService(userRepo *repository.UserRepository, notifier Notifier) *NotificationService {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &NotificationService{
		UserRepo: userRepo,
		Notifier: notifier,
	}
}

type TokenRequest struct {
	Token    string `json:"token" binding:"required"`
	Platform string `json:"platform"`
}

// RegisterToken 幂等登记设备令牌，并确保身份档案存在
func (s *NotificationService) RegisterToken(anonID string, req TokenRequest) error {
	if _, err := s.UserRepo.UpsertProfile(anonID, nil); err != nil {
		return err
	}
	return s.UserRepo.RegisterDeviceToken(&model.DeviceToken{
		AnonID:   anonID,
		Token:    req.Token,
		Platform: req.Platform,
	})
}

// Push 给某身份的全部设备推送一条通知，失败只记日志不阻塞调用方
func (s *NotificationService) Push(anonID, title, body string) {
	tokens, err := s.UserRepo.GetDeviceTokens(anonID)
	if err != nil {
		logger.Log.Error("load device tokens failed", zap.String("anonId", anonID), zap.Error(err))
		return
	}
	if len(tokens) == 0 {
		return
	}

	raw := make([]string, len(tokens))
	for i, t := range tokens {
		raw[i] = t.Token
	}
	if err := s.Notifier.Notify(anonID, raw, title, body); err != nil {
		logger.Log.Error("push notify failed", zap.String("anonId", anonID), zap.Error(err))
	}
}
