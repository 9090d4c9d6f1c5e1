package service

import (
	"diary_backend/internal/config"
	"diary_backend/internal/model"
	"diary_backend/internal/repository"
	"diary_backend/internal/util"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo *repository.UserRepository
	Cfg      *config.Config
}

type AuthResponse struct {
	AnonID   string `json:"anonId"`
	Provider string `json:"provider"`
	Token    string `json:"token"`
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func NewAuthService(userRepo *repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Cfg:      cfg,
	}
}

// IssueAnonymous 签发匿名身份：随机 anonId 包在签名令牌里，签发时不落库。
// 邮箱身份返回同样的载荷结构，下游不区分两种身份。
func (s *AuthService) IssueAnonymous() (*AuthResponse, error) {
	anonID := model.GenerateUUID()
	token, err := util.GenerateJWT(anonID, model.ProviderAnonymous, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{
		AnonID:   anonID,
		Provider: model.ProviderAnonymous,
		Token:    token,
	}, nil
}

func (s *AuthService) Register(req RegisterRequest) (*AuthResponse, error) {
	_, err := s.UserRepo.FindByEmail(req.Email)
	if err == nil {
		return nil, util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	email := req.Email
	user := &model.User{
		AnonID:   model.GenerateUUID(),
		Email:    &email,
		Password: string(hashedPassword),
		Provider: model.ProviderEmail,
	}
	if err := s.UserRepo.Create(user); err != nil {
		// 并发注册会越过上面的查重，由邮箱唯一索引兜底
		if isDuplicateKey(err) {
			return nil, util.ErrEmailRegistered
		}
		return nil, err
	}

	token, err := util.GenerateJWT(user.AnonID, model.ProviderEmail, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{
		AnonID:   user.AnonID,
		Provider: model.ProviderEmail,
		Token:    token,
	}, nil
}

// isDuplicateKey 识别唯一索引冲突，覆盖 mysql 和测试用 sqlite 的报错文案
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "UNIQUE constraint")
}

func (s *AuthService) Login(req LoginRequest) (*AuthResponse, error) {
	user, err := s.UserRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, util.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, util.ErrInvalidCredentials
	}

	token, err := util.GenerateJWT(user.AnonID, model.ProviderEmail, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{
		AnonID:   user.AnonID,
		Provider: model.ProviderEmail,
		Token:    token,
	}, nil
}
