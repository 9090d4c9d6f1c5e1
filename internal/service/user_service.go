package service

import (
	"diary_backend/internal/model"
	"diary_backend/internal/repository"
)

type UserService struct {
	UserRepo  *repository.UserRepository
	EntryRepo *repository.EntryRepository
}

func NewUserService(userRepo *repository.UserRepository, entryRepo *repository.EntryRepository) *UserService {
	return &UserService{
		UserRepo:  userRepo,
		EntryRepo: entryRepo,
	}
}

type ProfileUpdateRequest struct {
	AvatarURL  *string `json:"avatarUrl" form:"avatarUrl"`
	ThemeColor *string `json:"themeColor" form:"themeColor"`
}

type ProfileResponse struct {
	AnonID     string `json:"anonId"`
	Email      string `json:"email,omitempty"`
	Provider   string `json:"provider"`
	AvatarURL  string `json:"avatarUrl,omitempty"`
	ThemeColor string `json:"themeColor,omitempty"`
}

func toProfileResponse(user *model.User) ProfileResponse {
	resp := ProfileResponse{
		AnonID:     user.AnonID,
		Provider:   user.Provider,
		AvatarURL:  user.AvatarURL,
		ThemeColor: user.ThemeColor,
	}
	if user.Email != nil {
		resp.Email = *user.Email
	}
	return resp
}

// GetProfile 匿名身份可能还没有档案记录，按需创建
func (s *UserService) GetProfile(anonID string) (*ProfileResponse, error) {
	user, err := s.UserRepo.UpsertProfile(anonID, nil)
	if err != nil {
		return nil, err
	}
	resp := toProfileResponse(user)
	return &resp, nil
}

func (s *UserService) UpdateProfile(anonID string, req ProfileUpdateRequest, avatarURL string) (*ProfileResponse, error) {
	updates := map[string]interface{}{}
	if avatarURL != "" {
		updates["avatar_url"] = avatarURL
	} else if req.AvatarURL != nil {
		updates["avatar_url"] = *req.AvatarURL
	}
	if req.ThemeColor != nil {
		updates["theme_color"] = *req.ThemeColor
	}

	user, err := s.UserRepo.UpsertProfile(anonID, updates)
	if err != nil {
		return nil, err
	}
	resp := toProfileResponse(user)
	return &resp, nil
}

func (s *UserService) GetMyEntries(anonID string, page, limit int) ([]EntryResponse, int64, error) {
	offset := (page - 1) * limit
	entries, total, err := s.EntryRepo.FindByAuthor(anonID, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	return toEntryResponses(entries), total, nil
}

// GetMyHearts 当前身份做出过反应的帖子（旧版入口叫 my-hearts）
func (s *UserService) GetMyHearts(anonID string, page, limit int) ([]EntryResponse, int64, error) {
	offset := (page - 1) * limit
	entries, total, err := s.EntryRepo.FindReactedBy(anonID, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	return toEntryResponses(entries), total, nil
}
