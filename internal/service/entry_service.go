package service

import (
	"diary_backend/internal/model"
	"diary_backend/internal/repository"
	"diary_backend/internal/util"
	"diary_backend/pkg/monitoring"
	"strings"
	"time"
	"unicode/utf8"
)

type EntryService struct {
	EntryRepo    *repository.EntryRepository
	ReplyRepo    *repository.ReplyRepository
	ReactionRepo *repository.ReactionRepository
}

func NewEntryService(
	entryRepo *repository.EntryRepository,
	replyRepo *repository.ReplyRepository,
	reactionRepo *repository.ReactionRepository,
) *EntryService {
	return &EntryService{
		EntryRepo:    entryRepo,
		ReplyRepo:    replyRepo,
		ReactionRepo: reactionRepo,
	}
}

type EntryRequest struct {
	Content   string `json:"content" form:"content"`
	Emotion   string `json:"emotion" form:"emotion"`
	DiaryDate string `json:"diaryDate" form:"diaryDate"` // 2006-01-02
}

type EntryUpdateRequest struct {
	Content   *string `json:"content"`
	Emotion   *string `json:"emotion"`
	DiaryDate *string `json:"diaryDate"`
}

type ReactionCounts struct {
	Heart int `json:"heart"`
	Happy int `json:"happy"`
	Sad   int `json:"sad"`
	Angry int `json:"angry"`
}

type EntryResponse struct {
	ID              string         `json:"id"`
	Content         string         `json:"content"`
	AuthorID        string         `json:"authorId,omitempty"`
	Emotion         string         `json:"emotion,omitempty"`
	ImageURL        string         `json:"imageUrl,omitempty"`
	DiaryDate       *time.Time     `json:"diaryDate,omitempty"`
	RepostOf        *string        `json:"repostOf,omitempty"`
	Hearts          int            `json:"hearts"`
	RepliesCount    int            `json:"repliesCount"`
	ReactionsCounts ReactionCounts `json:"reactionsCounts"`
	CreatedAt       time.Time      `json:"createdAt"`
}

type ReplyRequest struct {
	Content string `json:"content"`
}

type ReplyResponse struct {
	ID        string    `json:"id"`
	EntryID   string    `json:"entryId"`
	AuthorID  string    `json:"authorId,omitempty"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

type ReactResponse struct {
	ID              string         `json:"id"`
	Type            string         `json:"type"`
	Hearts          int            `json:"hearts"`
	ReactionsCounts ReactionCounts `json:"reactionsCounts"`
}

func toEntryResponse(e *model.Entry) EntryResponse {
	return EntryResponse{
		ID:           e.ID,
		Content:      e.Content,
		AuthorID:     e.AuthorID,
		Emotion:      e.Emotion,
		ImageURL:     e.ImageURL,
		DiaryDate:    e.DiaryDate,
		RepostOf:     e.RepostOf,
		Hearts:       e.ReactionsHeart, // hearts 是 reactionsCounts.heart 的旧字段别名
		RepliesCount: e.RepliesCount,
		ReactionsCounts: ReactionCounts{
			Heart: e.ReactionsHeart,
			Happy: e.ReactionsHappy,
			Sad:   e.ReactionsSad,
			Angry: e.ReactionsAngry,
		},
		CreatedAt: e.CreatedAt,
	}
}

func toEntryResponses(entries []model.Entry) []EntryResponse {
	responses := make([]EntryResponse, len(entries))
	for i := range entries {
		responses[i] = toEntryResponse(&entries[i])
	}
	return responses
}

func parseDiaryDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	d, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, util.ErrInvalidBody
	}
	return &d, nil
}

func (s *EntryService) CreateEntry(authorID string, req EntryRequest, imageURL string) (*EntryResponse, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, util.ErrEmptyContent
	}
	// 长度上限按字符数算，不是字节数
	if utf8.RuneCountInString(content) > util.MaxEntryContentLen {
		return nil, util.ErrContentTooLong
	}

	diaryDate, err := parseDiaryDate(req.DiaryDate)
	if err != nil {
		return nil, err
	}

	entry := &model.Entry{
		Content:   content,
		AuthorID:  authorID,
		Emotion:   req.Emotion,
		ImageURL:  imageURL,
		DiaryDate: diaryDate,
	}
	if err := s.EntryRepo.Create(entry); err != nil {
		return nil, err
	}

	resp := toEntryResponse(entry)
	return &resp, nil
}

func (s *EntryService) GetEntry(id string) (*EntryResponse, error) {
	entry, err := s.EntryRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	resp := toEntryResponse(entry)
	return &resp, nil
}

// GetFeed mode=latest 倒序分页；recommended 按热度；random 均匀抽样（不分页）
func (s *EntryService) GetFeed(mode string, page, limit int) ([]EntryResponse, error) {
	offset := (page - 1) * limit

	var (
		entries []model.Entry
		err     error
	)
	switch mode {
	case "latest":
		entries, err = s.EntryRepo.FindLatest(offset, limit)
	case "recommended":
		entries, err = s.EntryRepo.FindRecommended(offset, limit)
	default:
		entries, err = s.EntryRepo.FindRandom(limit)
	}
	if err != nil {
		return nil, err
	}
	return toEntryResponses(entries), nil
}

// UpdateEntry 仅作者可改，部分字段 patch
func (s *EntryService) UpdateEntry(id, requesterID string, req EntryUpdateRequest) (*EntryResponse, error) {
	entry, err := s.EntryRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if entry.AuthorID == "" || entry.AuthorID != requesterID {
		return nil, util.ErrPermissionDenied
	}

	updates := map[string]interface{}{}
	if req.Content != nil {
		content := strings.TrimSpace(*req.Content)
		if content == "" {
			return nil, util.ErrEmptyContent
		}
		if utf8.RuneCountInString(content) > util.MaxEntryContentLen {
			return nil, util.ErrContentTooLong
		}
		updates["content"] = content
	}
	if req.Emotion != nil {
		updates["emotion"] = *req.Emotion
	}
	if req.DiaryDate != nil {
		diaryDate, err := parseDiaryDate(*req.DiaryDate)
		if err != nil {
			return nil, err
		}
		updates["diary_date"] = diaryDate
	}

	if len(updates) > 0 {
		if err := s.EntryRepo.Update(id, updates); err != nil {
			return nil, err
		}
	}
	return s.GetEntry(id)
}

func (s *EntryService) DeleteEntry(id, requesterID string) error {
	entry, err := s.EntryRepo.FindByID(id)
	if err != nil {
		return err
	}
	if entry.AuthorID == "" || entry.AuthorID != requesterID {
		return util.ErrPermissionDenied
	}
	return s.EntryRepo.Delete(id)
}

func (s *EntryService) Repost(id, requesterID string) (*EntryResponse, error) {
	original, err := s.EntryRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	repost, err := s.EntryRepo.CreateRepost(original, requesterID)
	if err != nil {
		return nil, err
	}
	resp := toEntryResponse(repost)
	return &resp, nil
}

func (s *EntryService) React(entryID, userID, reactionType string) (*ReactResponse, error) {
	if !model.ValidReactionType(reactionType) {
		return nil, util.ErrInvalidReaction
	}

	entry, err := s.ReactionRepo.React(entryID, userID, model.ReactionType(reactionType))
	if err != nil {
		return nil, err
	}

	monitoring.ReactionCounter.WithLabelValues(reactionType, "react").Inc()

	return &ReactResponse{
		ID:     entry.ID,
		Type:   reactionType,
		Hearts: entry.ReactionsHeart,
		ReactionsCounts: ReactionCounts{
			Heart: entry.ReactionsHeart,
			Happy: entry.ReactionsHappy,
			Sad:   entry.ReactionsSad,
			Angry: entry.ReactionsAngry,
		},
	}, nil
}

// Heart 旧版点赞接口，固定类型走同一个状态机
func (s *EntryService) Heart(entryID, userID string) (*ReactResponse, error) {
	return s.React(entryID, userID, string(model.ReactionHeart))
}

func (s *EntryService) CreateReply(entryID, authorID string, req ReplyRequest) (*ReplyResponse, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, util.ErrEmptyContent
	}
	if utf8.RuneCountInString(content) > util.MaxReplyContentLen {
		return nil, util.ErrContentTooLong
	}

	reply := &model.Reply{
		EntryID:  entryID,
		AuthorID: authorID,
		Content:  content,
	}
	if err := s.ReplyRepo.Create(reply); err != nil {
		return nil, err
	}

	return &ReplyResponse{
		ID:        reply.ID,
		EntryID:   reply.EntryID,
		AuthorID:  reply.AuthorID,
		Content:   reply.Content,
		CreatedAt: reply.CreatedAt,
	}, nil
}

func (s *EntryService) GetReplies(entryID string, page, limit int) ([]ReplyResponse, error) {
	offset := (page - 1) * limit
	replies, err := s.ReplyRepo.FindByEntry(entryID, offset, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]ReplyResponse, len(replies))
	for i, reply := range replies {
		responses[i] = ReplyResponse{
			ID:        reply.ID,
			EntryID:   reply.EntryID,
			AuthorID:  reply.AuthorID,
			Content:   reply.Content,
			CreatedAt: reply.CreatedAt,
		}
	}
	return responses, nil
}
