package service

import (
	"diary_backend/internal/model"
	"diary_backend/internal/repository"
	"diary_backend/internal/util"
	"time"
)

type SocialService struct {
	SocialRepo *repository.SocialRepository
}

func NewSocialService(socialRepo *repository.SocialRepository) *SocialService {
	return &SocialService{SocialRepo: socialRepo}
}

type FollowResponse struct {
	FollowerID  string    `json:"followerId"`
	FollowingID string    `json:"followingId"`
	CreatedAt   time.Time `json:"createdAt"`
}

type FriendRequestRequest struct {
	Message string `json:"message"`
}

type FriendRequestResponse struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"senderId"`
	ReceiverID string    `json:"receiverId"`
	Status     string    `json:"status"`
	Message    string    `json:"message,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

type RespondRequest struct {
	Action string `json:"action"` // accept | reject
}

func toFriendRequestResponse(req *model.FriendRequest) FriendRequestResponse {
	return FriendRequestResponse{
		ID:         req.ID,
		SenderID:   req.SenderID,
		ReceiverID: req.ReceiverID,
		Status:     req.Status,
		Message:    req.Message,
		CreatedAt:  req.CreatedAt,
	}
}

func (s *SocialService) Follow(followerID, targetID string) error {
	if followerID == targetID {
		return util.ErrSelfFollow
	}
	return s.SocialRepo.CreateFollow(followerID, targetID)
}

func (s *SocialService) Unfollow(followerID, targetID string) error {
	return s.SocialRepo.DeleteFollow(followerID, targetID)
}

func (s *SocialService) GetFollowing(userID string) ([]FollowResponse, error) {
	edges, err := s.SocialRepo.GetFollowing(userID)
	if err != nil {
		return nil, err
	}
	return toFollowResponses(edges), nil
}

func (s *SocialService) GetFollowers(userID string) ([]FollowResponse, error) {
	edges, err := s.SocialRepo.GetFollowers(userID)
	if err != nil {
		return nil, err
	}
	return toFollowResponses(edges), nil
}

func toFollowResponses(edges []model.Follow) []FollowResponse {
	responses := make([]FollowResponse, len(edges))
	for i, edge := range edges {
		responses[i] = FollowResponse{
			FollowerID:  edge.FollowerID,
			FollowingID: edge.FollowingID,
			CreatedAt:   edge.CreatedAt,
		}
	}
	return responses
}

// RequestFriend 幂等：待处理申请已存在时返回现存记录
func (s *SocialService) RequestFriend(senderID, receiverID, message string) (*FriendRequestResponse, error) {
	if senderID == receiverID {
		return nil, util.ErrSelfRequest
	}

	req := &model.FriendRequest{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Status:     model.FriendRequestPending,
		Message:    message,
	}
	if err := s.SocialRepo.CreateOrGetRequest(req); err != nil {
		return nil, err
	}

	resp := toFriendRequestResponse(req)
	return &resp, nil
}

// Respond 仅接收方可处理；accepted/rejected 为终态，重复处理返回冲突
func (s *SocialService) Respond(requestID, responderID, action string) (*FriendRequestResponse, error) {
	var status string
	switch action {
	case "accept":
		status = model.FriendRequestAccepted
	case "reject":
		status = model.FriendRequestRejected
	default:
		return nil, util.ErrInvalidAction
	}

	req, err := s.SocialRepo.GetRequest(requestID)
	if err != nil {
		return nil, err
	}
	if req.ReceiverID != responderID {
		return nil, util.ErrPermissionDenied
	}
	if req.Status != model.FriendRequestPending {
		return nil, util.ErrRequestClosed
	}

	if err := s.SocialRepo.UpdateRequestStatus(requestID, status); err != nil {
		return nil, err
	}
	req.Status = status

	resp := toFriendRequestResponse(req)
	return &resp, nil
}

func (s *SocialService) GetPendingRequests(receiverID string) ([]FriendRequestResponse, error) {
	reqs, err := s.SocialRepo.GetPendingRequests(receiverID)
	if err != nil {
		return nil, err
	}
	responses := make([]FriendRequestResponse, len(reqs))
	for i := range reqs {
		responses[i] = toFriendRequestResponse(&reqs[i])
	}
	return responses, nil
}
