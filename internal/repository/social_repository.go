package repository

import (
	"diary_backend/internal/model"

	"gorm.io/gorm"
)

type SocialRepository struct {
	DB *gorm.DB
}

func NewSocialRepository(db *gorm.DB) *SocialRepository {
	return &SocialRepository{DB: db}
}

// CreateFollow 幂等：重复关注不报错也不产生第二条边
func (r *SocialRepository) CreateFollow(followerID, followingID string) error {
	follow := model.Follow{FollowerID: followerID, FollowingID: followingID}
	return r.DB.
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		FirstOrCreate(&follow).Error
}

// DeleteFollow 幂等：边不存在时静默成功
func (r *SocialRepository) DeleteFollow(followerID, followingID string) error {
	return r.DB.
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&model.Follow{}).Error
}

func (r *SocialRepository) GetFollowing(followerID string) ([]model.Follow, error) {
	var edges []model.Follow
	err := r.DB.Where("follower_id = ?", followerID).
		Order("created_at DESC").
		Find(&edges).Error
	return edges, err
}

func (r *SocialRepository) GetFollowers(followingID string) ([]model.Follow, error) {
	var edges []model.Follow
	err := r.DB.Where("following_id = ?", followingID).
		Order("created_at DESC").
		Find(&edges).Error
	return edges, err
}

func (r *SocialRepository) IsFollowing(followerID, followingID string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Follow{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error
	return count > 0, err
}

// CreateOrGetRequest 幂等 upsert：同一对 (sender,receiver) 已有申请时返回现存记录
func (r *SocialRepository) CreateOrGetRequest(req *model.FriendRequest) error {
	return r.DB.
		Where("sender_id = ? AND receiver_id = ?", req.SenderID, req.ReceiverID).
		FirstOrCreate(req).Error
}

func (r *SocialRepository) GetRequest(id string) (*model.FriendRequest, error) {
	var req model.FriendRequest
	err := r.DB.First(&req, "id = ?", id).Error
	return &req, err
}

func (r *SocialRepository) UpdateRequestStatus(id string, status string) error {
	return r.DB.Model(&model.FriendRequest{}).Where("id = ?", id).
		Update("status", status).Error
}

func (r *SocialRepository) GetPendingRequests(receiverID string) ([]model.FriendRequest, error) {
	var reqs []model.FriendRequest
	err := r.DB.
		Where("receiver_id = ? AND status = ?", receiverID, model.FriendRequestPending).
		Order("created_at DESC").
		Find(&reqs).Error
	return reqs, err
}
