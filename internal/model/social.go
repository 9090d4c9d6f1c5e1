package model

import "time"

// Follow 关注关系（有向边）
type Follow struct {
	FollowerID  string    `gorm:"primaryKey;size:64" json:"followerId"`
	FollowingID string    `gorm:"primaryKey;size:64" json:"followingId"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (Follow) TableName() string {
	return "follows"
}

const (
	FriendRequestPending  = "pending"
	FriendRequestAccepted = "accepted"
	FriendRequestRejected = "rejected"
)

// FriendRequest 好友申请，accepted/rejected 为终态
type FriendRequest struct {
	UUIDBase
	SenderID   string `gorm:"uniqueIndex:idx_sender_receiver;size:64;not null" json:"senderId"`
	ReceiverID string `gorm:"uniqueIndex:idx_sender_receiver;size:64;not null" json:"receiverId"`
	Status     string `gorm:"size:10;default:'pending'" json:"status"`
	Message    string `gorm:"size:255" json:"message,omitempty"`
}

func (FriendRequest) TableName() string {
	return "friend_requests"
}
