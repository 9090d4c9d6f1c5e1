package controller

import (
	"diary_backend/internal/service"
	"diary_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SocialController struct {
	SocialService *service.SocialService
}

func NewSocialController(socialService *service.SocialService) *SocialController {
	return &SocialController{SocialService: socialService}
}

// @Summary 关注
// @Description 幂等创建有向关注边
// @Tags 社交
// @Produce json
// @Param targetId path string true "被关注者"
// @Router /api/social/follow/{targetId} [post]
func (c *SocialController) Follow(ctx *gin.Context) {
	targetID := ctx.Param("targetId")

	if err := c.SocialService.Follow(identityID(ctx), targetID); err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"following": targetID})
}

// @Summary 取消关注
// @Tags 社交
// @Produce json
// @Param targetId path string true "被关注者"
// @Router /api/social/follow/{targetId} [delete]
func (c *SocialController) Unfollow(ctx *gin.Context) {
	targetID := ctx.Param("targetId")

	if err := c.SocialService.Unfollow(identityID(ctx), targetID); err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"unfollowed": targetID})
}

// @Summary 我关注的人
// @Tags 社交
// @Produce json
// @Router /api/social/following [get]
func (c *SocialController) GetFollowing(ctx *gin.Context) {
	items, err := c.SocialService.GetFollowing(identityID(ctx))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"items": items})
}

// @Summary 关注我的人
// @Tags 社交
// @Produce json
// @Router /api/social/followers [get]
func (c *SocialController) GetFollowers(ctx *gin.Context) {
	items, err := c.SocialService.GetFollowers(identityID(ctx))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"items": items})
}

// @Summary 发起好友申请
// @Description 幂等：同一对身份的待处理申请只会有一条
// @Tags 社交
// @Accept json
// @Produce json
// @Param toId path string true "接收方"
// @Router /api/social/friends/request/{toId} [post]
func (c *SocialController) RequestFriend(ctx *gin.Context) {
	toID := ctx.Param("toId")

	var req service.FriendRequestRequest
	// 附言可省略
	ctx.ShouldBindJSON(&req)

	result, err := c.SocialService.RequestFriend(identityID(ctx), toID, req.Message)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Created(ctx, result)
}

// @Summary 处理好友申请
// @Description 仅接收方可处理；已处理的申请不可再改
// @Tags 社交
// @Accept json
// @Produce json
// @Param requestId path string true "申请ID"
// @Router /api/social/friends/respond/{requestId} [post]
func (c *SocialController) RespondFriend(ctx *gin.Context) {
	requestID := ctx.Param("requestId")
	if !util.IsValidID(requestID) {
		util.BadRequest(ctx, util.CodeInvalidID)
		return
	}

	var req service.RespondRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, util.CodeInvalidBody)
		return
	}

	result, err := c.SocialService.Respond(requestID, identityID(ctx), req.Action)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// @Summary 待处理的好友申请
// @Tags 社交
// @Produce json
// @Router /api/social/friends/requests [get]
func (c *SocialController) GetPendingRequests(ctx *gin.Context) {
	items, err := c.SocialService.GetPendingRequests(identityID(ctx))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"items": items})
}
