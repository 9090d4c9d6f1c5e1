package controller

import (
	"diary_backend/internal/service"
	"diary_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type NotifyController struct {
	NotificationService *service.NotificationService
}

func NewNotifyController(notificationService *service.NotificationService) *NotifyController {
	return &NotifyController{NotificationService: notificationService}
}

// @Summary 登记推送令牌
// @Description 幂等：同一身份重复登记同一令牌只保留一条
// @Tags 通知
// @Accept json
// @Produce json
// @Param body body service.TokenRequest true "设备令牌"
// @Router /api/notify/token [post]
func (c *NotifyController) RegisterToken(ctx *gin.Context) {
	var req service.TokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, util.CodeInvalidBody)
		return
	}

	if err := c.NotificationService.RegisterToken(identityID(ctx), req); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"registered": true})
}
