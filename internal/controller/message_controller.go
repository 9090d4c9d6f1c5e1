package controller

import (
	"diary_backend/internal/service"
	"diary_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type MessageController struct {
	MessageService *service.MessageService
}

func NewMessageController(messageService *service.MessageService) *MessageController {
	return &MessageController{MessageService: messageService}
}

// @Summary 发送私信
// @Tags 私信
// @Accept json
// @Produce json
// @Param toId path string true "接收方"
// @Router /api/messages/{toId} [post]
func (c *MessageController) Send(ctx *gin.Context) {
	toID := ctx.Param("toId")

	var req service.MessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, util.CodeInvalidBody)
		return
	}

	msg, err := c.MessageService.Send(identityID(ctx), toID, req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Created(ctx, msg)
}

// @Summary 与某人的会话
// @Description 分页取最新消息，返回按时间正序便于展示
// @Tags 私信
// @Produce json
// @Param peerId path string true "对端"
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(20)
// @Router /api/messages/{peerId} [get]
func (c *MessageController) GetConversation(ctx *gin.Context) {
	peerID := ctx.Param("peerId")
	page := util.ClampPage(ctx.DefaultQuery("page", "1"))
	limit := util.ClampLimit(ctx.DefaultQuery("limit", "20"))

	items, err := c.MessageService.GetConversation(identityID(ctx), peerID, page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"page": page, "limit": limit, "items": items})
}

// @Summary 会话列表
// @Description 每个会话的最新一条消息，附相对自己的对端 id
// @Tags 私信
// @Produce json
// @Router /api/messages [get]
func (c *MessageController) ListConversations(ctx *gin.Context) {
	items, err := c.MessageService.ListConversations(identityID(ctx))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"items": items})
}
