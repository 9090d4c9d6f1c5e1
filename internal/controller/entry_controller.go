package controller

import (
	"diary_backend/internal/model"
	"diary_backend/internal/service"
	"diary_backend/internal/util"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

type EntryController struct {
	EntryService   *service.EntryService
	StorageService *service.StorageService
}

func NewEntryController(entryService *service.EntryService, storageService *service.StorageService) *EntryController {
	return &EntryController{
		EntryService:   entryService,
		StorageService: storageService,
	}
}

func identityID(ctx *gin.Context) string {
	claims := util.GetIdentityFromContext(ctx)
	if claims == nil {
		return ""
	}
	return claims.AnonID
}

// @Summary 发布帖子
// @Description 发布一条日记帖子，可附带一张配图
// @Tags 帖子
// @Accept json,mpfd
// @Produce json
// @Param entry body service.EntryRequest true "帖子内容"
// @Success 201 {object} service.EntryResponse
// @Router /api/entries [post]
func (c *EntryController) CreateEntry(ctx *gin.Context) {
	var req service.EntryRequest

	imageURL := ""
	if strings.HasPrefix(ctx.ContentType(), "multipart/") {
		if err := ctx.ShouldBind(&req); err != nil {
			util.BadRequest(ctx, util.CodeInvalidBody)
			return
		}
		if file, err := ctx.FormFile("image"); err == nil {
			if !strings.HasPrefix(file.Header.Get("Content-Type"), util.MimeImage) {
				util.BadRequest(ctx, util.CodeInvalidBody)
				return
			}
			src, err := file.Open()
			if err != nil {
				util.LogInternalError(ctx, err)
				return
			}
			defer src.Close()

			filename := "entries/" + model.GenerateUUID() + filepath.Ext(file.Filename)
			url, err := c.StorageService.Upload(ctx.Request.Context(), filename, src, file.Size, file.Header.Get("Content-Type"))
			if err != nil {
				util.LogInternalError(ctx, err)
				return
			}
			imageURL = url
		}
	} else {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			util.BadRequest(ctx, util.CodeInvalidBody)
			return
		}
	}

	entry, err := c.EntryService.CreateEntry(identityID(ctx), req, imageURL)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Created(ctx, entry)
}

// @Summary 帖子流
// @Description mode=latest|recommended|random，random 不分页
// @Tags 帖子
// @Produce json
// @Param mode query string false "排序模式" Enums(latest, recommended, random) default(random)
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(20)
// @Router /api/entries [get]
func (c *EntryController) GetFeed(ctx *gin.Context) {
	mode := ctx.DefaultQuery("mode", "random")
	page := util.ClampPage(ctx.DefaultQuery("page", "1"))
	limit := util.ClampLimit(ctx.DefaultQuery("limit", "20"))

	items, err := c.EntryService.GetFeed(mode, page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	resp := gin.H{"mode": mode, "limit": limit, "items": items}
	if mode == "latest" || mode == "recommended" {
		resp["page"] = page
	}
	util.Success(ctx, resp)
}

// @Summary 帖子详情
// @Tags 帖子
// @Produce json
// @Param id path string true "帖子ID"
// @Router /api/entries/{id} [get]
func (c *EntryController) GetEntry(ctx *gin.Context) {
	id := ctx.Param("id")
	if !util.IsValidID(id) {
		util.BadRequest(ctx, util.CodeInvalidID)
		return
	}

	entry, err := c.EntryService.GetEntry(id)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, entry)
}

// @Summary 修改帖子
// @Description 仅作者可改 content/emotion/diaryDate
// @Tags 帖子
// @Accept json
// @Produce json
// @Param id path string true "帖子ID"
// @Router /api/entries/{id} [put]
func (c *EntryController) UpdateEntry(ctx *gin.Context) {
	id := ctx.Param("id")
	if !util.IsValidID(id) {
		util.BadRequest(ctx, util.CodeInvalidID)
		return
	}

	var req service.EntryUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, util.CodeInvalidBody)
		return
	}

	entry, err := c.EntryService.UpdateEntry(id, identityID(ctx), req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, entry)
}

// @Summary 删除帖子
// @Description 仅作者可删，级联清理回复与反应
// @Tags 帖子
// @Produce json
// @Param id path string true "帖子ID"
// @Router /api/entries/{id} [delete]
func (c *EntryController) DeleteEntry(ctx *gin.Context) {
	id := ctx.Param("id")
	if !util.IsValidID(id) {
		util.BadRequest(ctx, util.CodeInvalidID)
		return
	}

	if err := c.EntryService.DeleteEntry(id, identityID(ctx)); err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"id": id, "deleted": true})
}

// @Summary 转发帖子
// @Description 每个身份全局只能转发一次，不能转发自己的帖子
// @Tags 帖子
// @Produce json
// @Param id path string true "帖子ID"
// @Router /api/entries/{id}/repost [post]
func (c *EntryController) Repost(ctx *gin.Context) {
	id := ctx.Param("id")
	if !util.IsValidID(id) {
		util.BadRequest(ctx, util.CodeInvalidID)
		return
	}

	repost, err := c.EntryService.Repost(id, identityID(ctx))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Created(ctx, repost)
}

// @Summary 对帖子做出反应
// @Description 同类型重复为幂等空操作，换类型原子迁移计数
// @Tags 反应
// @Accept json
// @Produce json
// @Param id path string true "帖子ID"
// @Router /api/entries/{id}/react [post]
func (c *EntryController) React(ctx *gin.Context) {
	id := ctx.Param("id")
	if !util.IsValidID(id) {
		util.BadRequest(ctx, util.CodeInvalidID)
		return
	}

	var req struct {
		Type string `json:"type" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, util.CodeInvalidBody)
		return
	}

	result, err := c.EntryService.React(id, identityID(ctx), req.Type)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// @Summary 点赞（旧版接口）
// @Description heart 类型反应的固定别名
// @Tags 反应
// @Produce json
// @Param id path string true "帖子ID"
// @Router /api/entries/{id}/heart [post]
func (c *EntryController) Heart(ctx *gin.Context) {
	id := ctx.Param("id")
	if !util.IsValidID(id) {
		util.BadRequest(ctx, util.CodeInvalidID)
		return
	}

	result, err := c.EntryService.Heart(id, identityID(ctx))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{
		"id":              result.ID,
		"hearts":          result.Hearts,
		"reactionsCounts": result.ReactionsCounts,
	})
}

// @Summary 发表回复
// @Tags 回复
// @Accept json
// @Produce json
// @Param id path string true "帖子ID"
// @Router /api/entries/{id}/replies [post]
func (c *EntryController) CreateReply(ctx *gin.Context) {
	id := ctx.Param("id")
	if !util.IsValidID(id) {
		util.BadRequest(ctx, util.CodeInvalidID)
		return
	}

	var req service.ReplyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, util.CodeInvalidBody)
		return
	}

	reply, err := c.EntryService.CreateReply(id, identityID(ctx), req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Created(ctx, reply)
}

// @Summary 回复列表
// @Tags 回复
// @Produce json
// @Param id path string true "帖子ID"
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(20)
// @Router /api/entries/{id}/replies [get]
func (c *EntryController) GetReplies(ctx *gin.Context) {
	id := ctx.Param("id")
	if !util.IsValidID(id) {
		util.BadRequest(ctx, util.CodeInvalidID)
		return
	}

	page := util.ClampPage(ctx.DefaultQuery("page", "1"))
	limit := util.ClampLimit(ctx.DefaultQuery("limit", "20"))

	items, err := c.EntryService.GetReplies(id, page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"page": page, "limit": limit, "items": items})
}
