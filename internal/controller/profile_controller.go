package controller

import (
	"diary_backend/internal/model"
	"diary_backend/internal/service"
	"diary_backend/internal/util"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	UserService    *service.UserService
	StorageService *service.StorageService
}

func NewProfileController(userService *service.UserService, storageService *service.StorageService) *ProfileController {
	return &ProfileController{
		UserService:    userService,
		StorageService: storageService,
	}
}

// @Summary 我的资料
// @Tags 资料
// @Produce json
// @Router /api/profile/me [get]
func (c *ProfileController) GetMe(ctx *gin.Context) {
	profile, err := c.UserService.GetProfile(identityID(ctx))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, profile)
}

// @Summary 更新资料
// @Description 部分更新 avatarUrl/themeColor，可上传头像文件
// @Tags 资料
// @Accept json,mpfd
// @Produce json
// @Router /api/profile/me [post]
func (c *ProfileController) UpdateMe(ctx *gin.Context) {
	var req service.ProfileUpdateRequest

	avatarURL := ""
	if strings.HasPrefix(ctx.ContentType(), "multipart/") {
		if err := ctx.ShouldBind(&req); err != nil {
			util.BadRequest(ctx, util.CodeInvalidBody)
			return
		}
		if file, err := ctx.FormFile("avatar"); err == nil {
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

			filename := "avatars/" + model.GenerateUUID() + filepath.Ext(file.Filename)
			url, err := c.StorageService.Upload(ctx.Request.Context(), filename, src, file.Size, file.Header.Get("Content-Type"))
			if err != nil {
				util.LogInternalError(ctx, err)
				return
			}
			avatarURL = url
		}
	} else {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			util.BadRequest(ctx, util.CodeInvalidBody)
			return
		}
	}

	profile, err := c.UserService.UpdateProfile(identityID(ctx), req, avatarURL)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, profile)
}

// @Summary 我发布的帖子
// @Tags 资料
// @Produce json
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(20)
// @Router /api/profile/my-entries [get]
func (c *ProfileController) GetMyEntries(ctx *gin.Context) {
	page := util.ClampPage(ctx.DefaultQuery("page", "1"))
	limit := util.ClampLimit(ctx.DefaultQuery("limit", "20"))

	items, total, err := c.UserService.GetMyEntries(identityID(ctx), page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"page": page, "limit": limit, "total": total, "items": items})
}

// @Summary 我反应过的帖子
// @Tags 资料
// @Produce json
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(20)
// @Router /api/profile/my-hearts [get]
func (c *ProfileController) GetMyHearts(ctx *gin.Context) {
	page := util.ClampPage(ctx.DefaultQuery("page", "1"))
	limit := util.ClampLimit(ctx.DefaultQuery("limit", "20"))

	items, total, err := c.UserService.GetMyHearts(identityID(ctx), page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"page": page, "limit": limit, "total": total, "items": items})
}
