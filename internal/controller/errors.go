package controller

import (
	"diary_backend/internal/util"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// handleServiceError 服务层错误到 HTTP 状态/错误码的统一映射
func handleServiceError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
	case errors.Is(err, util.ErrInvalidBody):
		util.BadRequest(ctx, util.CodeInvalidBody)
	case errors.Is(err, util.ErrEmptyContent):
		util.BadRequest(ctx, util.CodeEmptyContent)
	case errors.Is(err, util.ErrContentTooLong):
		util.BadRequest(ctx, util.CodeContentTooLong)
	case errors.Is(err, util.ErrInvalidReaction):
		util.BadRequest(ctx, util.CodeInvalidReaction)
	case errors.Is(err, util.ErrInvalidAction):
		util.BadRequest(ctx, util.CodeInvalidAction)
	case errors.Is(err, util.ErrSelfFollow):
		util.BadRequest(ctx, util.CodeSelfFollow)
	case errors.Is(err, util.ErrSelfRequest):
		util.BadRequest(ctx, util.CodeSelfRequest)
	case errors.Is(err, util.ErrSelfMessage):
		util.BadRequest(ctx, util.CodeSelfMessage)
	case errors.Is(err, util.ErrCannotRepostOwn):
		util.BadRequest(ctx, util.CodeCannotRepostOwn)
	case errors.Is(err, util.ErrDuplicateRepost):
		util.Conflict(ctx, util.CodeDuplicateRepost)
	case errors.Is(err, util.ErrEmailRegistered):
		util.Conflict(ctx, util.CodeEmailTaken)
	case errors.Is(err, util.ErrRequestClosed):
		util.Conflict(ctx, util.CodeRequestClosed)
	case errors.Is(err, util.ErrInvalidCredentials):
		util.Fail(ctx, http.StatusUnauthorized, util.CodeInvalidCredentials)
	default:
		util.LogInternalError(ctx, err)
	}
}
