package util

import (
	"diary_backend/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// 错误响应统一为 { "error": "<CODE>" }，状态码与语义一一对应。
// 成功响应由各接口自行决定结构。

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

func Fail(c *gin.Context, status int, code string) {
	c.JSON(status, gin.H{"error": code})
}

func BadRequest(c *gin.Context, code string) {
	Fail(c, http.StatusBadRequest, code)
}

func Unauthorized(c *gin.Context) {
	Fail(c, http.StatusUnauthorized, CodeUnauthorized)
}

func Forbidden(c *gin.Context) {
	Fail(c, http.StatusForbidden, CodeForbidden)
}

func NotFound(c *gin.Context) {
	Fail(c, http.StatusNotFound, CodeNotFound)
}

func Conflict(c *gin.Context, code string) {
	Fail(c, http.StatusConflict, code)
}

func InternalServerError(c *gin.Context) {
	Fail(c, http.StatusInternalServerError, CodeInternalError)
}

// LogInternalError 记录细节到日志，对客户端只暴露通用错误码
func LogInternalError(c *gin.Context, err error) {
	logger.Log.Error("Internal server error",
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	InternalServerError(c)
}
