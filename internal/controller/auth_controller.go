package controller

import (
	"diary_backend/internal/service"
	"diary_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// @Summary 签发匿名身份
// @Description 返回随机 anonId 与签名令牌，签发时不落库
// @Tags 认证
// @Produce json
// @Success 201 {object} service.AuthResponse
// @Router /api/auth/anonymous [post]
func (c *AuthController) Anonymous(ctx *gin.Context) {
	result, err := c.AuthService.IssueAnonymous()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, result)
}

// @Summary 邮箱注册
// @Tags 认证
// @Accept json
// @Produce json
// @Param body body service.RegisterRequest true "注册信息"
// @Router /api/auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req service.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, util.CodeInvalidBody)
		return
	}

	result, err := c.AuthService.Register(req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Created(ctx, result)
}

// @Summary 邮箱登录
// @Description 返回与匿名签发相同格式的令牌，两种身份下游可互换
// @Tags 认证
// @Accept json
// @Produce json
// @Param body body service.LoginRequest true "登录信息"
// @Router /api/auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req service.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, util.CodeInvalidBody)
		return
	}

	result, err := c.AuthService.Login(req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, result)
}
