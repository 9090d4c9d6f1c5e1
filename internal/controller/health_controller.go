package controller

import (
	"diary_backend/internal/util"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthController struct {
	DB *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{DB: db}
}

// @Summary 健康检查
// @Tags 系统
// @Produce json
// @Router /healthz [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	sqlDB, err := c.DB.DB()
	if err != nil {
		util.InternalServerError(ctx)
		return
	}

	if err := sqlDB.Ping(); err != nil {
		util.Fail(ctx, http.StatusServiceUnavailable, "DATABASE_UNAVAILABLE")
		return
	}

	util.Success(ctx, gin.H{
		"ok":        true,
		"timestamp": time.Now().UnixMilli(),
	})
}
