package app

import (
	"diary_backend/internal/config"
	"diary_backend/internal/middleware"
	"diary_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	router.GET("/healthz", c.health.HealthCheck)
	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	auth := middleware.AuthMiddleware(cfg)
	tryAuth := middleware.TryAuthMiddleware(cfg)

	api := router.Group("/api")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/anonymous", c.auth.Anonymous)
			authGroup.POST("/register", c.auth.Register)
			authGroup.POST("/login", c.auth.Login)
		}

		entries := api.Group("/entries")
		{
			// 发帖与回帖允许游客，带令牌则归属到该身份
			entries.POST("", tryAuth, c.entry.CreateEntry)
			entries.GET("", c.entry.GetFeed)
			entries.GET("/:id", c.entry.GetEntry)
			entries.PUT("/:id", auth, c.entry.UpdateEntry)
			entries.DELETE("/:id", auth, c.entry.DeleteEntry)
			entries.POST("/:id/repost", auth, c.entry.Repost)
			entries.POST("/:id/react", auth, c.entry.React)
			entries.POST("/:id/heart", auth, c.entry.Heart)
			entries.POST("/:id/replies", tryAuth, c.entry.CreateReply)
			entries.GET("/:id/replies", c.entry.GetReplies)
		}

		social := api.Group("/social", auth)
		{
			social.POST("/follow/:targetId", c.social.Follow)
			social.DELETE("/follow/:targetId", c.social.Unfollow)
			social.GET("/following", c.social.GetFollowing)
			social.GET("/followers", c.social.GetFollowers)
			social.POST("/friends/request/:toId", c.social.RequestFriend)
			social.POST("/friends/respond/:requestId", c.social.RespondFriend)
			social.GET("/friends/requests", c.social.GetPendingRequests)
		}

		messages := api.Group("/messages", auth)
		{
			messages.GET("", c.message.ListConversations)
			messages.POST("/:toId", c.message.Send)
			messages.GET("/:peerId", c.message.GetConversation)
		}

		profile := api.Group("/profile", auth)
		{
			profile.GET("/me", c.profile.GetMe)
			profile.POST("/me", c.profile.UpdateMe)
			profile.GET("/my-entries", c.profile.GetMyEntries)
			profile.GET("/my-hearts", c.profile.GetMyHearts)
		}

		notify := api.Group("/notify", auth)
		{
			notify.POST("/token", c.notify.RegisterToken)
		}
	}
}
