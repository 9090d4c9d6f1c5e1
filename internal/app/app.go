package app

import (
	"context"
	"diary_backend/internal/config"
	"diary_backend/internal/controller"
	"diary_backend/internal/repository"
	"diary_backend/internal/service"
	"diary_backend/pkg/database"
	"diary_backend/pkg/logger"
	"diary_backend/pkg/monitoring"
	"diary_backend/pkg/security"
	"diary_backend/pkg/tracing"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
}

type repositories struct {
	entry    *repository.EntryRepository
	reply    *repository.ReplyRepository
	reaction *repository.ReactionRepository
	social   *repository.SocialRepository
	message  *repository.MessageRepository
	user     *repository.UserRepository
}

type services struct {
	entry        *service.EntryService
	social       *service.SocialService
	message      *service.MessageService
	auth         *service.AuthService
	user         *service.UserService
	notification *service.NotificationService
	storage      *service.StorageService
}

type controllers struct {
	entry   *controller.EntryController
	social  *controller.SocialController
	message *controller.MessageController
	auth    *controller.AuthController
	profile *controller.ProfileController
	notify  *controller.NotifyController
	health  *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB, rdb *redis.Client, cfg *config.Config) *repositories {
	feedTTL := time.Duration(cfg.Feed.CacheTTLSeconds) * time.Second
	return &repositories{
		entry:    repository.NewEntryRepository(db, rdb, feedTTL),
		reply:    repository.NewReplyRepository(db),
		reaction: repository.NewReactionRepository(db),
		social:   repository.NewSocialRepository(db),
		message:  repository.NewMessageRepository(db),
		user:     repository.NewUserRepository(db),
	}
}

// initServices 推送协作方在这里显式注入，不做包级全局初始化
func (a *App) initServices(repos *repositories, cfg *config.Config, notifier service.Notifier) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.entry = service.NewEntryService(repos.entry, repos.reply, repos.reaction)
	s.social = service.NewSocialService(repos.social)
	s.message = service.NewMessageService(repos.message)
	s.user = service.NewUserService(repos.user, repos.entry)
	s.notification = service.NewNotificationService(repos.user, notifier)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		entry:   controller.NewEntryController(s.entry, s.storage),
		social:  controller.NewSocialController(s.social),
		message: controller.NewMessageController(s.message),
		auth:    controller.NewAuthController(s.auth),
		profile: controller.NewProfileController(s.user, s.storage),
		notify:  controller.NewNotifyController(s.notification),
		health:  controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config, notifier service.Notifier) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		// Redis 只服务于推荐流缓存，连不上时降级为直查数据库
		logger.Log.Warn("Redis unavailable, feed cache disabled", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db, rdb, cfg)
	services := app.initServices(repos, cfg, notifier)
	controllers := app.initControllers(services, db)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("diary-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
