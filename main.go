// @title 匿名日记后端 API
// @version 1.0
// @description 匿名日记社区的后端服务器。

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"diary_backend/internal/app"
	"diary_backend/internal/config"
	"diary_backend/pkg/configwatcher"
	"diary_backend/pkg/logger"
	"flag"
	"log"

	"go.uber.org/zap"
)

func main() {
	watchConfig := flag.Bool("watch-config", false, "监听配置文件变更并热加载")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg, nil)
	defer logger.Log.Sync()

	if *watchConfig {
		go configwatcher.WatchConfig("configs/config.yaml", func(newCfg *config.Config) {
			// 仅覆盖运行期可安全替换的部分，端口和数据库连接需重启生效
			application.Config.CORS = newCfg.CORS
			application.Config.RateLimit = newCfg.RateLimit
			application.Config.Feed = newCfg.Feed
			logger.Log.Info("Config reloaded", zap.Strings("allowed_origins", newCfg.CORS.AllowedOrigins))
		})
	}

	application.Run()
}
