package repository

import (
	"diary_backend/pkg/database"
	"diary_backend/pkg/logger"
	"testing"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupTestDB 每个用例一个独立的内存库，迁移与线上同一份
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	logger.Log = zap.NewNop()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("打开内存数据库失败: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("数据库迁移失败: %v", err)
	}
	return db
}
