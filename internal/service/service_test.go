package service

import (
	"diary_backend/internal/repository"
	"diary_backend/pkg/database"
	"diary_backend/pkg/logger"
	"testing"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

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

func newEntryService(db *gorm.DB) *EntryService {
	return NewEntryService(
		repository.NewEntryRepository(db, nil, 0),
		repository.NewReplyRepository(db),
		repository.NewReactionRepository(db),
	)
}
