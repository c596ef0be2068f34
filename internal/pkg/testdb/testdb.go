// Package testdb opens throwaway SQLite databases for service-level tests.
// The production store is MySQL; queries under test stay dialect-portable
// (LOWER(...) LIKE, plain joins, no MySQL JSON functions) so SQLite is a
// faithful stand-in without a running server.
package testdb

import (
	"path/filepath"
	"testing"

	"github.com/hoshgeldi/core/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open creates a file-backed SQLite database in a test temp dir with the
// full schema migrated. A file (not :memory:) so concurrent access in
// race-tolerance tests goes through the driver's locking.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db") + "?_busy_timeout=5000"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&models.UserModel{},
		&models.UserSession{},
		&models.ProfileModel{},
		&models.CategoryModel{},
		&models.TagModel{},
		&models.PostModel{},
		&models.CommentModel{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}
