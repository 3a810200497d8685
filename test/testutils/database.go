package testutils

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	gormRepo "github.com/platewise/platewise/internal/infrastructure/persistence/gorm"
)

var dbCounter atomic.Int64

// NewTestDatabase opens a private in-memory SQLite database with the
// full schema migrated. Each call gets its own database so tests never
// share state.
func NewTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", dbCounter.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err, "should open in-memory database")

	require.NoError(t, gormRepo.AutoMigrate(db), "should migrate schema")

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}
