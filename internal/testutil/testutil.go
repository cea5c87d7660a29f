// Package testutil provides shared helpers for package tests.
package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/ankietdev/api/internal/model"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbSeq atomic.Int64

// OpenDB returns an isolated in-memory database with the full schema applied.
// Each call gets its own named shared-cache database so parallel tests and
// GORM's connection pool see the same data.
func OpenDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", dbSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Survey{}, &model.Question{}, &model.Answer{}))
	return db
}
