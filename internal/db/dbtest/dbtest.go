// Package dbtest opens isolated in-memory databases for tests.
package dbtest

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"employee-tracker/internal/db"
)

// Open returns a fresh schema-bootstrapped database private to t. The pool is
// limited to one connection so the in-memory database survives between calls.
func Open(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := db.SQLiteDSN(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))

	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := database.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.EnsureSchema(context.Background(), database))
	return database
}

// FailOn makes every raw statement whose SQL starts with prefix fail with err.
func FailOn(t *testing.T, database *gorm.DB, prefix string, err error) {
	t.Helper()

	name := "dbtest:fail_" + strings.ReplaceAll(strings.ToLower(prefix), " ", "_")
	require.NoError(t, database.Callback().Raw().Before("gorm:raw").Register(name, func(tx *gorm.DB) {
		if strings.HasPrefix(strings.TrimSpace(tx.Statement.SQL.String()), prefix) {
			_ = tx.AddError(err)
		}
	}))
}
