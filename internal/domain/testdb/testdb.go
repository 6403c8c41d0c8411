// Package testdb opens a throwaway in-memory database with the full schema
// migrated, for service-level tests.
package testdb

import (
	"testing"

	"artcatalog/internal/domain/admins"
	"artcatalog/internal/domain/catalog"
	"artcatalog/internal/domain/inquiries"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func Open(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// one connection, otherwise each pooled conn gets its own empty :memory: db
	sqlDB.SetMaxOpenConns(1)

	// sqlite leaves FK enforcement off; turn it on so the constraints behave
	// like they do on Postgres
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)

	require.NoError(t, db.AutoMigrate(
		&catalog.Artist{},
		&catalog.Artwork{},
		&inquiries.Inquiry{},
		&admins.AdminUser{},
		&admins.AdminSession{},
	))

	return db
}
