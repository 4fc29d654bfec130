package repository

import (
	"testing"
	"time"

	"artroad/config"
	"artroad/internal/database"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens an in-memory SQLite store. A single pooled connection
// keeps the memory database alive for the whole test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.NewDB(&config.DatabaseConfig{
		Driver:          "sqlite",
		DSN:             ":memory:",
		MaxIdleConns:    1,
		MaxOpenConns:    1,
		ConnMaxLifetime: time.Hour,
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	return db
}

func boolPtr(b bool) *bool { return &b }
