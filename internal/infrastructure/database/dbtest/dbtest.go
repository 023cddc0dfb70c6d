// Package dbtest opens throwaway SQLite databases with the production schema
// applied, for integration tests.
package dbtest

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/infrastructure/database"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/infrastructure/migration"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/config"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/logger"
)

// New returns a migrated in-memory database that is closed with the test.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	cfg := &config.DatabaseConfig{Driver: config.DriverSQLite, DSN: "file::memory:"}
	db, err := database.Open(cfg)
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	require.NoError(t, migration.NewGooseStrategy(config.DriverSQLite, logger.NewNop()).Migrate(db))
	return db
}

// SeedUser inserts a user row directly and returns its id.
func SeedUser(t testing.TB, db *gorm.DB, username, role string) uint {
	t.Helper()
	row := map[string]any{"username": username, "password": "x", "role": role}
	require.NoError(t, db.Table("users").Create(row).Error)
	return lastID(t, db, "users", "username = ?", username)
}

// SeedCompany inserts a company row directly and returns its id.
func SeedCompany(t testing.TB, db *gorm.DB, name, contactEmail string) uint {
	t.Helper()
	row := map[string]any{"name": name, "contact_email": contactEmail}
	require.NoError(t, db.Table("companies").Create(row).Error)
	return lastID(t, db, "companies", "name = ?", name)
}

func lastID(t testing.TB, db *gorm.DB, table, where string, arg any) uint {
	t.Helper()
	var id uint
	require.NoError(t, db.Table(table).Select("id").Where(where, arg).Scan(&id).Error)
	require.NotZero(t, id)
	return id
}
