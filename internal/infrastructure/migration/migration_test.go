package migration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/infrastructure/database"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/infrastructure/migration"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/config"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/logger"
)

var schemaTables = []string{"users", "companies", "assets", "tickets", "ticket_assets", "ticket_updates"}

func openMemoryDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(&config.DatabaseConfig{Driver: config.DriverSQLite, DSN: "file::memory:"})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func TestGooseStrategy_UpStatusDown(t *testing.T) {
	db := openMemoryDB(t)
	strategy := migration.NewGooseStrategy(config.DriverSQLite, logger.NewNop())

	require.NoError(t, strategy.Migrate(db))
	for _, table := range schemaTables {
		assert.True(t, db.Migrator().HasTable(table), table)
	}

	version, err := strategy.GetVersion(db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	// Running again is a no-op.
	require.NoError(t, strategy.Migrate(db))

	status, err := strategy.Status(db)
	require.NoError(t, err)
	require.NotEmpty(t, status)
	assert.Equal(t, "00001_init_schema.sql", status[0].Source)
	assert.True(t, status[0].Applied)

	require.NoError(t, strategy.MigrateDown(db, 1))
	assert.False(t, db.Migrator().HasTable("tickets"))

	status, err = strategy.Status(db)
	require.NoError(t, err)
	assert.False(t, status[0].Applied)
}

func TestManager_AutoMigrate(t *testing.T) {
	db := openMemoryDB(t)
	manager := migration.NewManager(config.DriverSQLite, true, logger.NewNop())

	assert.Equal(t, "gorm_auto_migrate", manager.GetStrategy().GetName())
	require.NoError(t, manager.Migrate(db))

	for _, table := range schemaTables {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}

func TestNewManager_DefaultsToGoose(t *testing.T) {
	manager := migration.NewManager(config.DriverMySQL, false, logger.NewNop())
	assert.Equal(t, "goose", manager.GetStrategy().GetName())
}
