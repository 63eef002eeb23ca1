package cooked_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"timeline-service/internal/migrate"
	"timeline-service/internal/shared/db"
)

func openTestDB(t *testing.T) *db.Store {
	t.Helper()
	store, err := db.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, migrate.AutoMigrateAll(store))
	return store
}
