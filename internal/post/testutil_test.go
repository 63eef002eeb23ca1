package post_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"timeline-service/internal/migrate"
	"timeline-service/internal/notification"
	"timeline-service/internal/shared/db"
)

func openTestDB(t *testing.T) *db.Store {
	t.Helper()
	store, err := db.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, migrate.AutoMigrateAll(store))
	return store
}

// captureWriter records activity events instead of producing to a broker.
type captureWriter struct {
	events []notification.ActivityEvent
}

func (w *captureWriter) WriteJSON(ctx context.Context, key string, v any) error {
	w.events = append(w.events, v.(notification.ActivityEvent))
	return nil
}

func (w *captureWriter) Close() error { return nil }
