package timeline_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"timeline-service/internal/comment"
	"timeline-service/internal/cooked"
	"timeline-service/internal/migrate"
	"timeline-service/internal/post"
	"timeline-service/internal/reaction"
	"timeline-service/internal/shared/db"
	"timeline-service/internal/timeline"
	"timeline-service/internal/user"
)

type fixture struct {
	store     *db.Store
	users     user.Repository
	posts     post.Repository
	comments  comment.Repository
	reactions reaction.Repository
	cooked    cooked.Repository
	svc       timeline.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store, err := db.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, migrate.AutoMigrateAll(store))

	f := &fixture{
		store:     store,
		users:     user.NewRepository(store),
		posts:     post.NewRepository(store),
		comments:  comment.NewRepository(store),
		reactions: reaction.NewRepository(store),
		cooked:    cooked.NewRepository(store),
	}
	f.svc = timeline.NewService(f.posts, f.comments, f.reactions, f.cooked)
	return f
}

func (f *fixture) seedUser(t *testing.T, ctx context.Context, id, familySpaceID, name string) {
	t.Helper()
	require.NoError(t, f.users.Create(ctx, &user.User{ID: id, FamilySpaceID: familySpaceID, Name: name}))
}

func (f *fixture) seedPost(t *testing.T, ctx context.Context, id, familySpaceID, authorID string, createdAt time.Time) {
	t.Helper()
	require.NoError(t, f.posts.Create(ctx, &post.Post{
		ID:            id,
		FamilySpaceID: familySpaceID,
		Title:         "Recipe " + id,
		AuthorID:      authorID,
		CreatedAt:     createdAt,
	}))
}
