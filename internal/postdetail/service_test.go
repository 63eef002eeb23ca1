package postdetail_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timeline-service/internal/comment"
	"timeline-service/internal/cooked"
	"timeline-service/internal/migrate"
	"timeline-service/internal/post"
	"timeline-service/internal/postdetail"
	"timeline-service/internal/reaction"
	"timeline-service/internal/shared/db"
	"timeline-service/internal/user"
)

func openTestDB(t *testing.T) *db.Store {
	t.Helper()
	store, err := db.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, migrate.AutoMigrateAll(store))
	return store
}

func newService(store *db.Store) (postdetail.Service, post.Repository) {
	postRepo := post.NewRepository(store)
	reactionSvc := reaction.NewService(reaction.NewRepository(store), nil)
	commentSvc := comment.NewService(comment.NewRepository(store), reactionSvc, postRepo, nil)
	cookedSvc := cooked.NewService(cooked.NewRepository(store), postRepo, nil)
	return postdetail.NewService(postRepo, commentSvc, cookedSvc, reactionSvc), postRepo
}

func TestDetailNotFound(t *testing.T) {
	store := openTestDB(t)
	svc, _ := newService(store)

	d, err := svc.Detail(context.Background(), "nope", "fam1", postdetail.Opts{})
	require.NoError(t, err)
	assert.Nil(t, d)
}

func TestDetailWrongFamilySpace(t *testing.T) {
	store := openTestDB(t)
	svc, repo := newService(store)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &post.Post{ID: "p1", FamilySpaceID: "fam1", AuthorID: "u1", Title: "Pierogi"}))

	d, err := svc.Detail(ctx, "p1", "fam2", postdetail.Opts{})
	require.NoError(t, err)
	assert.Nil(t, d)
}

func TestDetailComposesAggregates(t *testing.T) {
	store := openTestDB(t)
	svc, repo := newService(store)
	ctx := context.Background()
	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	users := user.NewRepository(store)
	require.NoError(t, users.Create(ctx, &user.User{ID: "u1", FamilySpaceID: "fam1", Name: "Rosa"}))
	require.NoError(t, users.Create(ctx, &user.User{ID: "u2", FamilySpaceID: "fam1", Name: "Leo"}))
	require.NoError(t, repo.Create(ctx, &post.Post{
		ID: "p1", FamilySpaceID: "fam1", AuthorID: "u1", Title: "Sunday Gravy", CreatedAt: base,
	}))

	comments := comment.NewRepository(store)
	for i := 0; i < 3; i++ {
		require.NoError(t, comments.Create(ctx, &comment.Comment{
			ID: fmt.Sprintf("c%d", i), PostID: "p1", AuthorID: "u2",
			Text: fmt.Sprintf("comment %d", i), CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	reactions := reaction.NewRepository(store)
	postID := "p1"
	require.NoError(t, reactions.Create(ctx, &reaction.Reaction{
		ID: "r1", TargetType: reaction.TargetPost, TargetID: "p1", PostID: &postID,
		UserID: "u2", Emoji: "❤️", CreatedAt: base.Add(time.Minute),
	}))

	cookedRepo := cooked.NewRepository(store)
	rating := 4
	require.NoError(t, cookedRepo.Create(ctx, &cooked.CookedEvent{
		ID: "ck1", PostID: "p1", UserID: "u2", Rating: &rating, CreatedAt: base.Add(2 * time.Minute),
	}))

	d, err := svc.Detail(ctx, "p1", "fam1", postdetail.Opts{CommentLimit: 2, CookedLimit: 5})
	require.NoError(t, err)
	require.NotNil(t, d)

	assert.Equal(t, "Sunday Gravy", d.Title)
	require.NotNil(t, d.Author)
	assert.Equal(t, "Rosa", d.Author.Name)
	assert.Nil(t, d.Editor)

	require.Len(t, d.ReactionSummary, 1)
	assert.Equal(t, "❤️", d.ReactionSummary[0].Emoji)
	assert.Equal(t, 1, d.ReactionSummary[0].Count)

	assert.Equal(t, int64(1), d.CookedStats.TimesCooked)
	require.NotNil(t, d.CookedStats.AverageRating)
	assert.InDelta(t, 4.0, *d.CookedStats.AverageRating, 0.001)

	// Comment page holds the newest window, flipped chronological.
	require.Len(t, d.Comments, 2)
	assert.Equal(t, "c1", d.Comments[0].ID)
	assert.Equal(t, "c2", d.Comments[1].ID)
	assert.True(t, d.CommentsPage.HasMore)
	assert.Equal(t, 2, d.CommentsPage.NextOffset)

	require.Len(t, d.RecentCooked, 1)
	assert.False(t, d.RecentCookedPage.HasMore)
	assert.Equal(t, 1, d.RecentCookedPage.NextOffset)
}
