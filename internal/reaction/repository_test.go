package reaction_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timeline-service/internal/post"
	"timeline-service/internal/reaction"
	"timeline-service/internal/user"
)

func TestListForPostAscendingOrder(t *testing.T) {
	store := openTestDB(t)
	ctx := context.Background()

	users := user.NewRepository(store)
	posts := post.NewRepository(store)
	reactions := reaction.NewRepository(store)

	alice := user.User{ID: "u1", FamilySpaceID: "fam", Name: "Alice"}
	ben := user.User{ID: "u2", FamilySpaceID: "fam", Name: "Ben"}
	require.NoError(t, users.Create(ctx, &alice))
	require.NoError(t, users.Create(ctx, &ben))

	p := post.Post{ID: "p1", FamilySpaceID: "fam", AuthorID: alice.ID, Title: "Stew"}
	require.NoError(t, posts.Create(ctx, &p))

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	// Inserted newest-first to prove the query re-orders ascending.
	require.NoError(t, reactions.Create(ctx, &reaction.Reaction{
		TargetType: reaction.TargetPost, TargetID: p.ID, PostID: &p.ID,
		UserID: ben.ID, Emoji: "❤️", CreatedAt: base.Add(2 * time.Hour),
	}))
	require.NoError(t, reactions.Create(ctx, &reaction.Reaction{
		TargetType: reaction.TargetPost, TargetID: p.ID, PostID: &p.ID,
		UserID: alice.ID, Emoji: "👍", CreatedAt: base,
	}))

	got, err := reactions.ListForPost(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "👍", got[0].Emoji)
	assert.Equal(t, "❤️", got[1].Emoji)
	require.NotNil(t, got[0].User)
	assert.Equal(t, "Alice", got[0].User.Name)
}

func TestListRecentOnPostsExcludesCommentReactions(t *testing.T) {
	store := openTestDB(t)
	ctx := context.Background()

	users := user.NewRepository(store)
	posts := post.NewRepository(store)
	reactions := reaction.NewRepository(store)

	alice := user.User{ID: "u1", FamilySpaceID: "fam", Name: "Alice"}
	require.NoError(t, users.Create(ctx, &alice))
	p := post.Post{ID: "p1", FamilySpaceID: "fam", AuthorID: alice.ID, Title: "Stew"}
	require.NoError(t, posts.Create(ctx, &p))

	require.NoError(t, reactions.Create(ctx, &reaction.Reaction{
		TargetType: reaction.TargetPost, TargetID: p.ID, PostID: &p.ID,
		UserID: alice.ID, Emoji: "👍", CreatedAt: time.Now(),
	}))
	require.NoError(t, reactions.Create(ctx, &reaction.Reaction{
		TargetType: reaction.TargetComment, TargetID: "c1", PostID: &p.ID,
		UserID: alice.ID, Emoji: "❤️", CreatedAt: time.Now(),
	}))

	got, err := reactions.ListRecentOnPosts(ctx, "fam", 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "👍", got[0].Emoji)
}

func TestToggleCreatesThenRemoves(t *testing.T) {
	store := openTestDB(t)
	ctx := context.Background()

	users := user.NewRepository(store)
	posts := post.NewRepository(store)
	repo := reaction.NewRepository(store)
	svc := reaction.NewService(repo, nil)

	alice := user.User{ID: "u1", FamilySpaceID: "fam", Name: "Alice"}
	require.NoError(t, users.Create(ctx, &alice))
	p := post.Post{ID: "p1", FamilySpaceID: "fam", AuthorID: alice.ID, Title: "Stew"}
	require.NoError(t, posts.Create(ctx, &p))

	in := reaction.ToggleReq{TargetType: reaction.TargetPost, TargetID: p.ID, Emoji: "👍"}

	reacted, err := svc.Toggle(ctx, "fam", alice.ID, in)
	require.NoError(t, err)
	assert.True(t, reacted)

	summaries, err := svc.ForPost(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, 1, summaries[0].Count)

	reacted, err = svc.Toggle(ctx, "fam", alice.ID, in)
	require.NoError(t, err)
	assert.False(t, reacted)

	summaries, err = svc.ForPost(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, summaries)
}

func TestToggleRejectsForeignFamilyTarget(t *testing.T) {
	store := openTestDB(t)
	ctx := context.Background()

	users := user.NewRepository(store)
	posts := post.NewRepository(store)
	repo := reaction.NewRepository(store)
	svc := reaction.NewService(repo, nil)

	alice := user.User{ID: "u1", FamilySpaceID: "fam", Name: "Alice"}
	require.NoError(t, users.Create(ctx, &alice))
	p := post.Post{ID: "p1", FamilySpaceID: "other-fam", AuthorID: alice.ID, Title: "Stew"}
	require.NoError(t, posts.Create(ctx, &p))

	_, err := svc.Toggle(ctx, "fam", alice.ID, reaction.ToggleReq{
		TargetType: reaction.TargetPost, TargetID: p.ID, Emoji: "👍",
	})
	assert.Error(t, err)
}
