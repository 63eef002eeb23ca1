package timeline_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timeline-service/internal/post"
	"timeline-service/internal/timeline"
	"timeline-service/internal/user"
)

func editedPost(editedAt *time.Time) post.Post {
	created := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	return post.Post{
		ID:         "p1",
		Title:      "Sunday Gravy",
		AuthorID:   "u1",
		Author:     &user.User{ID: "u1", Name: "Rosa"},
		CreatedAt:  created,
		LastEditAt: editedAt,
	}
}

func TestDeriveEditEventEditorIsActor(t *testing.T) {
	editedAt := time.Date(2026, 3, 11, 9, 30, 0, 0, time.UTC)
	p := editedPost(&editedAt)
	p.Editor = &user.User{ID: "u2", Name: "Leo"}

	ev, ok := timeline.DeriveEditEvent(p)
	require.True(t, ok)
	assert.Equal(t, timeline.PostEdited, ev.Type)
	assert.Equal(t, fmt.Sprintf("edit-p1-%d", editedAt.UnixMilli()), ev.ID)
	assert.Equal(t, "u2", ev.Actor.ID)
	assert.Equal(t, editedAt, ev.Timestamp)
	assert.Equal(t, "updated", ev.ActionText)
	require.NotNil(t, ev.Edit)
}

func TestDeriveEditEventFallsBackToAuthor(t *testing.T) {
	editedAt := time.Date(2026, 3, 11, 9, 30, 0, 0, time.UTC)
	p := editedPost(&editedAt)

	ev, ok := timeline.DeriveEditEvent(p)
	require.True(t, ok)
	assert.Equal(t, "u1", ev.Actor.ID)
}

func TestDeriveEditEventNoActor(t *testing.T) {
	editedAt := time.Date(2026, 3, 11, 9, 30, 0, 0, time.UTC)
	p := editedPost(&editedAt)
	p.Author = nil

	_, ok := timeline.DeriveEditEvent(p)
	assert.False(t, ok)
}

func TestDeriveEditEventNeverEdited(t *testing.T) {
	p := editedPost(nil)
	_, ok := timeline.DeriveEditEvent(p)
	assert.False(t, ok)

	sameAsCreation := p.CreatedAt
	p.LastEditAt = &sameAsCreation
	_, ok = timeline.DeriveEditEvent(p)
	assert.False(t, ok)
}
