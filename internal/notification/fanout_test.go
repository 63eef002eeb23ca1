package notification_test

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timeline-service/internal/migrate"
	"timeline-service/internal/notification"
	"timeline-service/internal/shared/db"
	"timeline-service/internal/user"
)

type captured struct {
	UserID string
	Kind   notification.Kind
	Title  string
	Body   string
	Meta   map[string]any
}

type captureService struct{ pushed []captured }

func (c *captureService) Create(ctx context.Context, userID string, kind notification.Kind, title, body string, meta map[string]any) (notification.Notification, error) {
	c.pushed = append(c.pushed, captured{UserID: userID, Kind: kind, Title: title, Body: body, Meta: meta})
	return notification.Notification{UserID: userID, Kind: kind, Title: title, Body: body}, nil
}

func (c *captureService) List(ctx context.Context, userID string, limit int64) ([]notification.Notification, error) {
	return nil, nil
}

func (c *captureService) MarkRead(ctx context.Context, userID, notifID string) error {
	return nil
}

func newFanout(t *testing.T) (*notification.Fanout, *captureService, user.Repository) {
	t.Helper()
	store, err := db.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, migrate.AutoMigrateAll(store))
	users := user.NewRepository(store)
	svc := &captureService{}
	return notification.NewFanout(svc, users), svc, users
}

func TestFanoutSkipsActor(t *testing.T) {
	fanout, svc, users := newFanout(t)
	ctx := context.Background()

	require.NoError(t, users.Create(ctx, &user.User{ID: "u1", FamilySpaceID: "fam1", Name: "Rosa"}))
	require.NoError(t, users.Create(ctx, &user.User{ID: "u2", FamilySpaceID: "fam1", Name: "Leo"}))
	require.NoError(t, users.Create(ctx, &user.User{ID: "u3", FamilySpaceID: "fam1", Name: "Mia"}))
	require.NoError(t, users.Create(ctx, &user.User{ID: "u9", FamilySpaceID: "fam2", Name: "Stranger"}))

	payload, err := json.Marshal(notification.ActivityEvent{
		Type:          notification.ActivityPostCreated,
		FamilySpaceID: "fam1",
		ActorID:       "u1",
		ActorName:     "Rosa",
		PostID:        "p1",
		PostTitle:     "Sunday Gravy",
	})
	require.NoError(t, err)

	require.NoError(t, fanout.Handle(ctx, "activity.events", nil, payload))

	require.Len(t, svc.pushed, 2)
	got := []string{svc.pushed[0].UserID, svc.pushed[1].UserID}
	assert.ElementsMatch(t, []string{"u2", "u3"}, got)
	assert.Equal(t, notification.KindPost, svc.pushed[0].Kind)
	assert.Equal(t, `Rosa posted "Sunday Gravy"`, svc.pushed[0].Body)
	assert.Equal(t, "p1", svc.pushed[0].Meta["post_id"])
}

func TestFanoutRendersReaction(t *testing.T) {
	fanout, svc, users := newFanout(t)
	ctx := context.Background()

	require.NoError(t, users.Create(ctx, &user.User{ID: "u1", FamilySpaceID: "fam1", Name: "Rosa"}))
	require.NoError(t, users.Create(ctx, &user.User{ID: "u2", FamilySpaceID: "fam1", Name: "Leo"}))

	payload, err := json.Marshal(notification.ActivityEvent{
		Type:          notification.ActivityReactionAdded,
		FamilySpaceID: "fam1",
		ActorID:       "u2",
		ActorName:     "Leo",
		PostID:        "p1",
		Emoji:         "🔥",
	})
	require.NoError(t, err)

	require.NoError(t, fanout.Handle(ctx, "activity.events", nil, payload))

	require.Len(t, svc.pushed, 1)
	assert.Equal(t, "u1", svc.pushed[0].UserID)
	assert.Equal(t, notification.KindReaction, svc.pushed[0].Kind)
	assert.Equal(t, "Leo reacted 🔥", svc.pushed[0].Body)
}

func TestFanoutResolvesActorNameFromRoster(t *testing.T) {
	fanout, svc, users := newFanout(t)
	ctx := context.Background()

	require.NoError(t, users.Create(ctx, &user.User{ID: "u1", FamilySpaceID: "fam1", Name: "Rosa"}))
	require.NoError(t, users.Create(ctx, &user.User{ID: "u2", FamilySpaceID: "fam1", Name: "Leo"}))

	// Write handlers only know the actor's ID, so events can arrive nameless.
	payload, err := json.Marshal(notification.ActivityEvent{
		Type:          notification.ActivityCookedLogged,
		FamilySpaceID: "fam1",
		ActorID:       "u2",
		PostID:        "p1",
		PostTitle:     "Sunday Gravy",
	})
	require.NoError(t, err)

	require.NoError(t, fanout.Handle(ctx, "activity.events", nil, payload))

	require.Len(t, svc.pushed, 1)
	assert.Equal(t, "u1", svc.pushed[0].UserID)
	assert.Equal(t, notification.KindCooked, svc.pushed[0].Kind)
	assert.Equal(t, `Leo cooked "Sunday Gravy"`, svc.pushed[0].Body)
}

func TestFanoutIgnoresMalformedPayload(t *testing.T) {
	fanout, svc, _ := newFanout(t)

	require.NoError(t, fanout.Handle(context.Background(), "activity.events", nil, []byte("{not json")))
	assert.Empty(t, svc.pushed)
}
