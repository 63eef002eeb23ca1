package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"timeline-service/internal/user"
)

// Fanout turns one activity event into a notification per family member,
// skipping the actor.
type Fanout struct {
	svc   Service
	users user.Repository
}

func NewFanout(svc Service, users user.Repository) *Fanout {
	return &Fanout{svc: svc, users: users}
}

// Handle is wired as the Kafka consumer callback.
func (f *Fanout) Handle(ctx context.Context, topic string, key, value []byte) error {
	var ev ActivityEvent
	if err := json.Unmarshal(value, &ev); err != nil {
		log.Printf("notification: bad activity payload: %v", err)
		return nil
	}
	if ev.FamilySpaceID == "" {
		return nil
	}

	members, err := f.users.ListByFamily(ctx, ev.FamilySpaceID)
	if err != nil {
		return err
	}

	// Write paths usually only know the actor's ID from the gateway header;
	// the name comes from the roster fetched here anyway.
	actor := ev.ActorName
	if actor == "" {
		for _, m := range members {
			if m.ID == ev.ActorID {
				actor = m.Name
				break
			}
		}
	}

	kind, title, body := render(ev, actor)
	for _, m := range members {
		if m.ID == ev.ActorID {
			continue
		}
		meta := map[string]any{"post_id": ev.PostID}
		if _, err := f.svc.Create(ctx, m.ID, kind, title, body, meta); err != nil {
			log.Printf("notification: push to %s: %v", m.ID, err)
		}
	}
	return nil
}

func render(ev ActivityEvent, actor string) (Kind, string, string) {
	if actor == "" {
		actor = "Someone"
	}
	switch ev.Type {
	case ActivityPostCreated:
		return KindPost, "New recipe", fmt.Sprintf("%s posted %q", actor, ev.PostTitle)
	case ActivityPostEdited:
		return KindEdit, "Recipe updated", fmt.Sprintf("%s updated %q", actor, ev.PostTitle)
	case ActivityCommentAdded:
		return KindComment, "New comment", fmt.Sprintf("%s commented: %s", actor, ev.Snippet)
	case ActivityReactionAdded:
		return KindReaction, "New reaction", fmt.Sprintf("%s reacted %s", actor, ev.Emoji)
	case ActivityCookedLogged:
		return KindCooked, "Cooked!", fmt.Sprintf("%s cooked %q", actor, ev.PostTitle)
	default:
		return KindPost, "Family activity", fmt.Sprintf("%s shared an update", actor)
	}
}
