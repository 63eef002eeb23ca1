package timeline

import (
	"context"
	"fmt"
	"log"

	"timeline-service/internal/post"
	"timeline-service/internal/user"
)

// Each adapter reads one storage collection, capped at sinceBound rows, and
// maps the rows to events of a single type. Rows whose post or actor cannot
// be resolved are logged and dropped, never emitted half-formed.

func (s *service) postCreatedEvents(ctx context.Context, familySpaceID string, sinceBound int) ([]Event, error) {
	posts, err := s.posts.ListRecent(ctx, familySpaceID, sinceBound)
	if err != nil {
		return nil, err
	}
	out := make([]Event, 0, len(posts))
	for _, p := range posts {
		if p.Author == nil {
			log.Printf("timeline: dropping post %s: author missing", p.ID)
			continue
		}
		out = append(out, Event{
			ID:         fmt.Sprintf("post-%s", p.ID),
			Type:       PostCreated,
			Timestamp:  p.CreatedAt,
			Actor:      p.Author.Ref(),
			Post:       p.Ref(),
			ActionText: actionText(PostCreated),
		})
	}
	return out, nil
}

func (s *service) postEditedEvents(ctx context.Context, familySpaceID string, sinceBound int) ([]Event, error) {
	posts, err := s.posts.ListRecentlyEdited(ctx, familySpaceID, sinceBound)
	if err != nil {
		return nil, err
	}
	out := make([]Event, 0, len(posts))
	for _, p := range posts {
		ev, ok := DeriveEditEvent(p)
		if !ok {
			continue
		}
		out = append(out, ev)
	}
	return out, nil
}

// DeriveEditEvent synthesizes a post_edited event from a post's mutable edit
// fields. There is no stored edit log: a post edited at some instant after
// its creation yields exactly one event at the last-edit instant. The actor
// is the editor when known, else the author; with neither the post is
// skipped, since an edit nobody can be credited with cannot be rendered.
func DeriveEditEvent(p post.Post) (Event, bool) {
	if p.LastEditAt == nil || !p.LastEditAt.After(p.CreatedAt) {
		return Event{}, false
	}
	var actor *user.User
	switch {
	case p.Editor != nil:
		actor = p.Editor
	case p.Author != nil:
		actor = p.Author
	default:
		log.Printf("timeline: dropping edit of post %s: no attributable actor", p.ID)
		return Event{}, false
	}
	return Event{
		ID:         fmt.Sprintf("edit-%s-%d", p.ID, p.LastEditAt.UnixMilli()),
		Type:       PostEdited,
		Timestamp:  *p.LastEditAt,
		Actor:      actor.Ref(),
		Post:       p.Ref(),
		ActionText: actionText(PostEdited),
		Edit:       &EditPayload{Note: p.LastEditNote},
	}, true
}

func (s *service) commentEvents(ctx context.Context, familySpaceID string, sinceBound int) ([]Event, error) {
	comments, err := s.comments.ListRecent(ctx, familySpaceID, sinceBound)
	if err != nil {
		return nil, err
	}
	out := make([]Event, 0, len(comments))
	for _, c := range comments {
		if c.Post == nil || c.Post.ID == "" {
			log.Printf("timeline: dropping comment %s: post missing", c.ID)
			continue
		}
		if c.Author == nil {
			log.Printf("timeline: dropping comment %s: author missing", c.ID)
			continue
		}
		out = append(out, Event{
			ID:         fmt.Sprintf("comment-%s", c.ID),
			Type:       CommentAdded,
			Timestamp:  c.CreatedAt,
			Actor:      c.Author.Ref(),
			Post:       c.Post.Ref(),
			ActionText: actionText(CommentAdded),
			Comment:    &CommentPayload{ID: c.ID, Text: c.Text},
		})
	}
	return out, nil
}

func (s *service) reactionEvents(ctx context.Context, familySpaceID string, sinceBound int) ([]Event, error) {
	// Comment reactions stay out of the top-level feed; they surface only in
	// comment pages.
	reactions, err := s.reactions.ListRecentOnPosts(ctx, familySpaceID, sinceBound)
	if err != nil {
		return nil, err
	}
	out := make([]Event, 0, len(reactions))
	for _, rec := range reactions {
		if rec.Post == nil || rec.Post.ID == "" {
			log.Printf("timeline: dropping reaction %s: post missing", rec.ID)
			continue
		}
		if rec.User == nil {
			log.Printf("timeline: dropping reaction %s: user missing", rec.ID)
			continue
		}
		out = append(out, Event{
			ID:         fmt.Sprintf("reaction-%s", rec.ID),
			Type:       ReactionAdded,
			Timestamp:  rec.CreatedAt,
			Actor:      rec.User.Ref(),
			Post:       rec.Post.Ref(),
			ActionText: actionText(ReactionAdded),
			Reaction:   &ReactionPayload{Emoji: rec.Emoji},
		})
	}
	return out, nil
}

func (s *service) cookedEvents(ctx context.Context, familySpaceID string, sinceBound int) ([]Event, error) {
	events, err := s.cooked.ListRecent(ctx, familySpaceID, sinceBound)
	if err != nil {
		return nil, err
	}
	out := make([]Event, 0, len(events))
	for _, e := range events {
		if e.Post == nil || e.Post.ID == "" {
			log.Printf("timeline: dropping cooked event %s: post missing", e.ID)
			continue
		}
		if e.User == nil {
			log.Printf("timeline: dropping cooked event %s: user missing", e.ID)
			continue
		}
		out = append(out, Event{
			ID:         fmt.Sprintf("cooked-%s", e.ID),
			Type:       CookedLogged,
			Timestamp:  e.CreatedAt,
			Actor:      e.User.Ref(),
			Post:       e.Post.Ref(),
			ActionText: actionText(CookedLogged),
			Cooked:     &CookedPayload{Rating: e.Rating, Note: e.Note},
		})
	}
	return out, nil
}
