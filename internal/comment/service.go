package comment

import (
	"context"
	"log"
	"time"

	"timeline-service/internal/kafka"
	"timeline-service/internal/notification"
	"timeline-service/internal/post"
	"timeline-service/internal/reaction"
	"timeline-service/internal/shared/httpx"
	"timeline-service/internal/user"
)

const (
	defaultLimit = 20
	maxLimit     = 50

	// snippetRunes bounds the comment excerpt carried in activity events.
	snippetRunes = 80
)

type View struct {
	ID        string             `json:"id"`
	Text      string             `json:"text"`
	PhotoURL  *string            `json:"photoUrl"`
	CreatedAt time.Time          `json:"createdAt"`
	Author    *user.Ref          `json:"author"`
	Reactions []reaction.Summary `json:"reactions"`
}

type Page struct {
	Comments   []View `json:"comments"`
	HasMore    bool   `json:"hasMore"`
	NextOffset int    `json:"nextOffset"`
}

type CreateReq struct {
	PostID     string  `json:"-"`
	AuthorID   string  `json:"-"`
	AuthorName string  `json:"-"`
	Text       string  `json:"text"`
	PhotoURL   *string `json:"photoUrl"`
}

type Service interface {
	Create(ctx context.Context, familySpaceID string, in CreateReq) (*Comment, error)
	Page(ctx context.Context, postID, familySpaceID string, limit, offset int) (Page, error)
}

type service struct {
	repo      Repository
	reactions reaction.Service
	posts     post.Repository
	writer    kafka.Writer
}

func NewService(r Repository, reactions reaction.Service, posts post.Repository, writer kafka.Writer) Service {
	return &service{repo: r, reactions: reactions, posts: posts, writer: writer}
}

// Create stores the comment after checking the post belongs to the family
// space, then publishes a comment_added activity event.
func (s *service) Create(ctx context.Context, familySpaceID string, in CreateReq) (*Comment, error) {
	p, err := s.posts.FindByID(ctx, in.PostID, familySpaceID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, httpx.ErrNotFound
	}

	c := &Comment{
		PostID:   in.PostID,
		AuthorID: in.AuthorID,
		Text:     in.Text,
		PhotoURL: in.PhotoURL,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	if s.writer != nil {
		ev := notification.ActivityEvent{
			Type:          notification.ActivityCommentAdded,
			FamilySpaceID: familySpaceID,
			ActorID:       in.AuthorID,
			ActorName:     in.AuthorName,
			PostID:        p.ID,
			PostTitle:     p.Title,
			Snippet:       snippet(in.Text),
			CreatedAt:     time.Now().UTC(),
		}
		if err := s.writer.WriteJSON(ctx, familySpaceID, ev); err != nil {
			log.Printf("comment: publish activity: %v", err)
		}
	}
	return c, nil
}

func snippet(s string) string {
	r := []rune(s)
	if len(r) <= snippetRunes {
		return s
	}
	return string(r[:snippetRunes]) + "..."
}

// Page returns one window of a post's comment thread. The window is fetched
// newest-first but handed back in chronological order: the page picks the
// most recent comments, the reader reads them top to bottom.
func (s *service) Page(ctx context.Context, postID, familySpaceID string, limit, offset int) (Page, error) {
	limit = clampLimit(limit, defaultLimit, maxLimit)
	if offset < 0 {
		offset = 0
	}

	rows, err := s.repo.ListWindow(ctx, postID, familySpaceID, limit+1, offset)
	if err != nil {
		return Page{}, err
	}
	hasMore := len(rows) > limit
	if hasMore {
		rows = rows[:limit]
	}

	ids := make([]string, len(rows))
	for i, c := range rows {
		ids[i] = c.ID
	}
	summaries, err := s.reactions.ForComments(ctx, ids)
	if err != nil {
		return Page{}, err
	}

	views := make([]View, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		c := rows[i]
		v := View{
			ID:        c.ID,
			Text:      c.Text,
			PhotoURL:  c.PhotoURL,
			CreatedAt: c.CreatedAt,
			Reactions: summaries[c.ID],
		}
		if v.Reactions == nil {
			v.Reactions = []reaction.Summary{}
		}
		if c.Author != nil {
			ref := c.Author.Ref()
			v.Author = &ref
		}
		views = append(views, v)
	}

	return Page{
		Comments:   views,
		HasMore:    hasMore,
		NextOffset: offset + len(views),
	}, nil
}

func clampLimit(v, def, max int) int {
	if v == 0 {
		return def
	}
	if v < 1 {
		return 1
	}
	if v > max {
		return max
	}
	return v
}
