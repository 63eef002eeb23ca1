package cooked

import (
	"context"
	"fmt"
	"log"
	"time"

	"timeline-service/internal/kafka"
	"timeline-service/internal/notification"
	"timeline-service/internal/post"
	"timeline-service/internal/shared/httpx"
	"timeline-service/internal/user"
)

const (
	defaultLimit = 5
	maxLimit     = 50
)

type View struct {
	ID        string    `json:"id"`
	Rating    *int      `json:"rating"`
	Note      *string   `json:"note"`
	CreatedAt time.Time `json:"createdAt"`
	User      *user.Ref `json:"user"`
}

type Page struct {
	Cooked     []View `json:"cooked"`
	HasMore    bool   `json:"hasMore"`
	NextOffset int    `json:"nextOffset"`
}

type LogReq struct {
	PostID   string  `json:"-"`
	UserID   string  `json:"-"`
	UserName string  `json:"-"`
	Rating   *int    `json:"rating"`
	Note     *string `json:"note"`
}

type Service interface {
	Create(ctx context.Context, familySpaceID string, in LogReq) (*CookedEvent, error)
	Stats(ctx context.Context, postID string) (Stats, error)
	Page(ctx context.Context, postID, familySpaceID string, limit, offset int) (Page, error)
}

type service struct {
	repo   Repository
	posts  post.Repository
	writer kafka.Writer
}

func NewService(r Repository, posts post.Repository, writer kafka.Writer) Service {
	return &service{repo: r, posts: posts, writer: writer}
}

// Create records an "I cooked this" event and publishes it to the activity
// topic. Ratings are optional but bounded when present.
func (s *service) Create(ctx context.Context, familySpaceID string, in LogReq) (*CookedEvent, error) {
	if in.Rating != nil && (*in.Rating < 1 || *in.Rating > 5) {
		return nil, fmt.Errorf("rating must be between 1 and 5")
	}

	p, err := s.posts.FindByID(ctx, in.PostID, familySpaceID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, httpx.ErrNotFound
	}

	e := &CookedEvent{
		PostID: in.PostID,
		UserID: in.UserID,
		Rating: in.Rating,
		Note:   in.Note,
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}

	if s.writer != nil {
		ev := notification.ActivityEvent{
			Type:          notification.ActivityCookedLogged,
			FamilySpaceID: familySpaceID,
			ActorID:       in.UserID,
			ActorName:     in.UserName,
			PostID:        p.ID,
			PostTitle:     p.Title,
			CreatedAt:     time.Now().UTC(),
		}
		if err := s.writer.WriteJSON(ctx, familySpaceID, ev); err != nil {
			log.Printf("cooked: publish activity: %v", err)
		}
	}
	return e, nil
}

func (s *service) Stats(ctx context.Context, postID string) (Stats, error) {
	return s.repo.Stats(ctx, postID)
}

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

	views := make([]View, 0, len(rows))
	for _, e := range rows {
		v := View{
			ID:        e.ID,
			Rating:    e.Rating,
			Note:      e.Note,
			CreatedAt: e.CreatedAt,
		}
		if e.User != nil {
			ref := e.User.Ref()
			v.User = &ref
		}
		views = append(views, v)
	}

	return Page{
		Cooked:     views,
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
