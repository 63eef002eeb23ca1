package postdetail

import (
	"context"
	"time"

	"timeline-service/internal/comment"
	"timeline-service/internal/cooked"
	"timeline-service/internal/post"
	"timeline-service/internal/reaction"
	"timeline-service/internal/user"
)

type PageMeta struct {
	HasMore    bool `json:"hasMore"`
	NextOffset int  `json:"nextOffset"`
}

// Detail is the assembled post read: snapshot plus every aggregate the
// detail view renders in one response.
type Detail struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Caption      *string    `json:"caption"`
	MainPhotoURL *string    `json:"mainPhotoUrl"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
	Author       *user.Ref  `json:"author"`
	Editor       *user.Ref  `json:"editor"`
	LastEditAt   *time.Time `json:"lastEditAt"`
	LastEditNote *string    `json:"lastEditNote"`

	ReactionSummary []reaction.Summary `json:"reactionSummary"`
	CookedStats     cooked.Stats       `json:"cookedStats"`

	Comments     []comment.View `json:"comments"`
	CommentsPage PageMeta       `json:"commentsPage"`

	RecentCooked     []cooked.View `json:"recentCooked"`
	RecentCookedPage PageMeta      `json:"recentCookedPage"`
}

type Opts struct {
	CommentLimit  int
	CommentOffset int
	CookedLimit   int
	CookedOffset  int
}

type Service interface {
	Detail(ctx context.Context, postID, familySpaceID string, opts Opts) (*Detail, error)
}

// service composes the post snapshot with the comment, reaction and cooked
// aggregates. It lives outside package post so the model packages can embed
// post.Post without a cycle.
type service struct {
	posts     post.Repository
	comments  comment.Service
	cookedSvc cooked.Service
	reactions reaction.Service
}

func NewService(posts post.Repository, comments comment.Service, cookedSvc cooked.Service, reactions reaction.Service) Service {
	return &service{
		posts:     posts,
		comments:  comments,
		cookedSvc: cookedSvc,
		reactions: reactions,
	}
}

// Detail returns nil when the post does not exist in the family space.
func (s *service) Detail(ctx context.Context, postID, familySpaceID string, opts Opts) (*Detail, error) {
	p, err := s.posts.FindByID(ctx, postID, familySpaceID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}

	summary, err := s.reactions.ForPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	stats, err := s.cookedSvc.Stats(ctx, postID)
	if err != nil {
		return nil, err
	}
	commentPage, err := s.comments.Page(ctx, postID, familySpaceID, opts.CommentLimit, opts.CommentOffset)
	if err != nil {
		return nil, err
	}
	cookedPage, err := s.cookedSvc.Page(ctx, postID, familySpaceID, opts.CookedLimit, opts.CookedOffset)
	if err != nil {
		return nil, err
	}

	d := &Detail{
		ID:           p.ID,
		Title:        p.Title,
		Caption:      p.Caption,
		MainPhotoURL: p.MainPhotoURL,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
		LastEditAt:   p.LastEditAt,
		LastEditNote: p.LastEditNote,

		ReactionSummary: summary,
		CookedStats:     stats,

		Comments:     commentPage.Comments,
		CommentsPage: PageMeta{HasMore: commentPage.HasMore, NextOffset: commentPage.NextOffset},

		RecentCooked:     cookedPage.Cooked,
		RecentCookedPage: PageMeta{HasMore: cookedPage.HasMore, NextOffset: cookedPage.NextOffset},
	}
	if p.Author != nil {
		ref := p.Author.Ref()
		d.Author = &ref
	}
	if p.Editor != nil {
		ref := p.Editor.Ref()
		d.Editor = &ref
	}
	return d, nil
}
