package comment

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"timeline-service/internal/shared/db"
)

type Repository interface {
	Create(ctx context.Context, c *Comment) error

	// ListWindow returns up to "take" comments of one post, newest first.
	// The id tie-break keeps same-instant rows in a stable order.
	ListWindow(ctx context.Context, postID, familySpaceID string, take, offset int) ([]Comment, error)

	// ListRecent feeds the timeline: comments across the whole family space,
	// newest first, joined to their posts.
	ListRecent(ctx context.Context, familySpaceID string, cap int) ([]Comment, error)
}

type repo struct {
	db *gorm.DB
}

func NewRepository(s *db.Store) Repository {
	return &repo{db: s.Base}
}

func (r *repo) Create(ctx context.Context, c *Comment) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *repo) ListWindow(ctx context.Context, postID, familySpaceID string, take, offset int) ([]Comment, error) {
	var out []Comment
	err := r.db.WithContext(ctx).
		Preload("Author").
		Joins("JOIN posts ON posts.id = comments.post_id").
		Where("comments.post_id = ? AND posts.family_space_id = ?", postID, familySpaceID).
		Order("comments.created_at DESC, comments.id DESC").
		Limit(take).
		Offset(offset).
		Find(&out).Error
	return out, err
}

func (r *repo) ListRecent(ctx context.Context, familySpaceID string, cap int) ([]Comment, error) {
	var out []Comment
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Post").
		Joins("JOIN posts ON posts.id = comments.post_id").
		Where("posts.family_space_id = ?", familySpaceID).
		Order("comments.created_at DESC").
		Limit(cap).
		Find(&out).Error
	return out, err
}
