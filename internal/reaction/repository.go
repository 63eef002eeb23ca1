package reaction

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"timeline-service/internal/shared/db"
)

type Repository interface {
	Create(ctx context.Context, rec *Reaction) error
	Delete(ctx context.Context, id string) error
	FindExisting(ctx context.Context, targetType, targetID, userID, emoji string) (*Reaction, error)

	// ListForPost and ListForComments feed the emoji tally and must stay in
	// ascending creation order.
	ListForPost(ctx context.Context, postID string) ([]Reaction, error)
	ListForComments(ctx context.Context, commentIDs []string) ([]Reaction, error)

	// ListRecentOnPosts feeds the timeline: post-targeted reactions only,
	// newest first, joined to posts of the family space.
	ListRecentOnPosts(ctx context.Context, familySpaceID string, cap int) ([]Reaction, error)

	ResolvePostTarget(ctx context.Context, postID, familySpaceID string) (bool, error)
	ResolveCommentTarget(ctx context.Context, commentID, familySpaceID string) (string, error)
}

type repo struct {
	db *gorm.DB
}

func NewRepository(s *db.Store) Repository {
	return &repo{db: s.Base}
}

func (r *repo) Create(ctx context.Context, rec *Reaction) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *repo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Reaction{}, "id = ?", id).Error
}

func (r *repo) FindExisting(ctx context.Context, targetType, targetID, userID, emoji string) (*Reaction, error) {
	var rec Reaction
	err := r.db.WithContext(ctx).
		Where("target_type = ? AND target_id = ? AND user_id = ? AND emoji = ?",
			targetType, targetID, userID, emoji).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *repo) ListForPost(ctx context.Context, postID string) ([]Reaction, error) {
	var out []Reaction
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("target_type = ? AND target_id = ?", TargetPost, postID).
		Order("created_at ASC").
		Find(&out).Error
	return out, err
}

func (r *repo) ListForComments(ctx context.Context, commentIDs []string) ([]Reaction, error) {
	if len(commentIDs) == 0 {
		return nil, nil
	}
	var out []Reaction
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("target_type = ? AND target_id IN ?", TargetComment, commentIDs).
		Order("created_at ASC").
		Find(&out).Error
	return out, err
}

func (r *repo) ListRecentOnPosts(ctx context.Context, familySpaceID string, cap int) ([]Reaction, error) {
	var out []Reaction
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Post").
		Joins("JOIN posts ON posts.id = reactions.post_id").
		Where("reactions.target_type = ? AND reactions.post_id IS NOT NULL AND posts.family_space_id = ?",
			TargetPost, familySpaceID).
		Order("reactions.created_at DESC").
		Limit(cap).
		Find(&out).Error
	return out, err
}

func (r *repo) ResolvePostTarget(ctx context.Context, postID, familySpaceID string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Table("posts").
		Where("id = ? AND family_space_id = ?", postID, familySpaceID).
		Count(&n).Error
	return n > 0, err
}

func (r *repo) ResolveCommentTarget(ctx context.Context, commentID, familySpaceID string) (string, error) {
	var row struct{ PostID string }
	err := r.db.WithContext(ctx).
		Table("comments").
		Select("comments.post_id").
		Joins("JOIN posts ON posts.id = comments.post_id").
		Where("comments.id = ? AND posts.family_space_id = ? AND comments.deleted_at IS NULL",
			commentID, familySpaceID).
		Scan(&row).Error
	if err != nil {
		return "", err
	}
	return row.PostID, nil
}
