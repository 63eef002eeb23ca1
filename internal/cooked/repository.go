package cooked

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"timeline-service/internal/shared/db"
)

type Repository interface {
	Create(ctx context.Context, e *CookedEvent) error

	// Stats runs a single grouped aggregate; AVG ignores null ratings and
	// yields NULL when nothing is rated.
	Stats(ctx context.Context, postID string) (Stats, error)

	ListWindow(ctx context.Context, postID, familySpaceID string, take, offset int) ([]CookedEvent, error)
	ListRecent(ctx context.Context, familySpaceID string, cap int) ([]CookedEvent, error)
}

type repo struct {
	db *gorm.DB
}

func NewRepository(s *db.Store) Repository {
	return &repo{db: s.Base}
}

func (r *repo) Create(ctx context.Context, e *CookedEvent) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repo) Stats(ctx context.Context, postID string) (Stats, error) {
	var row Stats
	err := r.db.WithContext(ctx).
		Model(&CookedEvent{}).
		Select("COUNT(*) AS times_cooked, AVG(rating) AS average_rating").
		Where("post_id = ?", postID).
		Scan(&row).Error
	return row, err
}

func (r *repo) ListWindow(ctx context.Context, postID, familySpaceID string, take, offset int) ([]CookedEvent, error) {
	var out []CookedEvent
	err := r.db.WithContext(ctx).
		Preload("User").
		Joins("JOIN posts ON posts.id = cooked_events.post_id").
		Where("cooked_events.post_id = ? AND posts.family_space_id = ?", postID, familySpaceID).
		Order("cooked_events.created_at DESC, cooked_events.id DESC").
		Limit(take).
		Offset(offset).
		Find(&out).Error
	return out, err
}

func (r *repo) ListRecent(ctx context.Context, familySpaceID string, cap int) ([]CookedEvent, error) {
	var out []CookedEvent
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Post").
		Joins("JOIN posts ON posts.id = cooked_events.post_id").
		Where("posts.family_space_id = ?", familySpaceID).
		Order("cooked_events.created_at DESC").
		Limit(cap).
		Find(&out).Error
	return out, err
}
