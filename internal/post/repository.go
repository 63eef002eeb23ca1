package post

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"timeline-service/internal/shared/db"
)

type Repository interface {
	Create(ctx context.Context, p *Post) error
	SaveEdit(ctx context.Context, p *Post) error
	FindByID(ctx context.Context, id, familySpaceID string) (*Post, error)
	ListRecent(ctx context.Context, familySpaceID string, cap int) ([]Post, error)
	ListRecentlyEdited(ctx context.Context, familySpaceID string, cap int) ([]Post, error)
}

type repo struct {
	db *gorm.DB
}

func NewRepository(s *db.Store) Repository {
	return &repo{db: s.Base}
}

func (r *repo) Create(ctx context.Context, p *Post) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(p).Error
}

// SaveEdit writes the editable columns only, so preloaded associations are
// never upserted along with the row.
func (r *repo) SaveEdit(ctx context.Context, p *Post) error {
	return r.db.WithContext(ctx).Model(&Post{}).
		Where("id = ?", p.ID).
		Updates(map[string]any{
			"title":          p.Title,
			"caption":        p.Caption,
			"editor_id":      p.EditorID,
			"last_edit_at":   p.LastEditAt,
			"last_edit_note": p.LastEditNote,
		}).Error
}

func (r *repo) FindByID(ctx context.Context, id, familySpaceID string) (*Post, error) {
	var p Post
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Editor").
		Where("id = ? AND family_space_id = ?", id, familySpaceID).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repo) ListRecent(ctx context.Context, familySpaceID string, cap int) ([]Post, error) {
	var out []Post
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("family_space_id = ?", familySpaceID).
		Order("created_at DESC").
		Limit(cap).
		Find(&out).Error
	return out, err
}

func (r *repo) ListRecentlyEdited(ctx context.Context, familySpaceID string, cap int) ([]Post, error) {
	var out []Post
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Editor").
		Where("family_space_id = ? AND last_edit_at IS NOT NULL", familySpaceID).
		Order("last_edit_at DESC").
		Limit(cap).
		Find(&out).Error
	return out, err
}
