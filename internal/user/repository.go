package user

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"timeline-service/internal/shared/db"
)

type Repository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id string) (*User, error)
	ListByFamily(ctx context.Context, familySpaceID string) ([]User, error)
}

type repo struct {
	db *gorm.DB
}

func NewRepository(s *db.Store) Repository {
	return &repo{db: s.Base}
}

func (r *repo) Create(ctx context.Context, u *User) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *repo) FindByID(ctx context.Context, id string) (*User, error) {
	var u User
	if err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repo) ListByFamily(ctx context.Context, familySpaceID string) ([]User, error) {
	var out []User
	err := r.db.WithContext(ctx).
		Where("family_space_id = ?", familySpaceID).
		Order("created_at ASC").
		Find(&out).Error
	return out, err
}
