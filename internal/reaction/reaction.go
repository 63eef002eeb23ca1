package reaction

import (
	"time"

	"timeline-service/internal/post"
	"timeline-service/internal/user"
)

const (
	TargetPost    = "post"
	TargetComment = "comment"
)

type Reaction struct {
	ID         string `gorm:"primaryKey;size:32" json:"id"`
	TargetType string `gorm:"size:16;uniqueIndex:idx_reaction_tuple" json:"targetType"`
	TargetID   string `gorm:"size:32;uniqueIndex:idx_reaction_tuple;index" json:"targetId"`

	// PostID is set for both target types: for comment reactions it points at
	// the comment's parent post.
	PostID *string    `gorm:"index;size:32" json:"postId"`
	Post   *post.Post `gorm:"foreignKey:PostID" json:"post,omitempty"`

	UserID string     `gorm:"size:32;uniqueIndex:idx_reaction_tuple" json:"userId"`
	User   *user.User `gorm:"foreignKey:UserID" json:"user,omitempty"`

	Emoji     string    `gorm:"size:16;uniqueIndex:idx_reaction_tuple" json:"emoji"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
}

type ToggleReq struct {
	TargetType string `json:"targetType"`
	TargetID   string `json:"targetId"`
	Emoji      string `json:"emoji"`
}
