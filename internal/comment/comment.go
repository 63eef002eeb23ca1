package comment

import (
	"time"

	"gorm.io/gorm"

	"timeline-service/internal/post"
	"timeline-service/internal/user"
)

type Comment struct {
	ID     string     `gorm:"primaryKey;size:32" json:"id"`
	PostID string     `gorm:"index;size:32" json:"postId"`
	Post   *post.Post `gorm:"foreignKey:PostID" json:"post,omitempty"`

	AuthorID string     `gorm:"index;size:32" json:"authorId"`
	Author   *user.User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`

	Text     string  `gorm:"type:text" json:"text"`
	PhotoURL *string `gorm:"size:512" json:"photoUrl"`

	CreatedAt time.Time      `gorm:"index" json:"createdAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
