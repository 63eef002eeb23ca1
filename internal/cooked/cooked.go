package cooked

import (
	"time"

	"timeline-service/internal/post"
	"timeline-service/internal/user"
)

// CookedEvent records that a member prepared a recipe, with an optional
// rating and note.
type CookedEvent struct {
	ID     string     `gorm:"primaryKey;size:32" json:"id"`
	PostID string     `gorm:"index;size:32" json:"postId"`
	Post   *post.Post `gorm:"foreignKey:PostID" json:"post,omitempty"`

	UserID string     `gorm:"index;size:32" json:"userId"`
	User   *user.User `gorm:"foreignKey:UserID" json:"user,omitempty"`

	Rating *int    `json:"rating"`
	Note   *string `gorm:"size:512" json:"note"`

	CreatedAt time.Time `gorm:"index" json:"createdAt"`
}

// Stats distinguishes "never cooked" from "cooked but never rated" by
// AverageRating alone staying nil in both cases; TimesCooked tells them apart.
type Stats struct {
	TimesCooked   int64    `json:"timesCooked"`
	AverageRating *float64 `json:"averageRating"`
}
