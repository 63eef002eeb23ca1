package post

import (
	"time"

	"timeline-service/internal/user"
)

type Post struct {
	ID            string  `gorm:"primaryKey;size:32" json:"id"`
	FamilySpaceID string  `gorm:"index;size:32" json:"familySpaceId"`
	Title         string  `gorm:"size:256" json:"title"`
	Caption       *string `gorm:"type:text" json:"caption"`
	MainPhotoURL  *string `gorm:"size:512" json:"mainPhotoUrl"`

	AuthorID string     `gorm:"index;size:32" json:"authorId"`
	Author   *user.User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	EditorID *string    `gorm:"size:32" json:"editorId"`
	Editor   *user.User `gorm:"foreignKey:EditorID" json:"editor,omitempty"`

	LastEditAt   *time.Time `gorm:"index" json:"lastEditAt"`
	LastEditNote *string    `gorm:"size:512" json:"lastEditNote"`

	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Ref is the denormalized post snapshot carried by timeline events and
// notifications.
type Ref struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	MainPhotoURL *string `json:"mainPhotoUrl"`
}

func (p Post) Ref() Ref {
	return Ref{ID: p.ID, Title: p.Title, MainPhotoURL: p.MainPhotoURL}
}
