package user

import "time"

type User struct {
	ID            string  `gorm:"primaryKey;size:32" json:"id"`
	FamilySpaceID string  `gorm:"index;size:32" json:"familySpaceId"`
	Name          string  `gorm:"size:128" json:"name"`
	AvatarURL     *string `gorm:"size:512" json:"avatarUrl"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Ref is the denormalized member snapshot embedded in read projections.
type Ref struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	AvatarURL *string `json:"avatarUrl"`
}

func (u User) Ref() Ref {
	return Ref{ID: u.ID, Name: u.Name, AvatarURL: u.AvatarURL}
}
