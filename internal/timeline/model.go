package timeline

import (
	"time"

	"timeline-service/internal/post"
	"timeline-service/internal/user"
)

type EventType string

const (
	PostCreated   EventType = "post_created"
	PostEdited    EventType = "post_edited"
	CommentAdded  EventType = "comment_added"
	ReactionAdded EventType = "reaction_added"
	CookedLogged  EventType = "cooked_logged"
)

type CommentPayload struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type ReactionPayload struct {
	Emoji string `json:"emoji"`
}

type CookedPayload struct {
	Rating *int    `json:"rating"`
	Note   *string `json:"note"`
}

type EditPayload struct {
	Note *string `json:"note"`
}

// Event is one normalized record in the merged activity feed. Exactly one of
// the payload pointers is set, matching Type.
type Event struct {
	ID         string    `json:"id"`
	Type       EventType `json:"type"`
	Timestamp  time.Time `json:"timestamp"`
	Actor      user.Ref  `json:"actor"`
	Post       post.Ref  `json:"post"`
	ActionText string    `json:"actionText"`

	Comment  *CommentPayload  `json:"comment,omitempty"`
	Reaction *ReactionPayload `json:"reaction,omitempty"`
	Cooked   *CookedPayload   `json:"cooked,omitempty"`
	Edit     *EditPayload     `json:"edit,omitempty"`
}

type Page struct {
	Items      []Event `json:"items"`
	HasMore    bool    `json:"hasMore"`
	NextOffset int     `json:"nextOffset"`
}

func actionText(t EventType) string {
	switch t {
	case PostCreated:
		return "posted"
	case PostEdited:
		return "updated"
	case CommentAdded:
		return "commented on"
	case ReactionAdded:
		return "reacted to"
	case CookedLogged:
		return "cooked"
	default:
		return "shared"
	}
}
