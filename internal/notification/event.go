package notification

import "time"

type ActivityType string

const (
	ActivityPostCreated   ActivityType = "post_created"
	ActivityPostEdited    ActivityType = "post_edited"
	ActivityCommentAdded  ActivityType = "comment_added"
	ActivityReactionAdded ActivityType = "reaction_added"
	ActivityCookedLogged  ActivityType = "cooked_logged"
)

// ActivityEvent is the payload published to the activity topic by write
// paths. It carries enough denormalized context that the consumer never has
// to query the post back.
type ActivityEvent struct {
	Type          ActivityType `json:"type"`
	FamilySpaceID string       `json:"family_space_id"`
	ActorID       string       `json:"actor_id"`
	ActorName     string       `json:"actor_name,omitempty"`
	PostID        string       `json:"post_id"`
	PostTitle     string       `json:"post_title,omitempty"`
	Emoji         string       `json:"emoji,omitempty"`
	Snippet       string       `json:"snippet,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
}
