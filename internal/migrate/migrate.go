package migrate

import (
	"timeline-service/internal/comment"
	"timeline-service/internal/cooked"
	"timeline-service/internal/post"
	"timeline-service/internal/reaction"
	"timeline-service/internal/shared/db"
	"timeline-service/internal/user"
)

// AutoMigrateAll creates/updates the schema for every model this service
// reads. Dev convenience only; production schemas are owned elsewhere.
func AutoMigrateAll(s *db.Store) error {
	return s.Base.AutoMigrate(
		&user.User{},
		&post.Post{},
		&comment.Comment{},
		&reaction.Reaction{},
		&cooked.CookedEvent{},
	)
}
