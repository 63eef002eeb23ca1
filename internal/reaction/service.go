package reaction

import (
	"context"
	"log"
	"time"

	"timeline-service/internal/kafka"
	"timeline-service/internal/notification"
	"timeline-service/internal/shared/httpx"
)

type Service interface {
	ForPost(ctx context.Context, postID string) ([]Summary, error)
	ForComments(ctx context.Context, commentIDs []string) (map[string][]Summary, error)
	Toggle(ctx context.Context, familySpaceID, userID string, in ToggleReq) (bool, error)
}

type service struct {
	repo   Repository
	writer kafka.Writer
}

func NewService(r Repository, w kafka.Writer) Service {
	return &service{repo: r, writer: w}
}

func (s *service) ForPost(ctx context.Context, postID string) ([]Summary, error) {
	records, err := s.repo.ListForPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	return Summarize(records), nil
}

func (s *service) ForComments(ctx context.Context, commentIDs []string) (map[string][]Summary, error) {
	records, err := s.repo.ListForComments(ctx, commentIDs)
	if err != nil {
		return nil, err
	}
	return SummarizeByTarget(records), nil
}

// Toggle creates the (target, user, emoji) reaction, or removes it when it
// already exists. Returns whether the reaction is present afterwards.
func (s *service) Toggle(ctx context.Context, familySpaceID, userID string, in ToggleReq) (bool, error) {
	var postID string
	switch in.TargetType {
	case TargetPost:
		ok, err := s.repo.ResolvePostTarget(ctx, in.TargetID, familySpaceID)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, httpx.ErrNotFound
		}
		postID = in.TargetID
	case TargetComment:
		pid, err := s.repo.ResolveCommentTarget(ctx, in.TargetID, familySpaceID)
		if err != nil {
			return false, err
		}
		if pid == "" {
			return false, httpx.ErrNotFound
		}
		postID = pid
	default:
		return false, httpx.ErrNotFound
	}

	existing, err := s.repo.FindExisting(ctx, in.TargetType, in.TargetID, userID, in.Emoji)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, s.repo.Delete(ctx, existing.ID)
	}

	rec := &Reaction{
		TargetType: in.TargetType,
		TargetID:   in.TargetID,
		PostID:     &postID,
		UserID:     userID,
		Emoji:      in.Emoji,
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return false, err
	}

	if s.writer != nil {
		ev := notification.ActivityEvent{
			Type:          notification.ActivityReactionAdded,
			FamilySpaceID: familySpaceID,
			ActorID:       userID,
			PostID:        postID,
			Emoji:         in.Emoji,
			CreatedAt:     time.Now().UTC(),
		}
		if err := s.writer.WriteJSON(ctx, familySpaceID, ev); err != nil {
			log.Printf("reaction: publish activity: %v", err)
		}
	}
	return true, nil
}
