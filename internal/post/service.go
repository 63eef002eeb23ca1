package post

import (
	"context"
	"log"
	"time"

	"timeline-service/internal/kafka"
	"timeline-service/internal/notification"
	"timeline-service/internal/shared/httpx"
)

type CreateReq struct {
	FamilySpaceID string  `json:"-"`
	AuthorID      string  `json:"-"`
	AuthorName    string  `json:"-"`
	Title         string  `json:"title"`
	Caption       *string `json:"caption"`
	MainPhotoURL  *string `json:"mainPhotoUrl"`
}

type EditReq struct {
	EditorID   string  `json:"-"`
	EditorName string  `json:"-"`
	Title      *string `json:"title"`
	Caption    *string `json:"caption"`
	Note       *string `json:"note"`
}

type Service interface {
	Create(ctx context.Context, in CreateReq) (*Post, error)
	Edit(ctx context.Context, postID, familySpaceID string, in EditReq) (*Post, error)
}

type service struct {
	repo   Repository
	writer kafka.Writer
}

func NewService(repo Repository, writer kafka.Writer) Service {
	return &service{repo: repo, writer: writer}
}

func (s *service) Create(ctx context.Context, in CreateReq) (*Post, error) {
	p := &Post{
		FamilySpaceID: in.FamilySpaceID,
		AuthorID:      in.AuthorID,
		Title:         in.Title,
		Caption:       in.Caption,
		MainPhotoURL:  in.MainPhotoURL,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	s.publish(ctx, notification.ActivityEvent{
		Type:          notification.ActivityPostCreated,
		FamilySpaceID: in.FamilySpaceID,
		ActorID:       in.AuthorID,
		ActorName:     in.AuthorName,
		PostID:        p.ID,
		PostTitle:     p.Title,
		CreatedAt:     time.Now().UTC(),
	})
	return p, nil
}

// Edit applies a partial update and stamps the edit fields. The stamp is what
// makes the post surface again in the activity feed as a post_edited event.
func (s *service) Edit(ctx context.Context, postID, familySpaceID string, in EditReq) (*Post, error) {
	p, err := s.repo.FindByID(ctx, postID, familySpaceID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, httpx.ErrNotFound
	}

	if in.Title != nil {
		p.Title = *in.Title
	}
	if in.Caption != nil {
		p.Caption = in.Caption
	}
	now := time.Now().UTC()
	p.LastEditAt = &now
	p.LastEditNote = in.Note
	if in.EditorID != "" {
		editorID := in.EditorID
		p.EditorID = &editorID
	}
	if err := s.repo.SaveEdit(ctx, p); err != nil {
		return nil, err
	}

	s.publish(ctx, notification.ActivityEvent{
		Type:          notification.ActivityPostEdited,
		FamilySpaceID: familySpaceID,
		ActorID:       in.EditorID,
		ActorName:     in.EditorName,
		PostID:        p.ID,
		PostTitle:     p.Title,
		CreatedAt:     now,
	})
	return p, nil
}

func (s *service) publish(ctx context.Context, ev notification.ActivityEvent) {
	if s.writer == nil {
		return
	}
	if err := s.writer.WriteJSON(ctx, ev.FamilySpaceID, ev); err != nil {
		log.Printf("post: publish activity: %v", err)
	}
}
