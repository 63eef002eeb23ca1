package timeline

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"timeline-service/internal/comment"
	"timeline-service/internal/cooked"
	"timeline-service/internal/post"
	"timeline-service/internal/reaction"
)

const (
	defaultLimit = 20
	maxLimit     = 100

	// overfetchSlack pads the per-source row cap so a single busy source can
	// still fill the requested window after the merge. The merge stays an
	// approximation under heavy write skew; the slack only shortens the odds
	// of an under-filled page.
	overfetchSlack = 5
)

type Service interface {
	Get(ctx context.Context, familySpaceID string, limit, offset int) (Page, error)
}

type service struct {
	posts     post.Repository
	comments  comment.Repository
	reactions reaction.Repository
	cooked    cooked.Repository
}

func NewService(posts post.Repository, comments comment.Repository, reactions reaction.Repository, cookedRepo cooked.Repository) Service {
	return &service{
		posts:     posts,
		comments:  comments,
		reactions: reactions,
		cooked:    cookedRepo,
	}
}

// Get assembles one page of the family activity feed. The five sources are
// read concurrently with a shared over-fetch bound, concatenated in a fixed
// source order, stably sorted newest-first and sliced. Equal timestamps
// therefore order deterministically: by source kind, then by each source's
// own query order.
func (s *service) Get(ctx context.Context, familySpaceID string, limit, offset int) (Page, error) {
	limit = clampLimit(limit, defaultLimit, maxLimit)
	if offset < 0 {
		offset = 0
	}
	sinceBound := limit + offset + overfetchSlack

	fetchers := []func(context.Context, string, int) ([]Event, error){
		s.postCreatedEvents,
		s.postEditedEvents,
		s.commentEvents,
		s.reactionEvents,
		s.cookedEvents,
	}

	results := make([][]Event, len(fetchers))
	errs := make([]error, len(fetchers))

	var wg sync.WaitGroup
	for i, fetch := range fetchers {
		wg.Add(1)
		go func(i int, fetch func(context.Context, string, int) ([]Event, error)) {
			defer wg.Done()
			results[i], errs[i] = fetch(ctx, familySpaceID, sinceBound)
		}(i, fetch)
	}
	wg.Wait()

	// No partial feed: one failed source fails the whole page.
	for _, err := range errs {
		if err != nil {
			return Page{}, fmt.Errorf("timeline: %w", err)
		}
	}

	var all []Event
	for _, events := range results {
		all = append(all, events...)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Timestamp.After(all[j].Timestamp)
	})

	items := sliceWindow(all, offset, limit)
	return Page{
		Items:      items,
		HasMore:    len(all) > offset+limit,
		NextOffset: offset + limit,
	}, nil
}

// sliceWindow cuts [offset, offset+limit) without stepping past the end,
// always returning a non-nil slice.
func sliceWindow(events []Event, offset, limit int) []Event {
	if offset >= len(events) {
		return []Event{}
	}
	end := offset + limit
	if end > len(events) {
		end = len(events)
	}
	out := make([]Event, end-offset)
	copy(out, events[offset:end])
	return out
}

func clampLimit(v, def, max int) int {
	if v == 0 {
		return def
	}
	if v < 1 {
		return 1
	}
	if v > max {
		return max
	}
	return v
}
