package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"

	"timeline-service/configs"
	"timeline-service/internal/comment"
	"timeline-service/internal/cooked"
	"timeline-service/internal/migrate"
	"timeline-service/internal/post"
	"timeline-service/internal/reaction"
	"timeline-service/internal/shared/db"
	"timeline-service/internal/user"
)

var emojis = []string{"👍", "❤️", "😋", "🔥", "👏"}

// Seeds one demo family space with members, posts, comments, reactions and
// cooked logs, so the timeline has something to show in local dev.
func main() {
	gofakeit.Seed(time.Now().UnixNano())
	ctx := context.Background()

	cfg := configs.LoadConfig()

	var store *db.Store
	if path := os.Getenv("SEED_SQLITE_PATH"); path != "" {
		var err error
		store, err = db.OpenSQLite(path)
		if err != nil {
			log.Fatalf("sqlite open: %v", err)
		}
	} else {
		store = db.OpenFromEnv(cfg.DSN())
	}
	if err := migrate.AutoMigrateAll(store); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	users := user.NewRepository(store)
	posts := post.NewRepository(store)
	comments := comment.NewRepository(store)
	reactions := reaction.NewRepository(store)
	cookedEvents := cooked.NewRepository(store)

	familyID := uuid.NewString()
	log.Printf("seeding family space %s", familyID)

	members := make([]user.User, 0, 4)
	for i := 0; i < 4; i++ {
		avatar := gofakeit.ImageURL(128, 128)
		m := user.User{
			FamilySpaceID: familyID,
			Name:          gofakeit.Name(),
			AvatarURL:     &avatar,
		}
		if err := users.Create(ctx, &m); err != nil {
			log.Fatalf("seed user: %v", err)
		}
		members = append(members, m)
	}

	base := time.Now().Add(-30 * 24 * time.Hour)
	for i := 0; i < 12; i++ {
		author := members[rand.Intn(len(members))]
		createdAt := base.Add(time.Duration(i) * 36 * time.Hour)
		photo := gofakeit.ImageURL(640, 480)
		caption := gofakeit.Sentence(12)
		p := post.Post{
			FamilySpaceID: familyID,
			AuthorID:      author.ID,
			Title:         fmt.Sprintf("%s %s", gofakeit.AdjectiveDescriptive(), gofakeit.Dinner()),
			Caption:       &caption,
			MainPhotoURL:  &photo,
			CreatedAt:     createdAt,
		}
		// A third of the posts get a later edit, sometimes by someone else.
		if i%3 == 0 {
			editedAt := createdAt.Add(time.Duration(rand.Intn(48)+1) * time.Hour)
			editor := members[rand.Intn(len(members))]
			note := gofakeit.Sentence(6)
			p.LastEditAt = &editedAt
			p.LastEditNote = &note
			p.EditorID = &editor.ID
		}
		if err := posts.Create(ctx, &p); err != nil {
			log.Fatalf("seed post: %v", err)
		}

		for j := 0; j < rand.Intn(4); j++ {
			commenter := members[rand.Intn(len(members))]
			c := comment.Comment{
				PostID:    p.ID,
				AuthorID:  commenter.ID,
				Text:      gofakeit.Sentence(10),
				CreatedAt: createdAt.Add(time.Duration(j+1) * time.Hour),
			}
			if err := comments.Create(ctx, &c); err != nil {
				log.Fatalf("seed comment: %v", err)
			}
		}

		for j := 0; j < rand.Intn(4); j++ {
			reactor := members[rand.Intn(len(members))]
			rec := reaction.Reaction{
				TargetType: reaction.TargetPost,
				TargetID:   p.ID,
				PostID:     &p.ID,
				UserID:     reactor.ID,
				Emoji:      emojis[rand.Intn(len(emojis))],
				CreatedAt:  createdAt.Add(time.Duration(j+1) * 30 * time.Minute),
			}
			if err := reactions.Create(ctx, &rec); err != nil {
				// Duplicate (target, user, emoji) tuples are expected now
				// and then; the unique index rejects them.
				continue
			}
		}

		for j := 0; j < rand.Intn(3); j++ {
			cook := members[rand.Intn(len(members))]
			e := cooked.CookedEvent{
				PostID:    p.ID,
				UserID:    cook.ID,
				CreatedAt: createdAt.Add(time.Duration(j+2) * 24 * time.Hour),
			}
			if rand.Intn(2) == 0 {
				rating := rand.Intn(5) + 1
				note := gofakeit.Sentence(8)
				e.Rating = &rating
				e.Note = &note
			}
			if err := cookedEvents.Create(ctx, &e); err != nil {
				log.Fatalf("seed cooked event: %v", err)
			}
		}
	}

	log.Printf("seed complete: family=%s members=%d", familyID, len(members))
}
