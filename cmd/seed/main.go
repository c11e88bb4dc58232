package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/snapfeed/snapfeed-api/config"
	"github.com/snapfeed/snapfeed-api/internal/domain/entity"
	"github.com/snapfeed/snapfeed-api/internal/domain/repository"
	"github.com/snapfeed/snapfeed-api/internal/infrastructure"
	"github.com/snapfeed/snapfeed-api/pkg/helpers"
)

// Seeds a demo account with one post and one comment through the configured
// storage backend. Safe to re-run; a second run fails on the duplicate email.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)

	ctx := context.Background()
	repos, closeStore, err := infrastructure.OpenRepositories(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer closeStore()

	email := "demo@snapfeed.dev"
	password := "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	u := &entity.User{Email: email, Password: hash, Name: "Demo User"}
	if err := repos.Users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			log.Fatalf("demo user %s already seeded", email)
		}
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%d email=%s password=%s\n", u.ID, email, password)

	p := &entity.Post{UserID: u.ID, Caption: "hello snapfeed", Image: "https://picsum.photos/600"}
	if err := repos.Posts.Create(ctx, p); err != nil {
		log.Fatalf("failed to seed post: %v", err)
	}
	fmt.Printf("seeded post: id=%d\n", p.ID)

	c := &entity.Comment{UserID: u.ID, PostID: p.ID, Text: "first!"}
	if err := repos.Comments.Create(ctx, c); err != nil {
		log.Fatalf("failed to seed comment: %v", err)
	}
	fmt.Printf("seeded comment: id=%d\n", c.ID)
}
