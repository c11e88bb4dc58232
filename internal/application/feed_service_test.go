package application

import (
	"context"
	"errors"
	"testing"

	"github.com/snapfeed/snapfeed-api/internal/domain/entity"
	"github.com/snapfeed/snapfeed-api/internal/infrastructure/sqlite"
)

func newFeedService(t *testing.T, name string) (*FeedService, *entity.User) {
	t.Helper()
	db, err := sqlite.Open("file:" + name + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repos := sqlite.NewRepositories(db)
	u := &entity.User{Email: "feed@x.com", Password: "hash", Name: "F"}
	if err := repos.Users.Create(context.Background(), u); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return NewFeedService(repos, nil), u
}

func TestCreatePostUnknownUser(t *testing.T) {
	svc, _ := newFeedService(t, "feed_unknown_user_test")

	if _, err := svc.CreatePost(context.Background(), 999, "hi", "http://x/i.png"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAddCommentUnknownPost(t *testing.T) {
	svc, u := newFeedService(t, "feed_unknown_post_test")

	if _, err := svc.AddComment(context.Background(), u.ID, 999, "hello"); !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestListFeedGroupsCommentsByPost(t *testing.T) {
	svc, u := newFeedService(t, "feed_list_test")
	ctx := context.Background()

	p1, err := svc.CreatePost(ctx, u.ID, "first", "http://x/1.png")
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	p2, err := svc.CreatePost(ctx, u.ID, "second", "http://x/2.png")
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	if _, err := svc.AddComment(ctx, u.ID, p1.ID, "c1"); err != nil {
		t.Fatalf("add comment: %v", err)
	}
	if _, err := svc.AddComment(ctx, u.ID, p1.ID, "c2"); err != nil {
		t.Fatalf("add comment: %v", err)
	}

	feed, err := svc.ListFeed(ctx)
	if err != nil {
		t.Fatalf("list feed: %v", err)
	}
	if len(feed) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(feed))
	}

	byID := map[int64]FeedPost{}
	for _, fp := range feed {
		byID[fp.ID] = fp
	}
	if got := len(byID[p1.ID].Comments); got != 2 {
		t.Fatalf("expected 2 comments on post %d, got %d", p1.ID, got)
	}
	if c := byID[p2.ID].Comments; c == nil || len(c) != 0 {
		t.Fatalf("expected empty, non-nil comments on post %d", p2.ID)
	}
}

func TestListFeedEmpty(t *testing.T) {
	svc, _ := newFeedService(t, "feed_empty_test")

	feed, err := svc.ListFeed(context.Background())
	if err != nil {
		t.Fatalf("list feed: %v", err)
	}
	if feed == nil || len(feed) != 0 {
		t.Fatalf("expected empty, non-nil feed, got %v", feed)
	}
}
