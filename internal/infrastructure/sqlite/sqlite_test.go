package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/snapfeed/snapfeed-api/internal/domain/entity"
	"github.com/snapfeed/snapfeed-api/internal/domain/repository"
)

func openTestDB(t *testing.T, name string) *sql.DB {
	t.Helper()
	db, err := Open("file:" + name + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestUserRepositoryDuplicateEmail(t *testing.T) {
	db := openTestDB(t, "user_repo_test")
	users := NewUserRepository(db)
	ctx := context.Background()

	u := &entity.User{Email: "a@x.com", Password: "hash", Name: "A"}
	if err := users.Create(ctx, u); err != nil {
		t.Fatalf("create: %v", err)
	}
	if u.ID == 0 {
		t.Fatal("expected store-assigned id")
	}

	dup := &entity.User{Email: "a@x.com", Password: "other", Name: "B"}
	if err := users.Create(ctx, dup); !errors.Is(err, repository.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM users WHERE email = ?`, "a@x.com").Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly one row for the email, got %d", count)
	}
}

func TestUserRepositoryLookups(t *testing.T) {
	db := openTestDB(t, "user_lookup_test")
	users := NewUserRepository(db)
	ctx := context.Background()

	u := &entity.User{Email: "b@x.com", Password: "hash", Name: "B"}
	if err := users.Create(ctx, u); err != nil {
		t.Fatalf("create: %v", err)
	}

	byID, err := users.GetByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if byID.Email != "b@x.com" || byID.Name != "B" {
		t.Fatalf("unexpected user: %+v", byID)
	}

	byEmail, err := users.GetByEmail(ctx, "b@x.com")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if byEmail.ID != u.ID {
		t.Fatalf("expected id %d, got %d", u.ID, byEmail.ID)
	}

	if _, err := users.GetByID(ctx, 9999); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := users.GetByEmail(ctx, "nobody@x.com"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPostAndCommentRepositories(t *testing.T) {
	db := openTestDB(t, "feed_repo_test")
	repos := NewRepositories(db)
	ctx := context.Background()

	u := &entity.User{Email: "c@x.com", Password: "hash", Name: "C"}
	if err := repos.Users.Create(ctx, u); err != nil {
		t.Fatalf("create user: %v", err)
	}

	p1 := &entity.Post{UserID: u.ID, Caption: "first", Image: "http://x/1.png"}
	p2 := &entity.Post{UserID: u.ID, Caption: "second", Image: "http://x/2.png"}
	for _, p := range []*entity.Post{p1, p2} {
		if err := repos.Posts.Create(ctx, p); err != nil {
			t.Fatalf("create post: %v", err)
		}
	}

	if _, err := repos.Posts.GetByID(ctx, 12345); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	for _, text := range []string{"one", "two"} {
		c := &entity.Comment{UserID: u.ID, PostID: p1.ID, Text: text}
		if err := repos.Comments.Create(ctx, c); err != nil {
			t.Fatalf("create comment: %v", err)
		}
	}

	posts, err := repos.Posts.List(ctx)
	if err != nil {
		t.Fatalf("list posts: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(posts))
	}

	comments, err := repos.Comments.ListByPostIDs(ctx, []int64{p1.ID, p2.ID})
	if err != nil {
		t.Fatalf("list comments: %v", err)
	}
	if len(comments) != 2 {
		t.Fatalf("expected 2 comments, got %d", len(comments))
	}
	for _, c := range comments {
		if c.PostID != p1.ID {
			t.Fatalf("comment %d attached to wrong post %d", c.ID, c.PostID)
		}
	}

	empty, err := repos.Comments.ListByPostIDs(ctx, nil)
	if err != nil {
		t.Fatalf("list with no ids: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected no comments, got %d", len(empty))
	}
}
