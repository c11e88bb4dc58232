package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/snapfeed/snapfeed-api/internal/infrastructure/sqlite"
	"github.com/snapfeed/snapfeed-api/pkg/helpers"
)

func newAuthService(t *testing.T, name string) *AuthService {
	t.Helper()
	db, err := sqlite.Open("file:" + name + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewAuthService(sqlite.NewUserRepository(db), helpers.NewJWTManager("test-secret", time.Hour), nil)
}

func TestRegisterStoresHashAndIssuesIDToken(t *testing.T) {
	svc := newAuthService(t, "auth_register_test")
	ctx := context.Background()

	res, err := svc.Register(ctx, "a@x.com", "pw123456", "A")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if res.User.Password == "pw123456" {
		t.Fatal("plaintext password must not be persisted")
	}
	if !helpers.CompareHashAndPassword(res.User.Password, "pw123456") {
		t.Fatal("stored hash does not match the password")
	}

	claims, err := svc.JWT.ParseAccessToken(res.AccessToken)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	id, err := claims.SubjectID()
	if err != nil {
		t.Fatalf("subject: %v", err)
	}
	if id != res.User.ID {
		t.Fatalf("token subject %d != user id %d", id, res.User.ID)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthService(t, "auth_dup_test")
	ctx := context.Background()

	if _, err := svc.Register(ctx, "a@x.com", "pw123456", "A"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := svc.Register(ctx, "a@x.com", "other", "B"); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	svc := newAuthService(t, "auth_login_test")
	ctx := context.Background()

	reg, err := svc.Register(ctx, "a@x.com", "pw123456", "A")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	res, err := svc.Login(ctx, "a@x.com", "pw123456")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if res.User.ID != reg.User.ID {
		t.Fatalf("expected user id %d, got %d", reg.User.ID, res.User.ID)
	}

	if _, err := svc.Login(ctx, "a@x.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, err := svc.Login(ctx, "unknown@x.com", "pw123456"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}
