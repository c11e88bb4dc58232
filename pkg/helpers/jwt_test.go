package helpers

import (
	"testing"
	"time"
)

func TestGenerateAndParseAccessToken(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)

	token, exp, err := m.GenerateAccessToken(42)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if time.Until(exp) < 55*time.Minute {
		t.Fatalf("expiry too soon: %v", exp)
	}

	claims, err := m.ParseAccessToken(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != "42" {
		t.Fatalf("expected uid 42, got %q", claims.UserID)
	}
	id, err := claims.SubjectID()
	if err != nil || id != 42 {
		t.Fatalf("subject id: got %d, %v", id, err)
	}
}

func TestParseExpiredToken(t *testing.T) {
	m := NewJWTManager("test-secret", -time.Minute)

	token, _, err := m.GenerateAccessToken(1)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := m.ParseAccessToken(token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, _, err := NewJWTManager("secret-a", time.Hour).GenerateAccessToken(1)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := NewJWTManager("secret-b", time.Hour).ParseAccessToken(token); err == nil {
		t.Fatal("expected token signed with another secret to be rejected")
	}
}
