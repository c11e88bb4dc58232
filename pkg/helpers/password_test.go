package helpers

import "testing"

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("hunter2!")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "hunter2!" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !CompareHashAndPassword(hash, "hunter2!") {
		t.Fatal("expected matching password to compare true")
	}
	if CompareHashAndPassword(hash, "wrong") {
		t.Fatal("expected wrong password to compare false")
	}
}
