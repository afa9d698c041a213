package service

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/influencer-summit/summit-api/internal/core/domain"
)

func TestKeyAuthorizer_PlainKey(t *testing.T) {
	a, err := NewKeyAuthorizer("s3cret", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := a.Authorize("s3cret"); err != nil {
		t.Fatalf("expected valid key to pass, got %v", err)
	}
	for _, bad := range []string{"", "s3cre", "s3cret ", "S3CRET"} {
		if err := a.Authorize(bad); !errors.Is(err, domain.ErrUnauthorized) {
			t.Errorf("Authorize(%q): expected ErrUnauthorized, got %v", bad, err)
		}
	}
}

func TestKeyAuthorizer_EmptyConfigRejectsEverything(t *testing.T) {
	a, _ := NewKeyAuthorizer("", "")

	if err := a.Authorize(""); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if err := a.Authorize("anything"); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestKeyAuthorizer_BcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	a, err := NewKeyAuthorizer("ignored", string(hash))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := a.Authorize("s3cret"); err != nil {
		t.Fatalf("expected hashed key to pass, got %v", err)
	}
	if err := a.Authorize("ignored"); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("plain key must not be accepted when a hash is configured, got %v", err)
	}
}

func TestKeyAuthorizer_InvalidHash(t *testing.T) {
	if _, err := NewKeyAuthorizer("", "not-a-hash"); err == nil {
		t.Fatal("expected error for malformed hash")
	}
}
