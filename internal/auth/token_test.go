package auth

import (
	"testing"
	"time"
)

func TestIssueAndValidate(t *testing.T) {
	svc := NewTokenService("super-secret", time.Hour)

	tok, err := svc.Issue("alice@example.com")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	subject, err := svc.Validate(tok)
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if subject != "alice@example.com" {
		t.Fatalf("subject mismatch: got %q", subject)
	}
}

func TestValidate_Expired(t *testing.T) {
	svc := NewTokenService("secret", -1*time.Second)

	tok, err := svc.Issue("a@example.com")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err := svc.Validate(tok); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestValidate_WrongSecret(t *testing.T) {
	tok, err := NewTokenService("right-secret", time.Hour).Issue("a@example.com")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	if _, err := NewTokenService("wrong-secret", time.Hour).Validate(tok); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for tampered signature, got %v", err)
	}
}

func TestValidate_Malformed(t *testing.T) {
	svc := NewTokenService("k", time.Hour)

	for _, tok := range []string{"", "garbage", "not.a.jwt"} {
		if _, err := svc.Validate(tok); err != ErrInvalidToken {
			t.Fatalf("token %q: expected ErrInvalidToken, got %v", tok, err)
		}
	}
}
